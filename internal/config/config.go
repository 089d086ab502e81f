package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded once in main and passed
// into constructors. Nothing in the app reads os.Getenv after startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OAuth    OAuthConfig
	Giphy    GiphyConfig
	Session  SessionConfig
	Webhook  WebhookConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string
	Environment string
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Name     string
	User     string
	Password string
}

// OAuthConfig holds the Burner platform OAuth application settings.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string
}

// GiphyConfig holds the GIF provider credentials.
type GiphyConfig struct {
	APIKey string
}

// SessionConfig holds the session cookie settings. Key must be a
// base64-encoded 32 byte value (see encryptcookie.GenerateKey).
type SessionConfig struct {
	Key string
}

// WebhookConfig holds the optional inbound webhook signature secret.
// Empty secret disables validation.
type WebhookConfig struct {
	Secret string
}

// Load reads configuration from environment variables, loading a .env
// file first when one is present for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found - using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "5000"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Name:     getEnv("DB_NAME", "gifbot"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASS"),
		},
		OAuth: OAuthConfig{
			ClientID:     os.Getenv("CLIENT_ID"),
			ClientSecret: os.Getenv("CLIENT_SECRET"),
			CallbackURL:  os.Getenv("CALLBACK_URL"),
			Scopes:       splitScopes(os.Getenv("SCOPE")),
		},
		Giphy: GiphyConfig{
			APIKey: os.Getenv("GIPHY_KEY"),
		},
		Session: SessionConfig{
			Key: os.Getenv("SESSION_KEY"),
		},
		Webhook: WebhookConfig{
			Secret: os.Getenv("WEBHOOK_SECRET"),
		},
	}

	if cfg.OAuth.ClientID == "" || cfg.OAuth.ClientSecret == "" || cfg.OAuth.CallbackURL == "" {
		return nil, fmt.Errorf("missing OAuth credentials (CLIENT_ID, CLIENT_SECRET, CALLBACK_URL)")
	}
	if cfg.Giphy.APIKey == "" {
		return nil, fmt.Errorf("missing GIPHY_KEY")
	}
	if cfg.Session.Key == "" {
		return nil, fmt.Errorf("missing SESSION_KEY")
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitScopes parses the comma-separated SCOPE variable.
func splitScopes(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	scopes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			scopes = append(scopes, p)
		}
	}
	return scopes
}
