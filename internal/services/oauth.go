package services

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/burnerlabs/gifbot-backend/internal/config"
)

const (
	burnerAuthURL        = "http://app.burnerapp.com/oauth/authorize"
	burnerAccessTokenURL = "http://api.burnerapp.com/oauth/access"
)

// ConnectedBurner is one burner entry from the token exchange response.
type ConnectedBurner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TokenGrant is the outcome of a successful code exchange: the access
// token plus the burners the user authorized under it.
type TokenGrant struct {
	AccessToken      string
	ConnectedBurners []ConnectedBurner
}

// OAuthService runs the 3-legged authorization code flow against the
// Burner platform.
type OAuthService struct {
	config *oauth2.Config
}

// NewOAuthService creates a new OAuth handshake client
func NewOAuthService(cfg config.OAuthConfig) *OAuthService {
	return &OAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  burnerAuthURL,
				TokenURL: burnerAccessTokenURL,
			},
		},
	}
}

// WithEndpoint overrides the provider endpoints (used in tests).
func (s *OAuthService) WithEndpoint(authURL, tokenURL string) *OAuthService {
	s.config.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	return s
}

// AuthCodeURL builds the provider authorization URL carrying the CSRF
// state nonce.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// Exchange trades the authorization code for an access token and pulls
// the connected burner list out of the exchange response.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*TokenGrant, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	grant := &TokenGrant{AccessToken: token.AccessToken}

	// connected_burners rides alongside access_token in the exchange
	// response body; remarshal the extra field into typed structs.
	if extra := token.Extra("connected_burners"); extra != nil {
		raw, err := json.Marshal(extra)
		if err != nil {
			return nil, fmt.Errorf("failed to read connected burners: %w", err)
		}
		if err := json.Unmarshal(raw, &grant.ConnectedBurners); err != nil {
			return nil, fmt.Errorf("failed to parse connected burners: %w", err)
		}
	}

	return grant, nil
}
