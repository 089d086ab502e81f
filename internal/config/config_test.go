package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/burnerlabs/gifbot-backend/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CLIENT_ID", "client-id")
	t.Setenv("CLIENT_SECRET", "client-secret")
	t.Setenv("CALLBACK_URL", "http://localhost:5000/oauth/callback")
	t.Setenv("SCOPE", "messages:connect, burners:read")
	t.Setenv("GIPHY_KEY", "giphy-key")
	t.Setenv("SESSION_KEY", "c2Vzc2lvbi1rZXktc2Vzc2lvbi1rZXktMTI=")
}

func TestLoad(t *testing.T) {
	t.Run("reads the full configuration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "9000")
		t.Setenv("DB_NAME", "gifbot_test")

		cfg, err := config.Load()
		require.NoError(t, err)

		require.Equal(t, "9000", cfg.Server.Port)
		require.Equal(t, "gifbot_test", cfg.Database.Name)
		require.Equal(t, "client-id", cfg.OAuth.ClientID)
		require.Equal(t, []string{"messages:connect", "burners:read"}, cfg.OAuth.Scopes)
		require.Equal(t, "giphy-key", cfg.Giphy.APIKey)
	})

	t.Run("defaults apply when optional keys are unset", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "")

		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, "5000", cfg.Server.Port)
		require.Equal(t, "localhost", cfg.Database.Host)
	})

	t.Run("missing OAuth credentials fail loudly", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CLIENT_ID", "")

		_, err := config.Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "OAuth")
	})

	t.Run("missing giphy key fails loudly", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("GIPHY_KEY", "")

		_, err := config.Load()
		require.Error(t, err)
	})
}
