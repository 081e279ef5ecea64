package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSigningSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 12, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 4, cfg.Auth.TempPasswordBytes)
	assert.Equal(t, "post-service", cfg.App.Name)
	assert.Equal(t, "3000", cfg.App.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "24")
	t.Setenv("AUTH_BCRYPT_COST", "10")
	t.Setenv("APP_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "8080", cfg.App.Port)
}
