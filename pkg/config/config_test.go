package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DatabaseFilePath)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, time.Duration(0), cfg.GenerationDelay)
	assert.Equal(t, time.Duration(0), cfg.CheckoutDelay)
	assert.NotEmpty(t, cfg.Hostname)
}

func TestNew_JWTSecretFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestNew_DevelopmentPortOverride(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("PORT", "9999")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.ServerPort)
	assert.True(t, cfg.DatabaseDebug)
}
