package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
	assert.Equal(t, 24*time.Hour, cfg.TTL())
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.TTL())
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()

	assert.Error(t, err)
}

func TestNewJWTConfig_RejectsBadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	for _, hours := range []string{"0", "-3", "abc"} {
		t.Setenv("JWT_EXPIRATION_HOURS", hours)
		_, err := NewJWTConfig()
		assert.Error(t, err, "hours %q", hours)
	}
}
