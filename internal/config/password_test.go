package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_FromEnv(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "server-side-secret")

	cfg, err := NewPasswordConfig()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "server-side-secret", cfg.Pepper)
}

func TestNewPasswordConfig_RejectsBadCost(t *testing.T) {
	for _, cost := range []string{"9", "15", "abc", "-1"} {
		t.Setenv("BCRYPT_COST", cost)
		_, err := NewPasswordConfig()
		assert.Error(t, err, "cost %q", cost)
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	hash, err := cfg.HashPassword("correct horse battery staple")

	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	a, err := cfg.HashPassword("same input")
	require.NoError(t, err)
	b, err := cfg.HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_PepperMismatch(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: bcrypt.MinCost, Pepper: "pepper-a"}
	hash, err := peppered.HashPassword("pw")
	require.NoError(t, err)

	other := &PasswordConfig{BcryptCost: bcrypt.MinCost, Pepper: "pepper-b"}
	plain := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	assert.True(t, peppered.VerifyPassword("pw", hash))
	assert.False(t, other.VerifyPassword("pw", hash))
	assert.False(t, plain.VerifyPassword("pw", hash))
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	assert.False(t, cfg.VerifyPassword("pw", "not-a-bcrypt-hash"))
	assert.False(t, cfg.VerifyPassword("pw", ""))
}
