package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")
	t.Setenv("OPERATOR_PASSWORD_HASH", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
	assert.Empty(t, cfg.OperatorHash)
}

func TestNewPasswordConfig_CostBounds(t *testing.T) {
	tests := []struct {
		cost    string
		wantErr bool
	}{
		{"10", false},
		{"14", false},
		{"9", true},
		{"15", true},
		{"abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.cost, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			_, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cfg.VerifyPassword("s3cret", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestVerifyPassword_PepperMismatch(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-a"}
	hash, err := peppered.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("s3cret", hash))

	otherPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-b"}
	assert.False(t, otherPepper.VerifyPassword("s3cret", hash))
}

func TestVerifyOperator(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("op-password")
	require.NoError(t, err)

	t.Run("no hash configured", func(t *testing.T) {
		assert.False(t, cfg.VerifyOperator("op-password"))
	})

	t.Run("matching password", func(t *testing.T) {
		withHash := &PasswordConfig{BcryptCost: 10, OperatorHash: hash}
		assert.True(t, withHash.VerifyOperator("op-password"))
		assert.False(t, withHash.VerifyOperator("intruder"))
	})
}
