// Package config provides password configuration and hashing functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for operator password hashing and
// verification. Token issuance checks the supplied password against
// OperatorHash before signing a JWT.
type PasswordConfig struct {
	BcryptCost   int
	Pepper       string // optional global secret for additional security
	OperatorHash string // bcrypt hash the token command verifies against
}

// NewPasswordConfig creates a new password configuration from environment
// variables: BCRYPT_COST (default: 12), PASSWORD_PEPPER (optional) and
// OPERATOR_PASSWORD_HASH (required to issue tokens).
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		parsed, err := strconv.Atoi(costStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{
		BcryptCost:   cost,
		Pepper:       os.Getenv("PASSWORD_PEPPER"),
		OperatorHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
	}, nil
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	return err == nil
}

// VerifyOperator verifies a password against the configured operator hash.
func (c *PasswordConfig) VerifyOperator(pw string) bool {
	if c.OperatorHash == "" {
		return false
	}
	return c.VerifyPassword(pw, c.OperatorHash)
}
