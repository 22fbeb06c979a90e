package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-profiler/internal/config"
	"github.com/jonathan/cv-profiler/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an operator bearer token",
	Long: `Verifies the operator password against OPERATOR_PASSWORD_HASH and prints a signed JWT for use against the REST API.

With --hash, prints the bcrypt hash of the password instead, for initial setup.`,
	RunE: runTokenCmd,
}

var (
	tokenPassword string
	tokenHashOnly bool
)

func init() {
	tokenCmd.Flags().StringVarP(&tokenPassword, "password", "p", "", "Operator password")
	tokenCmd.Flags().BoolVar(&tokenHashOnly, "hash", false, "Print the bcrypt hash of the password and exit")
	_ = tokenCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(tokenCmd)
}

func runTokenCmd(_ *cobra.Command, _ []string) error {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	if tokenHashOnly {
		hash, err := passwordConfig.HashPassword(tokenPassword)
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	}

	if !passwordConfig.VerifyOperator(tokenPassword) {
		return fmt.Errorf("invalid operator password")
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(uuid.New())
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(token)
	return nil
}
