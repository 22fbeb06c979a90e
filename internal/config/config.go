// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input     string `json:"input,omitempty"`      // Path to a résumé file (txt or html)
	InputDir  string `json:"input_dir,omitempty"`  // Directory of résumé files for batch runs
	OutputDir string `json:"output_dir,omitempty"` // Where profile JSON snapshots are written

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for enrichment
	Enrich      bool   `json:"enrich,omitempty"`       // Enable LLM enrichment pass
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port for serve

	// Limits
	Concurrency int `json:"concurrency,omitempty"` // Parallel documents in batch mode
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Input != "" && c.InputDir != "" {
		return fmt.Errorf("config error: 'input' and 'input_dir' are mutually exclusive")
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.InputDir != "" {
		if _, err := os.Stat(c.InputDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: input directory not found: %s", c.InputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.InputDir == "" {
		result.InputDir = defaults.InputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		if defaults.Concurrency > 0 {
			result.Concurrency = defaults.Concurrency
		} else {
			result.Concurrency = 4 // Default parallelism for batch runs
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
