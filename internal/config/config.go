// Package config provides configuration loading and validation for the CLI
// and server.
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
	Body    string `json:"body,omitempty"`    // Path to body profile JSON file
	Garment string `json:"garment,omitempty"` // Path to garment profile JSON file
	Batch   string `json:"batch,omitempty"`   // Path to a JSON array of garment profiles

	// Identity
	UserID string `json:"user_id,omitempty"` // User UUID (required for DB-persisted runs)

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed scoring breakdown
	Persist     bool   `json:"persist,omitempty"`      // Store run and artifacts in the database
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
// Note: required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Garment != "" && c.Batch != "" {
		return fmt.Errorf("config error: 'garment' and 'batch' are mutually exclusive")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	for _, p := range []string{c.Body, c.Garment, c.Batch} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", p)
		}
	}

	if c.Persist && c.DatabaseURL == "" && os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("config error: 'persist' requires 'database_url' or DATABASE_URL")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Body == "" {
		result.Body = defaults.Body
	}
	if result.Garment == "" {
		result.Garment = defaults.Garment
	}
	if result.Batch == "" {
		result.Batch = defaults.Batch
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
