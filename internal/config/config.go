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
	Batch    string `json:"batch,omitempty"`    // Path to candidate batch JSON file
	Criteria string `json:"criteria,omitempty"` // Path to job criteria JSON file

	// Behavior
	Workers int    `json:"workers,omitempty"`  // Screening worker pool size
	APIKey  string `json:"api_key,omitempty"`  // Gemini API key
	Offline bool   `json:"offline,omitempty"`  // Skip the semantic provider (rescue scores 0)
	Verbose bool   `json:"verbose,omitempty"`  // Print detailed output
	JSONLog bool   `json:"json_log,omitempty"` // Emit JSON logs instead of console
	Debug   bool   `json:"debug,omitempty"`    // Log at debug level
	Output  string `json:"output,omitempty"`   // Path to write result JSON ("" = stdout)
	DBURL   string `json:"db_url,omitempty"`   // PostgreSQL connection URL
	Timeout int    `json:"timeout,omitempty"`  // Whole-run timeout in seconds (0 = none)
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

// Validate checks that the configuration has valid values. Required fields
// are checked after CLI flag merging, not here.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config error: 'timeout' must be non-negative")
	}
	return nil
}
