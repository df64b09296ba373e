// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resumepdf/internal/pdf"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to the resume source file
	Output string `json:"output,omitempty"` // Path to write the generated PDF

	// Parsing
	Format string `json:"format,omitempty"` // Source format: json, yaml, markdown or plaintext

	// Page geometry overrides, in points
	Margin          float64 `json:"margin,omitempty"`            // Uniform page margin
	MinBottomMargin float64 `json:"min_bottom_margin,omitempty"` // Bottom floor content must not cross

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
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
	switch c.Format {
	case "", "json", "yaml", "markdown", "plaintext":
	default:
		return fmt.Errorf("config error: unknown format %q", c.Format)
	}

	if c.Margin < 0 {
		return fmt.Errorf("config error: 'margin' must be non-negative")
	}
	if c.MinBottomMargin < 0 {
		return fmt.Errorf("config error: 'min_bottom_margin' must be non-negative")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// Geometry returns the page geometry with any configured overrides
// applied on top of the defaults.
func (c *Config) Geometry() pdf.Geometry {
	geom := pdf.DefaultGeometry()
	if c.Margin > 0 {
		geom.Margin = c.Margin
	}
	if c.MinBottomMargin > 0 {
		geom.MinBottomMargin = c.MinBottomMargin
	}
	return geom
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Margin == 0 {
		result.Margin = defaults.Margin
	}
	if result.MinBottomMargin == 0 {
		result.MinBottomMargin = defaults.MinBottomMargin
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
