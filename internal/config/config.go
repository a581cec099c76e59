// Package config loads the officemd configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/klauspost/compress/flate"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/officemd/pptx"
	"github.com/tsawler/officemd/xlsx"
)

// Config represents the officemd configuration
type Config struct {
	MaxSheetRows      int    `yaml:"max_sheet_rows"`
	DefaultSlideTitle string `yaml:"default_slide_title"`
	FallbackSheetName string `yaml:"fallback_sheet_name"`
	CompressionLevel  int    `yaml:"compression_level"`
	LogLevel          string `yaml:"log_level"`
	ViewStyle         string `yaml:"view_style"`

	// Source is the file the configuration was read from; empty when the
	// defaults are in effect.
	Source string `yaml:"-"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxSheetRows:      xlsx.DefaultMaxRows,
		DefaultSlideTitle: pptx.DefaultTitle,
		FallbackSheetName: xlsx.DefaultFallbackSheet,
		CompressionLevel:  flate.DefaultCompression,
		LogLevel:          "warn",
		ViewStyle:         "auto",
	}
}

// ConfigPath returns the path to the config file.
// Can be overridden for testing
var ConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "officemd", "config.yaml")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads configuration from path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MaxSheetRows <= 0 {
		return fmt.Errorf("max_sheet_rows must be positive")
	}
	if c.DefaultSlideTitle == "" {
		return fmt.Errorf("default_slide_title cannot be empty")
	}
	if c.FallbackSheetName == "" {
		return fmt.Errorf("fallback_sheet_name cannot be empty")
	}
	if c.CompressionLevel < flate.HuffmanOnly || c.CompressionLevel > flate.BestCompression {
		return fmt.Errorf("invalid compression_level %d: must be between %d and %d",
			c.CompressionLevel, flate.HuffmanOnly, flate.BestCompression)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error", c.LogLevel)
	}

	if c.ViewStyle == "" {
		return fmt.Errorf("view_style cannot be empty")
	}

	return nil
}
