// Package config loads application configuration from a YAML file, falling
// back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application settings.
type Config struct {
	Canvas struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"canvas"`

	Placement struct {
		Buffer      float64 `yaml:"buffer"`
		MaxAttempts int     `yaml:"max_attempts"`
	} `yaml:"placement"`

	Storage struct {
		// Backend is "file" or "sqlite".
		Backend string `yaml:"backend"`
		// Path is the layout directory (file backend) or database file
		// (sqlite backend). Empty means the per-user default location.
		Path string `yaml:"path"`
	} `yaml:"storage"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Canvas.Width = 800
	cfg.Canvas.Height = 600
	cfg.Placement.Buffer = 1
	cfg.Placement.MaxAttempts = 50
	cfg.Storage.Backend = "file"
	cfg.LogLevel = "info"
	return cfg
}

// DefaultPath returns the standard config file location,
// ~/.config/tableplan/config.yaml on Linux.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "tableplan", "config.yaml")
}

// Load reads the config file at path. A missing file yields the defaults;
// malformed YAML is an error so typos do not silently reset settings.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive")
	}
	if c.Placement.Buffer < 0 {
		return fmt.Errorf("placement buffer must be non-negative")
	}
	if c.Placement.MaxAttempts <= 0 {
		return fmt.Errorf("placement max_attempts must be positive")
	}
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
