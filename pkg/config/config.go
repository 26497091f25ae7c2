// Package config provides configuration management for the gf256gen CLI tool
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values used when flags are not given
type DefaultSettings struct {
	Polynomial string `json:"polynomial"` // Default: 0x11D (QR code polynomial)
	Format     string `json:"format"`     // Default: rust
	ExpName    string `json:"exp_name"`   // Default: EXP_TABLE
	LogName    string `json:"log_name"`   // Default: LOG_TABLE
	Package    string `json:"package"`    // Package clause for the go target
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool `json:"use_color"` // Enable colored output
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Polynomial: "0x11D",
			Format:     "rust",
			ExpName:    "EXP_TABLE",
			LogName:    "LOG_TABLE",
			Package:    "gf256",
		},
		UI: UIConfig{
			UseColor: true,
		},
	}
}

// Path returns the location of the config file,
// $XDG_CONFIG_HOME/gf256gen/config.json on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "gf256gen", "config.json"), nil
}

// Load reads the config file, falling back to built-in defaults when it
// does not exist. A malformed file is an error rather than silently ignored.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
