// Package config handles loading and saving user configuration for aksara.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user configuration for the translation client.
type Config struct {
	Endpoint    string `yaml:"endpoint"`     // Translation engine URL
	Debug       bool   `yaml:"debug"`        // Start with introspection enabled
	HistoryPath string `yaml:"history_path"` // SQLite database for past translations
	LogPath     string `yaml:"log_path"`     // Log file (the TUI owns the terminal)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig(configDir string) *Config {
	return &Config{
		Endpoint:    "http://localhost:5000/translate",
		Debug:       false,
		HistoryPath: filepath.Join(configDir, "history.db"),
		LogPath:     filepath.Join(configDir, "aksara.log"),
	}
}

// LoadConfig loads configuration from config.yaml in the given directory,
// falling back to defaults for anything unset. A missing file is not an
// error: the defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(dir), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig(dir)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes configuration to config.yaml in the given directory.
func SaveConfig(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
