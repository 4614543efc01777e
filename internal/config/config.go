// Package config manages the demo application configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the demo application configuration.
type Config struct {
	Version    int    `toml:"version"`
	Dataset    string `toml:"dataset"`
	Async      bool   `toml:"async"`
	DebounceMs int    `toml:"debounce_ms"`
	Multiple   bool   `toml:"multiple"`
	MaxVisible int    `toml:"max_visible"`
}

// Service handles configuration management.
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config
// directory, falling back to ~/.config when it is unavailable.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := homedir.Dir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}

	return &service{
		filePath: filepath.Join(configDir, "autocomplete", "config.toml"),
	}
}

// Load loads the configuration, returning defaults when no file exists.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to the service's default path.
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath loads configuration from a specific path. A leading ~ in
// the path is expanded.
func (s *service) LoadFromPath(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path, creating the
// directory when needed.
func (s *service) SaveToPath(config *Config, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Dataset:    "fruits",
		Async:      false,
		DebounceMs: 600,
		Multiple:   true,
		MaxVisible: 8,
	}
}
