package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Theme is the UI theme preference. It is persisted independently of
// the session lifecycle.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config represents the user's configuration
type Config struct {
	BaseURL string `json:"base_url"`
	Theme   Theme  `json:"theme"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeLight,
	}
}

// configDir returns the config directory path (~/.taskman)
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskman"), nil
}

// configPath returns the full config file path (~/.taskman/config.json)
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, then applies environment overrides.
// A .env file in the working directory is honored; TASKMAN_API_URL
// overrides the configured base URL either way.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// .env is optional; absence is not an error
	_ = godotenv.Load()
	if url := os.Getenv("TASKMAN_API_URL"); url != "" {
		cfg.BaseURL = url
	}

	if cfg.Theme != ThemeDark {
		cfg.Theme = ThemeLight
	}

	return cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
