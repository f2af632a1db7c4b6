// Package config resolves client settings from a TOML file, the
// environment, and command-line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config carries the deployment constants and client defaults. The
// base URL and key are visible to any client; they are not a secret.
type Config struct {
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	Difficulty string `toml:"difficulty"`
	LogLevel   string `toml:"log_level"`
	LogFile    string `toml:"log_file"`
}

// DefaultPath is $XDG_CONFIG_HOME/sudoku-tui/config.toml, falling
// back to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "sudoku-tui", "config.toml")
}

// Load reads a TOML config. A missing file is only an error when the
// path was given explicitly; the default path is allowed to not
// exist yet.
func Load(path string, explicit bool) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overlays SUDOKU_BASE_URL and SUDOKU_API_KEY when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SUDOKU_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SUDOKU_API_KEY"); v != "" {
		c.APIKey = v
	}
}

// Validate checks the fields without which no request can be made.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required (config file, SUDOKU_BASE_URL, or --base-url)")
	}
	if c.APIKey == "" {
		return errors.New("api_key is required (config file, SUDOKU_API_KEY, or --api-key)")
	}
	return nil
}
