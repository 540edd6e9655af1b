// Package config handles global TeachMate configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the global configuration loaded from config.toml.
type Config struct {
	// DefaultRoster is the name of the default roster (from Rosters).
	DefaultRoster string `toml:"default_roster"`

	// Rosters maps roster names to directories. Each directory holds one
	// roster database.
	Rosters map[string]string `toml:"rosters"`

	// UI holds optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig holds optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output: an ANSI color code
	// ("0" to "255") or a hex color ("#RRGGBB").
	Accent string `toml:"accent"`
}

// GetRosterPath returns the directory for a named roster. If name is empty,
// the default roster is used; with no configuration at all, a per-user data
// directory is returned so the tool works out of the box.
func (c *Config) GetRosterPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultRoster
	}

	if name == "" {
		return DefaultRosterDir(), nil
	}

	if path, ok := c.Rosters[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("roster '%s' not found in config", name)
}

// DefaultRosterDir is the fallback roster directory when nothing is configured.
func DefaultRosterDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".teachmate")
	}
	return ".teachmate"
}

// Load loads configuration from the default location. A missing file yields
// an empty config.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the config file path, preferring the XDG-style
// ~/.config/teachmate/config.toml.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "teachmate", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "teachmate", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}
