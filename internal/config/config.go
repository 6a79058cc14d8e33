// Package config handles the global r4 configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// AppDir is the directory name used under the XDG config and data homes.
const AppDir = "radio4000"

// Config represents the global r4 configuration.
type Config struct {
	// Database is the path of the SQLite data file.
	// Defaults to $XDG_DATA_HOME/radio4000/r4.db.
	Database string `toml:"database"`

	// DefaultLimit caps result lists when no --limit is given. 0 means no cap.
	DefaultLimit int `toml:"default_limit"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `toml:"log_format"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// DatabasePath returns the configured database path, or the default one.
// A leading "~/" is expanded to the home directory.
func (c *Config) DatabasePath() string {
	if c == nil || strings.TrimSpace(c.Database) == "" {
		return DefaultDatabasePath()
	}
	return expandHome(c.Database)
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path.
// A missing file yields the zero config.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.DefaultLimit < 0 {
		return nil, fmt.Errorf("invalid config %s: default_limit must not be negative", path)
	}
	return &cfg, nil
}

// ResolvePath resolves the effective config path from an optional override.
func ResolvePath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return expandHome(explicit)
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path,
// $XDG_CONFIG_HOME/radio4000/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppDir, "config.toml")
}

// DefaultDatabasePath returns $XDG_DATA_HOME/radio4000/r4.db.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, AppDir, "r4.db")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

const defaultConfig = `# r4 configuration

# SQLite data file (defaults to $XDG_DATA_HOME/radio4000/r4.db)
# database = "~/music/r4.db"

# Cap result lists when --limit is not given (0 = no cap)
# default_limit = 20

# Logging to stderr: debug, info, warn, error / text, json
# log_level = "warn"
# log_format = "text"

# Optional UI accent color for headers and slugs.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

// CreateDefault writes a commented default config file at path if none
// exists. It returns true when a file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
