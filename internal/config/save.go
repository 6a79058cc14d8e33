package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/radio4000/r4/internal/atomicfile"
)

type persistedConfig struct {
	Database     *string              `toml:"database,omitempty"`
	DefaultLimit *int                 `toml:"default_limit,omitempty"`
	LogLevel     *string              `toml:"log_level,omitempty"`
	LogFormat    *string              `toml:"log_format,omitempty"`
	UI           *persistedUISettings `toml:"ui,omitempty"`
}

type persistedUISettings struct {
	Accent *string `toml:"accent,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Keys lists the settings accepted by Set.
var Keys = []string{"database", "default_limit", "log_level", "log_format", "ui.accent"}

// Set assigns one setting by its TOML key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "database":
		c.Database = value
	case "default_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("default_limit must be a non-negative integer, got %q", value)
		}
		c.DefaultLimit = n
	case "log_level":
		switch value {
		case "", "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("log_level must be debug, info, warn or error, got %q", value)
		}
		c.LogLevel = value
	case "log_format":
		switch value {
		case "", "text", "json":
		default:
			return fmt.Errorf("log_format must be text or json, got %q", value)
		}
		c.LogFormat = value
	case "ui.accent":
		c.UI.Accent = value
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// SaveTo writes cfg to path atomically. Empty settings are omitted.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		Database:  nonEmptyPtr(cfg.Database),
		LogLevel:  nonEmptyPtr(cfg.LogLevel),
		LogFormat: nonEmptyPtr(cfg.LogFormat),
	}
	if cfg.DefaultLimit > 0 {
		limit := cfg.DefaultLimit
		out.DefaultLimit = &limit
	}
	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUISettings{Accent: accent}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
