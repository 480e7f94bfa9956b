// Package config loads tool settings from compiled defaults, an optional
// YAML config file and SITEALIAS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SITEALIAS_"

// Config holds the settings shared by every command.
type Config struct {
	// File is the definition file path. Empty means the default location.
	File      string `koanf:"file"`
	Embedded  bool   `koanf:"embedded"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"file":       "",
		"embedded":   false,
		"log_level":  "warn",
		"log_format": "text",
	}
}

// DefaultPath returns $HOME/.sitealias/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".sitealias", "config.yaml"), nil
}

// Load builds a Config. configPath may be empty; a missing file at a
// non-empty path is only an error when required is true.
func Load(configPath string, required bool) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load config defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
			}
		} else if required || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		} else {
			slog.Debug("config file not found, using defaults", "path", configPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps SITEALIAS_LOG_LEVEL to log_level.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Validate normalizes and checks the settings.
func (cfg *Config) Validate() error {
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", cfg.LogLevel)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q (want text or json)", cfg.LogFormat)
	}
	if cfg.Embedded && cfg.File != "" {
		return fmt.Errorf("file and embedded are mutually exclusive")
	}
	return nil
}
