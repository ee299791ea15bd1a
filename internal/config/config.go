// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/janderssonse/atlas/internal/adapters/restcountries"
	"github.com/janderssonse/atlas/internal/catalog"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// DefaultTimeout bounds the directory fetch.
const DefaultTimeout = 30 * time.Second

// ErrInvalidConfig is returned when a configuration value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the structure of config.toml.
type Config struct {
	Endpoint string `json:"endpoint" toml:"endpoint"  yaml:"endpoint"`
	PageSize int    `json:"pageSize" toml:"page_size" yaml:"pageSize"`
	Locale   string `json:"locale"   toml:"locale"    yaml:"locale"`
	Timeout  string `json:"timeout"  toml:"timeout"   yaml:"timeout"`
	LogFile  string `json:"logFile"  toml:"log_file"  yaml:"logFile"`
	LogLevel string `json:"logLevel" toml:"log_level" yaml:"logLevel"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Endpoint: restcountries.DefaultEndpoint,
		PageSize: catalog.DefaultPageSize,
		Locale:   "en",
		Timeout:  DefaultTimeout.String(),
		LogFile:  DefaultLogPath(),
		LogLevel: "info",
	}
}

// Load reads the TOML file at path over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	// #nosec G304 -- path comes from the user's own flag or XDG directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later.
func (c Config) Validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("%w: page_size must not be negative, got %d", ErrInvalidConfig, c.PageSize)
	}

	if _, err := c.Language(); err != nil {
		return err
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// Language parses the collation locale.
func (c Config) Language() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}

	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %w", ErrInvalidConfig, c.Locale, err)
	}

	return tag, nil
}

// TimeoutDuration parses the fetch timeout. Empty means DefaultTimeout, "0" disables it.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}

	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %w", ErrInvalidConfig, c.Timeout, err)
	}

	if timeout < 0 {
		return 0, fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}

	return timeout, nil
}

// Marshal renders the configuration as TOML, used by "atlas config".
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return data, nil
}
