// Package config loads the client configuration: defaults, then an optional
// TOML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Defaults.
const (
	DefaultAPIBase        = "http://localhost:8000/api"
	DefaultDBPath         = "storefront-client.db"
	DefaultTimeoutSeconds = 30
	DefaultPickupPostcode = "400001" // warehouse origin for rate quotes
)

// Config holds the client settings.
type Config struct {
	// APIBase is the root of the storefront REST API; every request path is
	// relative to it.
	APIBase string `toml:"api_base" env:"NAKHRALI_API_BASE"`
	// DBPath is the local bbolt database file.
	DBPath string `toml:"db_path" env:"NAKHRALI_DB_PATH"`
	// PickupPostcode is the warehouse postcode used as the origin of
	// shipping-rate and serviceability queries.
	PickupPostcode string `toml:"pickup_postcode" env:"NAKHRALI_PICKUP_POSTCODE"`
	// TimeoutSeconds bounds every HTTP request.
	TimeoutSeconds int `toml:"timeout_seconds" env:"NAKHRALI_TIMEOUT_SECONDS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBase:        DefaultAPIBase,
		DBPath:         DefaultDBPath,
		PickupPostcode: DefaultPickupPostcode,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Load builds the configuration from defaults, the TOML file at path (missing
// file is fine, empty path skips the file entirely), and environment
// variables, in that precedence order.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.PickupPostcode == "" {
		cfg.PickupPostcode = DefaultPickupPostcode
	}

	return cfg, nil
}

// Timeout returns the HTTP request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
