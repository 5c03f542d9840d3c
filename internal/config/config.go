// Package config provides application configuration loading from environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultRefreshInterval is how often watch mode re-reads the clock for
// display purposes. The refresh never mutates persisted state.
const DefaultRefreshInterval = 60 * time.Second

// Config holds all configuration for the application.
type Config struct {
	DBPath          string
	LogLevel        string
	LogJSON         bool
	RefreshInterval time.Duration
}

// Load reads configuration from environment variables, with a .env file as
// an optional source. Every setting has a usable default, so Load only
// fails when the home directory cannot be resolved for the default
// database path.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:          os.Getenv("PENNYWISE_DB_PATH"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogJSON:         os.Getenv("LOG_FORMAT") == "json",
		RefreshInterval: DefaultRefreshInterval,
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = filepath.Join(home, ".pennywise", "pennywise.db")
	}

	if raw := os.Getenv("PENNYWISE_REFRESH_INTERVAL"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.RefreshInterval = time.Duration(secs) * time.Second
		}
	}

	return cfg, nil
}
