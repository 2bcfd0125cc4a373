package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config keeps runtime settings for the CLI and background jobs.
type Config struct {
	DatabasePath    string
	DefaultUser     string
	InsightInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		DatabasePath:    strings.TrimSpace(os.Getenv("MOMENTUM_DB")),
		DefaultUser:     strings.TrimSpace(os.Getenv("MOMENTUM_USER")),
		InsightInterval: parseInterval(strings.TrimSpace(os.Getenv("INSIGHT_INTERVAL_HOURS"))),
	}

	if cfg.DatabasePath == "" {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			cfg.DatabasePath = filepath.Join(home, ".momentum", "momentum.db")
		} else {
			cfg.DatabasePath = "momentum.db"
		}
	}

	if cfg.DefaultUser == "" {
		cfg.DefaultUser = "local"
	}

	if cfg.InsightInterval == 0 {
		cfg.InsightInterval = 24 * time.Hour
	}

	return cfg
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
