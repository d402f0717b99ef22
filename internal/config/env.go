package config

import (
	"fmt"
	"os"
	"time"
)

// LoadFromEnv applies ACTIVE_WINDOW_* environment variables over cfg.
func LoadFromEnv(cfg *Config) error {
	if format := os.Getenv("ACTIVE_WINDOW_FORMAT"); format != "" {
		cfg.Format = format
	}

	if timeout := os.Getenv("ACTIVE_WINDOW_SCRIPT_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("ACTIVE_WINDOW_SCRIPT_TIMEOUT: %w", err)
		}
		cfg.ScriptTimeout = d
	}

	if level := os.Getenv("ACTIVE_WINDOW_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return nil
}
