// Package config loads the optional YAML config file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mj1618/active-window/internal/scripting"
	"gopkg.in/yaml.v3"
)

// Config holds defaults for the command-line flags and the browser table.
type Config struct {
	Format                      string        `yaml:"format"`
	Pretty                      bool          `yaml:"pretty"`
	OpenWindowsList             bool          `yaml:"open_windows_list"`
	NoAccessibilityPermission   bool          `yaml:"no_accessibility_permission"`
	NoScreenRecordingPermission bool          `yaml:"no_screen_recording_permission"`
	ScriptTimeout               time.Duration `yaml:"script_timeout"`
	LogLevel                    string        `yaml:"log_level"`

	// Browsers adds bundle ids to a scripting family, keyed by family name
	// ("shared-tab", "document", "document-window", "named-tab").
	Browsers map[string][]string `yaml:"browsers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:        "json",
		ScriptTimeout: 5 * time.Second,
		LogLevel:      "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/active-window/config.yaml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "active-window", "config.yaml")
}

// Load reads path on top of Default and applies environment overrides.
// A missing file is only an error when mustExist is set (an explicit --config).
func Load(path string, mustExist bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !mustExist:
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that flags cannot repair later.
func (c *Config) Validate() error {
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported format: %s (use json or yaml)", c.Format)
	}
	if c.ScriptTimeout < 0 {
		return fmt.Errorf("script_timeout must not be negative, got %s", c.ScriptTimeout)
	}
	if _, err := c.Families(); err != nil {
		return err
	}
	return nil
}

// Families flattens Browsers into a bundle id -> family map for scripting.Table.With.
func (c *Config) Families() (map[string]scripting.Family, error) {
	if len(c.Browsers) == 0 {
		return nil, nil
	}
	families := make(map[string]scripting.Family)
	for name, ids := range c.Browsers {
		family, err := scripting.ParseFamily(name)
		if err != nil {
			return nil, fmt.Errorf("browsers: %w", err)
		}
		for _, id := range ids {
			families[id] = family
		}
	}
	return families, nil
}
