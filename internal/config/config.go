// Package config holds habitcli configuration: where state lives on disk, how
// output is themed, and whether debug logging is enabled. Configuration is a
// YAML file loaded once at boot; environment variables override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all habitcli configuration.
type Config struct {
	// DataDir is where habits.json, user.json, and logs live.
	DataDir string `yaml:"data_dir"`

	// Theme selects the output color scheme: light, dark, or auto.
	Theme string `yaml:"theme"`

	// Logging controls the category file logger and audit journal.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures diagnostic logging. When DebugMode is false no log
// files are written at all.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataDir: defaultDataDir(),
		Theme:   "auto",
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home dir: fall back to the working directory.
		return ".habitcli"
	}
	return filepath.Join(home, ".habitcli")
}

// DefaultPath returns the config file location inside the default data dir.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// Load reads the configuration from path, applies environment overrides, and
// validates. A missing file yields the defaults, not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HABITCLI_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("HABITCLI_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("HABITCLI_DEBUG"); v == "1" || v == "true" {
		c.Logging.DebugMode = true
	}
}

// Validate checks the configuration for values the rest of the program cannot
// work with.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	switch c.Theme {
	case "light", "dark", "auto":
	default:
		return fmt.Errorf("theme must be light, dark, or auto (got %q)", c.Theme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
