// Package config loads the storefront configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings.
type Config struct {
	Addr    string `yaml:"addr"`
	WebDir  string `yaml:"web_dir"`
	DataDir string `yaml:"data_dir"`
	// AnonymizeNames stores placeholder first/surnames on sign-up instead of
	// the submitted ones.
	AnonymizeNames bool `yaml:"anonymize_names"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:           ":8080",
		WebDir:         "web",
		DataDir:        "data",
		AnonymizeNames: true,
	}
}

// Load reads the config file at path (when non-empty) over the defaults, then
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Addr = env("BOOKSTORE_ADDR", cfg.Addr)
	cfg.WebDir = env("BOOKSTORE_WEB_DIR", cfg.WebDir)
	cfg.DataDir = env("BOOKSTORE_DATA_DIR", cfg.DataDir)
	return cfg, nil
}

// DatabasePath is the embedded database file for the durable slices.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "bookstore.db")
}

// SnapshotDir holds the JSON snapshots of the session-scoped slices.
func (c Config) SnapshotDir() string {
	return filepath.Join(c.DataDir, "snapshots")
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
