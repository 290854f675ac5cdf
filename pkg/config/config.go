// Package config loads the daemon configuration from a YAML file with
// environment-independent defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config is the full daemon configuration.
type Config struct {
	ListenAddr string        `yaml:"listenAddr"`
	LogLevel   string        `yaml:"logLevel"`
	Storage    StorageConfig `yaml:"storage"`
}

// StorageConfig selects and parameterizes the storage backend.
type StorageConfig struct {
	Backend     string `yaml:"backend"`
	DatabaseURL string `yaml:"databaseUrl"`
	// SnapshotPath optionally seeds a memory store from a snapshot file.
	SnapshotPath string `yaml:"snapshotPath"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		Storage: StorageConfig{
			Backend: BackendMemory,
		},
	}
}

// Load reads a YAML config file, layering it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("storage backend %q requires databaseUrl", c.Storage.Backend)
		}
		if c.Storage.SnapshotPath != "" {
			return fmt.Errorf("snapshotPath is only supported with the %q backend", BackendMemory)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listenAddr must not be empty")
	}
	return nil
}
