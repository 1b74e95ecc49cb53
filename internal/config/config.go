// ABOUTME: bmi configuration management.
// ABOUTME: Resolves the database path from the config file, environment, and flags.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/harperreed/bmi/internal/storage"
)

// ErrNoDatabase is returned when no database path is configured.
var ErrNoDatabase = errors.New("no database configured")

// Config stores bmi tool configuration.
type Config struct {
	// Database is the SQLite file holding BMI records.
	// Supports ~ expansion for home directory.
	Database string `json:"database,omitempty" env:"BMI_DATABASE"`
}

// Override replaces the database path when db is non-empty.
func (c *Config) Override(db string) {
	if db != "" {
		c.Database = db
	}
}

// Validate reports ErrNoDatabase when the database path is empty.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("%w: set BMI_DATABASE, pass --db, or run 'bmi config init' (%s)",
			ErrNoDatabase, GetConfigPath())
	}
	return nil
}

// DatabasePath returns the configured database path with ~ expanded.
func (c *Config) DatabasePath() string {
	return ExpandPath(strings.TrimSpace(c.Database))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage validates the config and opens the SQLite repository.
func (c *Config) OpenStorage() (storage.Repository, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	db, err := storage.Open(c.DatabasePath())
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "bmi", "config.json")
}

// Load reads config from disk and applies environment overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
