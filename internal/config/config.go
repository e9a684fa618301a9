// ABOUTME: Gym configuration management with backend selection.
// ABOUTME: Reads a JSON config file with environment overrides and opens the storage gateway.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/harperreed/gym/internal/storage"
)

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendCharm  = "charm"
)

// Config stores gym tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger", or "charm".
	Backend string `json:"backend,omitempty" env:"GYM_BACKEND"`

	// DataDir is the root directory for local backends.
	// Supports ~ expansion. Defaults to ~/.local/share/gym.
	DataDir string `json:"data_dir,omitempty" env:"GYM_DATA_DIR"`

	// LogFile, when set, receives logs through a rotating writer instead of stderr.
	LogFile string `json:"log_file,omitempty" env:"GYM_LOG_FILE"`

	// LogLevel is debug, info, warn, or error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty" env:"GYM_LOG_LEVEL"`

	// CharmHost is the charm server used by the charm backend.
	CharmHost string `json:"charm_host,omitempty" env:"CHARM_HOST"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogFile returns the log file path with ~ expanded.
func (c *Config) GetLogFile() string {
	return ExpandPath(c.LogFile)
}

// GetCharmHost returns the charm server, defaulting to the public one.
func (c *Config) GetCharmHost() string {
	if c.CharmHost == "" {
		return storage.DefaultCharmHost
	}
	return c.CharmHost
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

// OpenStorage creates a Gateway implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Gateway, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case BackendSQLite:
		return storage.OpenSQLite(filepath.Join(dataDir, "gym.db"))
	case BackendBadger:
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case BackendCharm:
		return storage.OpenCharm("gym", c.GetCharmHost())
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gym", "config.json")
}

// Load reads config from disk, then applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	var cfg Config
	path := GetConfigPath()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
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
