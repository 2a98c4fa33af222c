// ABOUTME: fittrack configuration management with backend selection.
// ABOUTME: Handles settings, validation, and the storage backend factory function.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harperreed/fittrack/internal/storage"
)

// Backend names accepted in the config file.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
)

// LogLevelEnv overrides the configured log level when set.
const LogLevelEnv = "FITTRACK_LOG_LEVEL"

// Config stores fittrack configuration.
type Config struct {
	// Backend selects the storage backend: "json" (default), "sqlite", or "charm".
	Backend string `json:"backend,omitempty" validate:"omitempty,oneof=json sqlite charm"`

	// DataDir is the root directory for data storage.
	// JSON puts fitness_data.json here. SQLite puts fittrack.db here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fittrack.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// LogFile sends logs to a rotated file instead of stderr.
	LogFile string `json:"log_file,omitempty"`

	// CharmHost is the Charm server for the charm backend.
	CharmHost string `json:"charm_host,omitempty" validate:"omitempty,hostname_rfc1123"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q", fe.Field(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// GetBackend returns the configured backend, defaulting to "json".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendJSON
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the log level, preferring the environment override.
func (c *Config) GetLogLevel() string {
	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		return strings.ToLower(lvl)
	}
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// GetLogFile returns the log file path with ~ expanded, or "" for stderr.
func (c *Config) GetLogFile() string {
	return ExpandPath(c.LogFile)
}

// GetCharmHost returns the Charm server, defaulting to storage.DefaultCharmHost.
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

// DataFilePath returns the JSON document path inside the data directory.
func (c *Config) DataFilePath() string {
	return filepath.Join(c.GetDataDir(), storage.DefaultDataFile)
}

// OpenBackend creates the configured storage backend.
func (c *Config) OpenBackend() (storage.Backend, error) {
	return c.OpenNamedBackend(c.GetBackend())
}

// OpenNamedBackend creates a backend by name using this config's data
// directory and Charm host.
func (c *Config) OpenNamedBackend(name string) (storage.Backend, error) {
	dataDir := c.GetDataDir()

	switch name {
	case BackendJSON:
		return storage.NewJSONFile(filepath.Join(dataDir, storage.DefaultDataFile)), nil
	case BackendSQLite:
		return storage.OpenSQLite(filepath.Join(dataDir, storage.DefaultDBFile))
	case BackendCharm:
		return storage.OpenCharm(c.GetCharmHost())
	default:
		return nil, fmt.Errorf("unknown backend: %q", name)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}

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
