// Package config loads, validates, watches and writes the bsptile configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading config.toml from the
// XDG config directory, then the current directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir, ".")
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(path string) (*Manager, error) {
	m, err := newManager()
	if err != nil {
		return nil, err
	}
	m.viper.SetConfigFile(path)
	return m, nil
}

func newManager(paths ...string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// BSPTILE_LAYOUT_GAP, BSPTILE_DATABASE_PATH, ...
	v.SetEnvPrefix("BSPTILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "BSPTILE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind BSPTILE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "BSPTILE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BSPTILE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config: %w\nTry creating the directory manually or check permissions", createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, fills derived values and validates.
// Must be called with m.mu held.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Layout.DefaultMode = strings.ToLower(strings.TrimSpace(config.Layout.DefaultMode))
	if config.Layout.DefaultMode == "" {
		config.Layout.DefaultMode = "default"
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
	for i, name := range config.Desktops.Names {
		config.Desktops.Names[i] = strings.TrimSpace(name)
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	configCopy.Desktops.Names = append([]string(nil), m.config.Desktops.Names...)
	return &configCopy
}

// GetConfigFile returns the file the configuration was read from.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.gap", defaults.Layout.Gap)
	m.viper.SetDefault("layout.default_mode", defaults.Layout.DefaultMode)
	m.viper.SetDefault("layout.master_ratio", defaults.Layout.MasterRatio)
	m.viper.SetDefault("layout.resize_step", defaults.Layout.ResizeStep)
	m.viper.SetDefault("layout.max_nodes", defaults.Layout.MaxNodes)

	m.viper.SetDefault("desktops.count", defaults.Desktops.Count)
	m.viper.SetDefault("desktops.names", defaults.Desktops.Names)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("snapshots.enabled", defaults.Snapshots.Enabled)
	m.viper.SetDefault("snapshots.max_kept", defaults.Snapshots.MaxKept)
	m.viper.SetDefault("snapshots.interval_ms", defaults.Snapshots.IntervalMs)
}
