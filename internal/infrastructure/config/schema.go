package config

import (
	"math"

	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
)

// Config represents the complete configuration for bsptile.
type Config struct {
	// Layout controls the geometry engine.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Desktops defines the fixed set of virtual desktops.
	Desktops  DesktopsConfig  `mapstructure:"desktops" yaml:"desktops" toml:"desktops" json:"desktops"`
	Database  DatabaseConfig  `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Snapshots SnapshotsConfig `mapstructure:"snapshots" yaml:"snapshots" toml:"snapshots" json:"snapshots"`
}

// LayoutConfig controls gaps, ratios and the initial layout mode.
type LayoutConfig struct {
	// Gap is the space in pixels between windows and around the screen edge.
	Gap int `mapstructure:"gap" yaml:"gap" toml:"gap" json:"gap" jsonschema:"minimum=0,maximum=500,default=10"`
	// DefaultMode is the layout new desktops start in.
	DefaultMode string `mapstructure:"default_mode" yaml:"default_mode" toml:"default_mode" json:"default_mode" jsonschema:"enum=default,enum=master,enum=stack,enum=grid,default=default"`
	// MasterRatio is the share of the screen width given to the master window.
	MasterRatio float64 `mapstructure:"master_ratio" yaml:"master_ratio" toml:"master_ratio" json:"master_ratio" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1,default=0.7"`
	// ResizeStep is the number of pixels moved by one resize step.
	ResizeStep int `mapstructure:"resize_step" yaml:"resize_step" toml:"resize_step" json:"resize_step" jsonschema:"minimum=1,default=5"`
	// MaxNodes caps the number of tree nodes across all desktops (0 = unlimited).
	MaxNodes int `mapstructure:"max_nodes" yaml:"max_nodes" toml:"max_nodes" json:"max_nodes" jsonschema:"minimum=0,default=0"`
}

// DesktopsConfig defines the virtual desktops.
type DesktopsConfig struct {
	Count int `mapstructure:"count" yaml:"count" toml:"count" json:"count" jsonschema:"minimum=1,maximum=32,default=10"`
	// Names overrides desktop names by position. Missing names fall back to the desktop number.
	Names []string `mapstructure:"names" yaml:"names" toml:"names" json:"names"`
}

// DatabaseConfig locates the layout snapshot store.
type DatabaseConfig struct {
	// Path to the sqlite file. Empty means $XDG_DATA_HOME/bsptile/bsptile.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig controls log level, format and the rotating log file.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0,default=7"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// SnapshotsConfig controls layout autosave.
type SnapshotsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	// MaxKept bounds autosaved snapshots; named ones are never pruned (0 = keep all).
	MaxKept int `mapstructure:"max_kept" yaml:"max_kept" toml:"max_kept" json:"max_kept" jsonschema:"minimum=0,default=20"`
	// IntervalMs debounces autosave after a layout change.
	IntervalMs int `mapstructure:"interval_ms" yaml:"interval_ms" toml:"interval_ms" json:"interval_ms" jsonschema:"minimum=0,default=2000"`
}

// DesktopNames returns exactly Count names, padding with empty strings.
func (c *Config) DesktopNames() []string {
	names := make([]string, c.Desktops.Count)
	copy(names, c.Desktops.Names)
	return names
}

// LayoutMode returns the parsed default layout, falling back to LayoutDefault.
func (c *Config) LayoutMode() entity.LayoutMode {
	mode, err := entity.ParseLayoutMode(c.Layout.DefaultMode)
	if err != nil {
		return entity.LayoutDefault
	}
	return mode
}

// ArenaOptions converts the layout section into tree engine options.
func (c *Config) ArenaOptions() bsp.Options {
	return bsp.Options{
		Gap:         clampUint16(c.Layout.Gap),
		ResizeStep:  clampUint16(c.Layout.ResizeStep),
		MasterRatio: c.Layout.MasterRatio,
		MaxNodes:    c.Layout.MaxNodes,
	}
}

func clampUint16(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
