package config

import (
	"fmt"
	"strings"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout    = "Layout"
	SectionDesktops  = "Desktops"
	SectionDatabase  = "Database"
	SectionLogging   = "Logging"
	SectionSnapshots = "Snapshots"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 24)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getDesktopsKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getSnapshotsKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.gap",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.Gap),
			Description: "Pixels between windows and around the screen edge",
			Range:       "0-500",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_mode",
			Type:        "string",
			Default:     defaults.Layout.DefaultMode,
			Description: "Layout applied to desktops at startup",
			Values:      []string{"default", "master", "stack", "grid"},
			Section:     SectionLayout,
		},
		{
			Key:         "layout.master_ratio",
			Type:        "float64",
			Default:     fmt.Sprintf("%.2f", defaults.Layout.MasterRatio),
			Description: "Share of the usable width given to the master window",
			Range:       "0-1 (exclusive)",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.resize_step",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.ResizeStep),
			Description: "Pixels moved by one resize step",
			Range:       ">=1",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.max_nodes",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.MaxNodes),
			Description: "Upper bound on tree nodes across all desktops (0 = unlimited)",
			Range:       ">=0",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getDesktopsKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "desktops.count",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Desktops.Count),
			Description: "Number of virtual desktops",
			Range:       "1-32",
			Section:     SectionDesktops,
		},
		{
			Key:         "desktops.names",
			Type:        "[]string",
			Default:     "[" + strings.Join(defaults.Desktops.Names, ", ") + "]",
			Description: "Desktop names by position; unnamed desktops use their number",
			Section:     SectionDesktops,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/bsptile/bsptile.sqlite",
			Description: "SQLite file holding saved layouts",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Also write logs to a rotating file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/bsptile/logs",
			Description: "Directory of the rotating log file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file once it reaches this size",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAgeDays),
			Description: "Maximum age of rotated log files in days",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getSnapshotsKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "snapshots.enabled",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Snapshots.Enabled),
			Description: "Autosave the layout after changes",
			Section:     SectionSnapshots,
		},
		{
			Key:         "snapshots.max_kept",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Snapshots.MaxKept),
			Description: "Autosaved layouts to keep; named layouts are never pruned (0 = keep all)",
			Range:       ">=0",
			Section:     SectionSnapshots,
		},
		{
			Key:         "snapshots.interval_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Snapshots.IntervalMs),
			Description: "Debounce delay before an autosave",
			Range:       ">=0",
			Section:     SectionSnapshots,
		},
	}
}
