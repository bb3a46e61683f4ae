package config

const (
	defaultGap          = 10
	defaultMasterRatio  = 0.70
	defaultResizeStep   = 5
	defaultDesktopCount = 10

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	defaultSnapshotsMaxKept   = 20
	defaultSnapshotIntervalMs = 2000
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for bsptile.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Gap:         defaultGap,
			DefaultMode: "default",
			MasterRatio: defaultMasterRatio,
			ResizeStep:  defaultResizeStep,
		},
		Desktops: DesktopsConfig{
			Count: defaultDesktopCount,
			Names: []string{},
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
		Snapshots: SnapshotsConfig{
			Enabled:    true,
			MaxKept:    defaultSnapshotsMaxKept,
			IntervalMs: defaultSnapshotIntervalMs,
		},
	}
}
