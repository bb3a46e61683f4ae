package config

import (
	"fmt"
	"strings"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateDesktops(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSnapshots(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.Gap < 0 || l.Gap > 500 {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.gap must be between 0 and 500 (got: %d)", l.Gap))
	}
	if _, err := entity.ParseLayoutMode(l.DefaultMode); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.default_mode must be one of: default, master, stack, grid (got: %s)", l.DefaultMode,
		))
	}
	if l.MasterRatio <= 0 || l.MasterRatio >= 1 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.master_ratio must be strictly between 0 and 1 (got: %g)", l.MasterRatio,
		))
	}
	if l.ResizeStep < 1 {
		validationErrors = append(validationErrors, "layout.resize_step must be at least 1")
	}
	if l.MaxNodes < 0 {
		validationErrors = append(validationErrors, "layout.max_nodes must be non-negative")
	}
	return validationErrors
}

func validateDesktops(config *Config) []string {
	var validationErrors []string
	if config.Desktops.Count < 1 || config.Desktops.Count > 32 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"desktops.count must be between 1 and 32 (got: %d)", config.Desktops.Count,
		))
	}
	if len(config.Desktops.Names) > config.Desktops.Count {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"desktops.names has %d entries but desktops.count is %d",
			len(config.Desktops.Names), config.Desktops.Count,
		))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when logging.enable_file_log is set")
	}
	return validationErrors
}

func validateSnapshots(config *Config) []string {
	var validationErrors []string
	if config.Snapshots.MaxKept < 0 {
		validationErrors = append(validationErrors, "snapshots.max_kept must be non-negative")
	}
	if config.Snapshots.IntervalMs < 0 {
		validationErrors = append(validationErrors, "snapshots.interval_ms must be non-negative")
	}
	return validationErrors
}
