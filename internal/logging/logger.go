package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func writerFor(out io.Writer, cfg Config) io.Writer {
	if cfg.Format == "console" {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}
	return out
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return zerolog.New(writerFor(os.Stderr, cfg)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// BSPTILE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// BSPTILE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("BSPTILE_LOG_LEVEL"), os.Getenv("BSPTILE_LOG_FORMAT"))
}

// NewWithFile creates a logger that writes JSON lines to a rotating file
// in fileCfg.LogDir and, optionally, formatted output to stderr.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	var writers []io.Writer
	if fileCfg.WriteToStderr {
		writers = append(writers, writerFor(os.Stderr, cfg))
	}

	cleanup := noop
	if fileCfg.Enabled {
		if fileCfg.LogDir == "" {
			return zerolog.Nop(), noop, fmt.Errorf("log directory required for file logging")
		}
		if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("create log dir: %w", err)
		}
		maxSize := fileCfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		rotator, err := NewLogRotator(fileCfg.LogDir, maxSize, fileCfg.MaxBackups, fileCfg.MaxAgeDays, fileCfg.Compress)
		if err != nil {
			return zerolog.Nop(), noop, err
		}
		writers = append(writers, rotator)
		cleanup = func() {
			if err := rotator.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
			}
		}
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		return zerolog.Nop(), cleanup, nil
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, cleanup, nil
}
