package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithDesktop creates a child logger with a desktop field
func WithDesktop(ctx context.Context, index int) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Int("desktop", index).Logger()
	return WithContext(ctx, childLogger)
}

// WithScenario creates a child logger with a scenario field
func WithScenario(ctx context.Context, name string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("scenario", name).Logger()
	return WithContext(ctx, childLogger)
}
