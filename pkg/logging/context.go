package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey struct{}

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger attached to the context, or the default
// logger if none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok {
		return logger
	}
	return Default()
}

// WithHubID returns a context whose logger carries the hub model identifier.
func WithHubID(ctx context.Context, hubID string) context.Context {
	logger := FromContext(ctx).With().Str("hub_id", hubID).Logger()
	return WithLogger(ctx, &logger)
}

// WithRun returns a context whose logger carries the sync run identifier.
func WithRun(ctx context.Context, runID string) context.Context {
	logger := FromContext(ctx).With().Str("run_id", runID).Logger()
	return WithLogger(ctx, &logger)
}
