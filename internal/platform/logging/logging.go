// Package logging carries the request-scoped logger through context so both
// the transport layer and the core can use it without depending on each other.
package logging

import (
	"context"
	"log/slog"
)

// contextKey is a private type so the logger entry cannot collide with other
// context values.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the request-scoped logger from the context. It returns
// the default logger if none is found (though this shouldn't happen if the
// middleware is applied correctly).
func FromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
