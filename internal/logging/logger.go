// Package logging defines the structured-logging interface used across
// GophDrop together with its slog and zap backends.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "file requested", "file_id", id, "requester", p)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Format selects a Logger backend.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatZap  Format = "zap"
)
