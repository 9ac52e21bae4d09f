// Package logging defines the minimal structured-logging surface used
// across lockstr. The CLI wires a slog-backed implementation; tests swap
// in buffers. Key material must never be passed as a log attribute.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Debug(ctx, "entering phase", "phase", "processing")
type Logger interface {
	// Debug logs diagnostic detail, visible only in verbose runs.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}
