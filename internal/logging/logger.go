// Package logging defines the small structured-logging interface shared by
// the CrewHive client and server components. The client wraps slog, the
// server wraps zap; both sides log through the same surface.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "loading day", "date", day, "viewer", viewer)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)

	// Warn is for unusual but non-fatal conditions, e.g. a calendar
	// record that cannot be mapped and is skipped.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
