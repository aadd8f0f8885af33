// Package logging defines the structured logger the rest of the project
// depends on, so the concrete backend stays swappable.
package logging

import "context"

// Logger logs leveled messages with key-value attributes. Args are
// interpreted in pairs:
//
//	log.Info(ctx, "listening", "addr", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given attributes.
	With(args ...any) Logger
}
