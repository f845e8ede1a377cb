package script

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger is an optional interface for observability: pool reuse, engine
// construction and invocation failures are reported through it.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface, emitting
// at debug level.
func NewSlogLogger(l *slog.Logger) Logger {
	return slogLogger{l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Logf(format string, args ...any) {
	if !s.l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s.l.Debug(fmt.Sprintf(format, args...))
}
