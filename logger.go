package rowindex

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rowindex-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSignature adds the index signature to the logger.
func (l *Logger) WithSignature(signature string) *Logger {
	return &Logger{
		Logger: l.Logger.With("signature", signature),
	}
}

// LogBuild logs index construction.
func (l *Logger) LogBuild(ctx context.Context, rows, keys int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index built",
			"rows", rows,
			"keys", keys,
		)
	}
}

// LogAdd logs a single insertion.
func (l *Logger) LogAdd(ctx context.Context, position uint32, err error) {
	if err != nil {
		l.WarnContext(ctx, "add rejected",
			"position", position,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "add completed",
			"position", position,
		)
	}
}

// LogLookup logs a lookup.
func (l *Logger) LogLookup(ctx context.Context, queries, hits int) {
	l.DebugContext(ctx, "lookup completed",
		"queries", queries,
		"hits", hits,
	)
}
