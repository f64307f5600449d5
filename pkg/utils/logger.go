package utils

import (
	"context"
	"log/slog"
	"os"
)

// Logger represents a logger instance scoped to one component.
type Logger struct {
	*slog.Logger
}

var defaultLogger = slog.New(newHandler(os.Getenv("ENVIRONMENT")))

// production gets JSON at INFO, anything else human-readable text at DEBUG
func newHandler(env string) slog.Handler {
	if env == "production" {
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// SetEnvironment rebuilds the default logger for the given environment.
func SetEnvironment(env string) {
	defaultLogger = slog.New(newHandler(env))
}

// Default returns the process-wide logger.
func Default() *slog.Logger {
	return defaultLogger
}

// NewLogger creates a new logger instance tagged with a component name.
func NewLogger(component string) *Logger {
	return &Logger{Logger: defaultLogger.With("component", component)}
}

// ErrorErr logs an error message with the error attached.
func (l *Logger) ErrorErr(err error, msg string, args ...any) {
	l.Error(msg, append(args, "error", err)...)
}

// FatalErr logs a fatal error with the error attached and exits the program.
func (l *Logger) FatalErr(err error, msg string, args ...any) {
	l.ErrorErr(err, msg, args...)
	os.Exit(1)
}

type loggerKey struct{}

// WithContext stores a logger in ctx.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}
