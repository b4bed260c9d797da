package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// defaultContextProvider supplies the context used by the package-level,
// context-unaware logging functions (Info, Error, ...) and by Logger's
// context-unaware methods.
//
//nolint:gochecknoglobals
var defaultContextProvider atomic.Value

func init() {
	defaultContextProvider.Store(context.TODO)
}

// DefaultContextProvider returns the context used by context-unaware logging
// calls. It returns [context.TODO] unless overridden by
// [SetDefaultContextProvider].
func DefaultContextProvider() context.Context {
	return defaultContextProvider.Load().(func() context.Context)()
}

// SetDefaultContextProvider overrides the context used by context-unaware
// logging calls.
func SetDefaultContextProvider(provider func() context.Context) {
	if provider == nil {
		provider = context.TODO
	}

	defaultContextProvider.Store(provider)
}

//nolint:gochecknoglobals
var (
	defaultMutex  sync.RWMutex
	defaultLogger = Make(os.Stderr)
)

// Config reconfigures the package-level default [Logger] with the given
// options, applied on top of its current configuration.
func Config(opts ...Option) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultLogger = defaultLogger.Wrap(opts...)
}

// Default returns the current package-level default [Logger].
func Default() Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()

	return defaultLogger
}

// TraceContext logs at Trace level using the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().TraceContext(ctx, msg, attrs...)
}

// Trace logs at Trace level using the default logger.
func Trace(msg string, attrs ...slog.Attr) { Default().Trace(msg, attrs...) }

// DebugContext logs at Debug level using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().DebugContext(ctx, msg, attrs...)
}

// Debug logs at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) { Default().Debug(msg, attrs...) }

// InfoContext logs at Info level using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().InfoContext(ctx, msg, attrs...)
}

// Info logs at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) { Default().Info(msg, attrs...) }

// WarnContext logs at Warn level using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().WarnContext(ctx, msg, attrs...)
}

// Warn logs at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) { Default().Warn(msg, attrs...) }

// ErrorContext logs at Error level using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().ErrorContext(ctx, msg, attrs...)
}

// Error logs at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) { Default().Error(msg, attrs...) }
