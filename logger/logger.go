// Package logger provides structured logging utilities built on Go's slog package.
//
// The package carries the logging surface for the acquirable core: acquisition
// lifecycle events (acquire, reuse, upgrade, close) are logged at Debug level
// with the acquirable identity and owning goroutine as attributes. Libraries
// embedding acquirables can redirect or silence this output by installing
// their own logger via Set.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.uber.org/atomic"
)

// current holds the logger used by all helpers in this package.
// It defaults to a text logger on stdout at Info level, so acquisition
// debug events are discarded unless a caller opts in via Configure or Set.
var current atomic.Pointer[slog.Logger] //nolint:gochecknoglobals

//nolint:gochecknoinits
func init() {
	current.Store(defaultLogger())
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Options is used to configure logging behavior and output format.
type Options struct {
	// Subsystem identifies the component generating the logs. It is
	// attached to every record as a "subsystem" attribute.
	Subsystem string

	// JSON determines the output format. When true, logs are formatted as
	// JSON (slog.JSONHandler), suitable for structured log aggregation.
	// When false, logs use human-readable text format (slog.TextHandler).
	JSON bool

	// MinLevel is the minimum log level. Messages below this level are
	// discarded.
	MinLevel slog.Level

	// Output is the destination for log output. If nil, defaults to os.Stdout.
	Output io.Writer
}

// CreateHandler creates a slog.Handler from the provided options. The handler
// respects MinLevel, and output format follows the JSON flag.
func CreateHandler(opts Options) slog.Handler {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	if opts.Subsystem != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("subsystem", opts.Subsystem)})
	}

	return handler
}

// Configure installs a logger built from the given options as the package
// logger. It is safe to call concurrently with logging operations, though
// records already in flight may use the previous logger.
func Configure(opts Options) {
	current.Store(slog.New(CreateHandler(opts)))
}

// Set installs the given logger as the package logger. Passing nil restores
// the default. This is the hook tests use to capture log output.
func Set(logger *slog.Logger) {
	if logger == nil {
		logger = defaultLogger()
	}

	current.Store(logger)
}

// Get returns the current package logger.
func Get() *slog.Logger {
	return current.Load()
}

// Debug logs a debug-level message using the package logger.
// Debug messages are typically used for detailed diagnostic information.
func Debug(ctx context.Context, msg string, args ...any) {
	Get().DebugContext(ctx, msg, args...)
}

// Info logs an info-level message using the package logger.
func Info(ctx context.Context, msg string, args ...any) {
	Get().InfoContext(ctx, msg, args...)
}

// Warn logs a warning-level message using the package logger.
// Warning messages indicate potential issues that don't prevent the caller
// from functioning.
func Warn(ctx context.Context, msg string, args ...any) {
	Get().WarnContext(ctx, msg, args...)
}

// Error logs an error-level message using the package logger.
func Error(ctx context.Context, msg string, args ...any) {
	Get().ErrorContext(ctx, msg, args...)
}
