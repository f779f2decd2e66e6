package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger defines the interface for logging operations.
// This interface is designed for easy mocking in tests.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
	// WithPrefix returns a new Logger with the given prefix.
	WithPrefix(prefix string) Logger
	// SetLevel sets the minimum log level.
	SetLevel(level Level)
}

// Options configures the logger.
type Options struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is the destination for log messages.
	Output io.Writer
	// TimeFormat is the format string for timestamps.
	TimeFormat string
	// Prefix is an optional prefix for all log messages.
	Prefix string
	// NoColor disables colorized output.
	NoColor bool
}

// DefaultOptions returns sensible defaults for console logging.
func DefaultOptions() Options {
	return Options{
		Level:      LevelInfo,
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

// FileOptions returns options optimized for file logging (no color, full timestamp).
func FileOptions(w io.Writer) Options {
	return Options{
		Level:      LevelDebug,
		Output:     w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
}

// logger is the concrete implementation of Logger backed by charmbracelet/log.
type logger struct {
	impl *log.Logger
}

// New creates a new logger with the given options.
func New(opts Options) Logger {
	l := log.NewWithOptions(opts.Output, log.Options{
		TimeFormat:      opts.TimeFormat,
		Level:           toCharmLevel(opts.Level),
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
	})

	if opts.NoColor {
		l.SetColorProfile(termenv.Ascii)
	}

	return &logger{impl: l}
}

// NewNop returns a no-op logger that discards all output.
// Useful for testing or when logging should be completely disabled.
func NewNop() Logger {
	return &nopLogger{}
}

// NewFileLogger creates a logger that writes to a file.
// The file is created if it doesn't exist, or appended to if it does.
func NewFileLogger(path string, level Level) (Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	opts := FileOptions(file)
	opts.Level = level
	return New(opts), nil
}

func (l *logger) Debug(msg string, keyvals ...interface{}) {
	l.impl.Debug(msg, keyvals...)
}

func (l *logger) Info(msg string, keyvals ...interface{}) {
	l.impl.Info(msg, keyvals...)
}

func (l *logger) Warn(msg string, keyvals ...interface{}) {
	l.impl.Warn(msg, keyvals...)
}

func (l *logger) Error(msg string, keyvals ...interface{}) {
	l.impl.Error(msg, keyvals...)
}

func (l *logger) WithPrefix(prefix string) Logger {
	return &logger{impl: l.impl.WithPrefix(prefix)}
}

func (l *logger) SetLevel(level Level) {
	l.impl.SetLevel(toCharmLevel(level))
}

// toCharmLevel converts our Level to charmbracelet/log Level.
func toCharmLevel(l Level) log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// nopLogger discards all log output.
type nopLogger struct{}

func (n *nopLogger) Debug(msg string, keyvals ...interface{}) {}
func (n *nopLogger) Info(msg string, keyvals ...interface{})  {}
func (n *nopLogger) Warn(msg string, keyvals ...interface{})  {}
func (n *nopLogger) Error(msg string, keyvals ...interface{}) {}
func (n *nopLogger) WithPrefix(prefix string) Logger          { return n }
func (n *nopLogger) SetLevel(level Level)                     {}
