// Package log provides structured diagnostic logging for terminal-guard.
//
// Diagnostics always go to stderr so they never mix with the warning lines
// printed on stdout, which callers may capture or pipe. Components take a
// Logger through functional options and fall back to the global default.
//
// Verbosity levels:
//   - ERROR (--quiet): Errors only
//   - WARN (default): Recoverable problems such as an unreadable config file
//   - INFO (--verbose): Which confusables file was loaded and how large it is
//   - DEBUG (--debug): Why a data file was skipped, extracted hosts, IDN decoding
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Logger is the interface for structured logging.
// Methods match slog's signature.
type Logger interface {
	// Debug logs at DEBUG level: extracted hosts, the resolved data file
	// location, why a confusables file was skipped, punycode that would
	// not decode.
	Debug(msg string, args ...any)

	// Info logs at INFO level, e.g. "loaded confusables" with the entry count.
	Info(msg string, args ...any)

	// Warn logs at WARN level for problems the scan works around, such as
	// an unparsable config.toml.
	Warn(msg string, args ...any)

	// Error logs at ERROR level. A scan itself never fails, so this is
	// reserved for the CLI glue.
	Error(msg string, args ...any)

	// With returns a Logger that adds the given key-value pairs to every entry.
	With(args ...any) Logger
}

// slogLogger adapts *slog.Logger to Logger.
type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

// NewCLI creates a text Logger for interactive use. Timestamps are dropped
// because a scan lasts milliseconds and the lines are read by people.
func NewCLI(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func (s *slogLogger) Debug(msg string, args ...any) {
	s.l.Debug(msg, args...)
}

func (s *slogLogger) Info(msg string, args ...any) {
	s.l.Info(msg, args...)
}

func (s *slogLogger) Warn(msg string, args ...any) {
	s.l.Warn(msg, args...)
}

func (s *slogLogger) Error(msg string, args ...any) {
	s.l.Error(msg, args...)
}

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// noopLogger drops every entry.
type noopLogger struct{}

// NewNoop returns a logger that discards all output.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

// defaultLogger starts as a noop so library code can log before main runs.
var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the global logger. It discards everything until
// SetDefault is called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the global logger. main calls it once after the
// verbosity flags are parsed.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
