package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L = slog.New(slog.DiscardHandler)

const logFileName = "edidkit.log"

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, file logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.edidkit/logs
	Level   slog.Level // Minimum level written to the file

	// Rotation, passed to lumberjack. Zero values select lumberjack defaults
	// except MaxAgeDays, which defaults to 30.
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool

	// Stderr, when non-nil, also receives records at StderrLevel and above
	// as human-readable text.
	Stderr      io.Writer
	StderrLevel slog.Level
}

// closer is the rotating file of the current logger, if any.
var closer io.Closer

// Init configures logging. Call from main() before any log calls.
func Init(opts Options) error {
	Close()

	var handlers []slog.Handler
	if opts.Enabled {
		logDir := opts.LogDir
		if logDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			logDir = filepath.Join(home, ".edidkit", "logs")
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return err
		}

		maxAge := opts.MaxAgeDays
		if maxAge == 0 {
			maxAge = 30
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, logFileName),
			MaxSize:    opts.MaxSizeMB,
			MaxAge:     maxAge,
			MaxBackups: opts.MaxBackups,
			Compress:   opts.Compress,
		}
		closer = rotator
		handlers = append(handlers, slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: opts.Level}))
	}
	if opts.Stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: opts.StderrLevel}))
	}

	switch len(handlers) {
	case 0:
		L = slog.New(slog.DiscardHandler)
	case 1:
		L = slog.New(handlers[0])
	default:
		L = slog.New(teeHandler(handlers))
	}
	return nil
}

// Close flushes and closes the log file opened by Init, if any.
func Close() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }

// teeHandler sends each record to every handler that accepts its level.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
