// Package logging wraps log/slog behind a small Logger type, the same shape
// the rest of the retrieved pack uses for structured logging: a Config
// picking level/service/format, a constructor building a JSON-by-default
// handler to stderr, and With(...) for attaching per-component or
// per-session attributes without threading them through every call site.
package logging

import (
	"log/slog"
	"os"
)

// Config configures a Logger. The zero value is a sensible default: Info
// level, JSON output, no service name.
type Config struct {
	// Level is the minimum level that gets written.
	Level slog.Level

	// Service names the component this logger belongs to; attached to
	// every record as the "component" attribute.
	Service string

	// Text switches to slog's human-readable text handler. Default is
	// JSON, matching the rest of this server's machine-parseable output.
	Text bool
}

// Logger wraps *slog.Logger.
type Logger struct {
	slog *slog.Logger
}

// New builds a Logger writing to stderr per cfg.
func New(cfg Config) *Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Text {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("component", cfg.Service)})
	}
	return &Logger{slog: slog.New(handler)}
}

// Default returns an Info-level, JSON-to-stderr logger tagged with service.
func Default(service string) *Logger {
	return New(Config{Level: slog.LevelInfo, Service: service})
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.slog.Info(msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.slog.Warn(msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a child Logger with additional attributes attached to every
// subsequent record, such as a session_id or algo tag.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// Slog exposes the underlying *slog.Logger for callers that need it
// directly (e.g. passing into a library that accepts one).
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}
