package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey string

const (
	ctxKeySession ctxKey = "session"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init replaces the global logger. format is "json" or "text".
func Init(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// WithSession stores a session label (terminal, chat id) in the context.
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, ctxKeySession, session)
}

// LoggerFromContext adds the session label if present.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	session, _ := ctx.Value(ctxKeySession).(string)
	if session == "" {
		return logger
	}
	return logger.With("session", session)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
