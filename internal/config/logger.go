package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a JSON logger in production and a text logger otherwise
func NewLogger(app AppConfig) *slog.Logger {
	return newLogger(os.Stdout, app)
}

func newLogger(w io.Writer, app AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(app.LogLevel)}
	if app.IsProduction() {
		opts.AddSource = true
		return slog.New(slog.NewJSONHandler(w, opts)).With("app", app.Name)
	}
	return slog.New(slog.NewTextHandler(w, opts)).With("app", app.Name)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
