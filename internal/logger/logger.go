// Package logger builds the service's structured logger.  Production
// writes JSON for log aggregators; every other environment gets the
// human-readable text handler at debug level.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a logger for env and installs it as the slog default.
func New(env string) *slog.Logger {
	l := build(os.Stdout, env)
	slog.SetDefault(l)
	return l
}

func build(w io.Writer, env string) *slog.Logger {
	switch strings.ToLower(env) {
	case "prod", "production":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Discard is a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
