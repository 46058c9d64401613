package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels. The
// empty string is info.
func ParseLevel(level string) (slog.Level, error) {
	switch normalizeLevel(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("log level %q must be one of debug, info, warn, error", level)
}

// NewLogger returns a text logger on writer at the configured level.
func (config Config) NewLogger(writer io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(config.Log.Level)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})), nil
}

// nopHandler discards every record. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// LoggerOrNop returns logger, or a logger that discards everything when
// logger is nil.
func LoggerOrNop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(nopHandler{})
	}

	return logger
}
