package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a *slog.Logger writing to stderr and sets it as the
// default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output, anything else the text
// handler. Level is one of debug, info, warn, error (case-insensitive) and
// defaults to info.
func NewLogger(level, format string) *slog.Logger {
	logger := newLoggerWithWriter(os.Stderr, level, format)
	slog.SetDefault(logger)
	return logger
}

func newLoggerWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
