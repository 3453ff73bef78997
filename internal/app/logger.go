package app

import (
	"io"
	"log/slog"
)

// newLogger creates and configures a new slog.Logger instance writing to
// errW. It does not set the global logger, allowing for isolated logger
// instances per App; the plan output stream stays free of log lines.
func newLogger(levelStr, formatStr string, errW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "text" {
		handler = slog.NewTextHandler(errW, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(errW, handlerOpts)
	}

	return slog.New(handler)
}
