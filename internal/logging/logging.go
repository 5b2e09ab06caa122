package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nfrund/marketplace/internal/config"
)

// New initializes a new slog logger on stdout and sets it as the default.
// The log format is "text" (with source locations) or "json"; the level
// defaults to debug.
func New(cfg config.Provider) *slog.Logger {
	logger := NewWithWriter(os.Stdout, cfg.GetLogFormat(), cfg.GetLogLevel())
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter builds a logger writing to w without touching the default logger.
func NewWithWriter(w io.Writer, format, level string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: ParseLevel(level),
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     ParseLevel(level),
			AddSource: true,
		})
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield debug.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
