package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig holds the settings used by Setup.
type LoggerConfig struct {
	// Level is one of debug, info, warn or error (case-insensitive).
	Level string
	// Format is "json" (default) or "text".
	Format string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// ParseLevel maps a configured level name to a slog.Level.
// The second result is false when the name is not recognised, in which case
// the level is info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds the application logger from cfg and installs it as the slog
// default, so package-level slog calls use the same handler.
func Setup(cfg LoggerConfig) (*slog.Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	level, ok := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			slog.String("configured_level", cfg.Level),
			slog.String("default_level", "info"))
	}

	return logger, nil
}
