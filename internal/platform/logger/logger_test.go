package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"Warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{" error ", slog.LevelError, true},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("filters below configured level", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: buf})
		require.NoError(t, err)

		l.Info("hidden")
		l.Warn("shown", slog.String("key", "value"))

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0]["msg"])
		assert.Equal(t, "WARN", entries[0]["level"])
		assert.Equal(t, "value", entries[0]["key"])
	})

	t.Run("installs default logger", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		_, err := logger.Setup(logger.LoggerConfig{Level: "debug", Output: buf})
		require.NoError(t, err)

		slog.Debug("through default")
		assert.Contains(t, buf.String(), "through default")
	})

	t.Run("invalid level warns and uses info", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.Setup(logger.LoggerConfig{Level: "loud", Output: buf})
		require.NoError(t, err)

		l.Debug("hidden")

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "invalid log level configured, using default level", entries[0]["msg"])
		assert.Equal(t, "loud", entries[0]["configured_level"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.Setup(logger.LoggerConfig{Level: "info", Format: "text", Output: buf})
		require.NoError(t, err)

		l.Info("plain")
		assert.Contains(t, buf.String(), "msg=plain")
	})
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger, _ := logger.NewTestLogger(t)

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{"nil_context_returns_default", nil, defaultLogger},
		{"context_without_logger_returns_default", context.Background(), defaultLogger},
		{"context_with_logger_returns_context_logger", logger.WithLogger(context.Background(), customLogger), customLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, logger.FromContextOrDefault(tt.ctx, defaultLogger))
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		customLogger, _ := logger.NewTestLogger(t)
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Same(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
