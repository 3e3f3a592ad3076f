package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_ClientLog(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("0123456789", "task", "created \"Design\"")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[client-01234567]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "created \"Design\"")

	clientContent, err := os.ReadFile(domain.ClientLogPath(dataDir, "0123456789"))
	require.NoError(t, err)
	assert.Equal(t, string(content), string(clientContent))
}

func TestLogger_GlobalLogOnly(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Warn("", "store", "global message")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[WARN] [global] [store] global message")

	entries, err := os.ReadDir(dataDir + "/logs")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the global log should exist")
}

func TestLogger_LevelFilter(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("", "x", "debug")
	logger.Info("", "x", "info")
	logger.Error("", "x", "error")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug")
	assert.NotContains(t, string(content), "] info")
	assert.Equal(t, 1, strings.Count(string(content), "\n"))
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)
	logger.Info("c1", "task", "dropped")
	assert.NoError(t, logger.Close())
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)
	got := formatLog(ts, slog.LevelError, "", "cli", "boom")
	assert.Equal(t, "[2025-12-30 09:32:51] [ERROR] [global] [cli] boom\n", got)
}
