// Package logging provides file-based logging for desk.
// It outputs logs to both a global log file (<data>/logs/desk.log)
// and client-specific log files (<data>/logs/client-<id>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/client-desk/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled log lines to files under the data directory.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile  *os.File
	clientFiles map[string]*os.File
	now         func() time.Time
	dataDir     string
	mu          sync.Mutex
	level       slog.Level
}

// New creates a new Logger that writes to the data directory's logs folder.
// If dataDir is empty, logging is disabled.
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{
		dataDir:     dataDir,
		level:       level,
		clientFiles: make(map[string]*os.File),
		now:         time.Now,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) ensureLogsDir() error {
	return os.MkdirAll(filepath.Join(l.dataDir, "logs"), 0o750)
}

// openFile opens path for appending, creating the logs directory if needed.
// Caller must hold l.mu.
func (l *Logger) openFile(path string) (*os.File, error) {
	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (l *Logger) ensureGlobalFile() (*os.File, error) {
	if l.globalFile != nil {
		return l.globalFile, nil
	}
	f, err := l.openFile(domain.GlobalLogPath(l.dataDir))
	if err != nil {
		return nil, err
	}
	l.globalFile = f
	return f, nil
}

func (l *Logger) ensureClientFile(clientID string) (*os.File, error) {
	if f, ok := l.clientFiles[clientID]; ok {
		return f, nil
	}
	f, err := l.openFile(domain.ClientLogPath(l.dataDir, clientID))
	if err != nil {
		return nil, err
	}
	l.clientFiles[clientID] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for id, f := range l.clientFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.clientFiles, id)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [client-1a2b3c4d] [category] message
func formatLog(t time.Time, level slog.Level, clientID, category, msg string) string {
	scope := "global"
	if clientID != "" {
		scope = "client-" + domain.ShortID(clientID)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes an entry to the global log and, for a non-empty clientID,
// to the client's log as well.
func (l *Logger) log(level slog.Level, clientID, category, msg string) {
	if l.dataDir == "" || level < l.level {
		return
	}

	entry := formatLog(l.now(), level, clientID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}
	if clientID != "" {
		if cf, err := l.ensureClientFile(clientID); err == nil {
			_, _ = io.WriteString(cf, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(clientID, category, msg string) {
	l.log(slog.LevelInfo, clientID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(clientID, category, msg string) {
	l.log(slog.LevelDebug, clientID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(clientID, category, msg string) {
	l.log(slog.LevelWarn, clientID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(clientID, category, msg string) {
	l.log(slog.LevelError, clientID, category, msg)
}
