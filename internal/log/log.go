// Package log provides category-tagged logging for tonepick.
//
// The TUI owns the terminal, so log output goes to a file (or is discarded
// entirely when logging is disabled). Call sites tag each record with a
// Category so a single log file can be filtered per subsystem:
//
//	log.Debug(log.CatDB, "opening index", "path", path)
//	log.ErrorErr(log.CatAudio, "decode failed", err, "uri", uri)
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Category identifies the subsystem a log record originates from.
type Category string

// Log categories.
const (
	CatUI     Category = "ui"
	CatDB     Category = "db"
	CatAudio  Category = "audio"
	CatScan   Category = "scan"
	CatConfig Category = "config"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	closer io.Closer
)

// Init directs log output to the file at path, creating parent directories
// as needed. Level is one of "debug", "info", "warn", "error" (default info).
func Init(path, level string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: path comes from config, not user request input
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	closer = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(level)}))
	return nil
}

// Close flushes and closes the log file, restoring the discard logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug-level record tagged with the given category.
func Debug(cat Category, msg string, args ...any) {
	current().Debug(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Info logs an info-level record tagged with the given category.
func Info(cat Category, msg string, args ...any) {
	current().Info(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Warn logs a warn-level record tagged with the given category.
func Warn(cat Category, msg string, args ...any) {
	current().Warn(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Error logs an error-level record tagged with the given category.
func Error(cat Category, msg string, args ...any) {
	current().Error(msg, append([]any{"cat", string(cat)}, args...)...)
}

// ErrorErr logs an error-level record with the error attached as "error".
func ErrorErr(cat Category, msg string, err error, args ...any) {
	current().Error(msg, append([]any{"cat", string(cat), "error", err}, args...)...)
}
