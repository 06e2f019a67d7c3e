// SPDX-License-Identifier: MIT

// Package logging provides the structured logger used by the teampath CLI.
// It wraps log/slog with level parsing, a JSON or text handler and an
// optional log file. The solver packages take the underlying *slog.Logger
// through Slog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log levels supported by the logger.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Output formats supported by the logger.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Logger is a leveled structured logger. It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	file   *os.File
	mu     sync.Mutex // protects file
}

// New returns a Logger writing to w at the given level and format.
// Unknown levels fall back to INFO, unknown formats to text.
func New(w io.Writer, level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{logger: slog.New(h)}
}

// NewLogger returns a Logger appending to the file at path, creating its
// directory if needed. An empty path logs to stderr.
//
// The level parameter controls which messages are logged:
//   - DEBUG: all messages, including per-worker round traces
//   - INFO: run summaries
//   - WARN: Warn and Error messages
//   - ERROR: only Error messages
func NewLogger(path, level, format string) (*Logger, error) {
	if path == "" {
		return New(os.Stderr, level, format), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(file, level, format)
	l.file = file

	return l, nil
}

// NopLogger returns a Logger that discards all output.
func NopLogger() *Logger {
	return &Logger{logger: slog.New(slog.DiscardHandler)}
}

// parseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether level names a supported level (case-insensitive).
func ValidLevel(level string) bool {
	switch strings.ToUpper(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	}

	return false
}

// ValidLevels returns the list of valid log level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// Slog exposes the underlying *slog.Logger for packages that accept one.
func (l *Logger) Slog() *slog.Logger { return l.logger }

// With returns a child Logger that adds the key-value pairs to every record.
// It shares the parent's output.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}

	return &Logger{logger: l.logger.With(args...), file: l.file}
}

// Debug logs a message at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs a message at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs a message at WARN level with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs a message at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// Close flushes and closes the log file. It is a no-op for loggers that do
// not own a file. Child loggers share the file; close the root only.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	l.file = nil

	return nil
}
