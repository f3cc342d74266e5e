// Package logging configures structured logging for the assistant API and
// exposes package-level helpers usable before full initialization.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type LoggingService struct {
	Logger *slog.Logger
}

var DefaultLoggingService *LoggingService

// InitLogger initializes the global logger. With an empty logDir all output
// goes to stderr, which is what tests and local runs want.
func InitLogger(logDir string) {
	DefaultLoggingService = &LoggingService{
		Logger: SetupLogger(logDir, os.Getenv("LOG_LEVEL")),
	}
	slog.SetDefault(DefaultLoggingService.Logger)
}

// SetupLogger builds a logger writing text to stderr and, when logDir is
// set, JSON lines to logDir/assistant.log as well.
func SetupLogger(logDir, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if logDir == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		slog.Warn("Failed to create log directory, logging to stderr only", "dir", logDir, "error", err)
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	logPath := filepath.Join(logDir, "assistant.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("Failed to open log file, logging to stderr only", "path", logPath, "error", err)
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewJSONHandler(io.MultiWriter(os.Stderr, file), opts))
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

// Package-level helpers. Each falls back to a plain stderr logger when the
// global service has not been initialized yet.

func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}

func logger() *slog.Logger {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return DefaultLoggingService.Logger
}
