package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}

	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger := SetupLogger(dir, "info")
	logger.Info("smoke entry")

	if _, err := os.Stat(filepath.Join(dir, "assistant.log")); err != nil {
		t.Errorf("expected a log file in the directory: %v", err)
	}
}

func TestSetupLoggerWithoutDir(t *testing.T) {
	if logger := SetupLogger("", "debug"); logger == nil {
		t.Fatal("expected a stderr logger")
	}
}

func TestHelpersWorkBeforeInit(t *testing.T) {
	saved := DefaultLoggingService
	DefaultLoggingService = nil
	defer func() { DefaultLoggingService = saved }()

	// Must not panic without initialization.
	Info("helper before init")
	Warn("helper before init")
	Error("helper before init")
	Debug("helper before init")
}
