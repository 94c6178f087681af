package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func setupLogger(t *testing.T, level Level) (string, func()) {
	t.Helper()

	logDir := t.TempDir()
	if err := Initialize(logDir, level); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	logPath := GetLogPath()
	if logPath == "" {
		t.Fatalf("GetLogPath returned empty path")
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			_ = Close()
			defaultLogger = nil
		})
	}
	t.Cleanup(cleanup)

	return logPath, cleanup
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func TestInitializeAndLogWrites(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelInfo)

	Info("exported %d cells", 3)
	cleanup()

	if !strings.HasPrefix(filepath.Base(logPath), "qraw-") {
		t.Fatalf("unexpected log file name: %s", logPath)
	}
	content := readLog(t, logPath)
	if !strings.Contains(content, "INFO: exported 3 cells") {
		t.Fatalf("expected log line to contain message, got: %q", content)
	}
}

func TestSetEnabledDisablesLogging(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelDebug)

	SetEnabled(false)
	Info("should not write")
	cleanup()

	if content := readLog(t, logPath); len(strings.TrimSpace(content)) != 0 {
		t.Fatalf("expected no log output when disabled, got: %q", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelWarn)

	Info("info message")
	Warn("warn message")
	WithError(errors.New("disk full"), "export")
	WithError(nil, "ignored")
	cleanup()

	content := readLog(t, logPath)
	if strings.Contains(content, "INFO: info message") {
		t.Fatalf("did not expect info log at warn level: %q", content)
	}
	if !strings.Contains(content, "WARN: warn message") {
		t.Fatalf("expected warn log, got: %q", content)
	}
	if !strings.Contains(content, "ERROR: export: disk full") {
		t.Fatalf("expected error log, got: %q", content)
	}
	if strings.Contains(content, "ignored") {
		t.Fatalf("nil error should not log: %q", content)
	}
}

func TestLoggingWithoutInitializeIsNoop(t *testing.T) {
	defaultLogger = nil
	Info("nowhere")
	if GetLogPath() != "" {
		t.Fatal("expected empty log path")
	}
	if err := Close(); err != nil {
		t.Fatalf("Close without Initialize: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
