package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func TestInfo_WritesToFile(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	testMsg := "test-unique-string-12345"
	Info("%s", testMsg)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), testMsg) {
		t.Error("Log file should contain the logged message")
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(false)
	Debug("should-not-appear-98765")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if strings.Contains(string(content), "should-not-appear-98765") {
		t.Error("Debug message should be suppressed at info level")
	}
}

func TestDebug_EnabledWithSetDebug(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(true)
	defer SetDebug(false)

	Debug("debug-visible-%d", 42)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "debug-visible-42") {
		t.Error("Debug message should appear when debug level is enabled")
	}
}

func TestWarn_Formatting(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	Warn("ignoring %q, not a directory", "/no/such/dir")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "/no/such/dir") {
		t.Error("Warn message should contain the formatted argument")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := ComponentLogger("Params")
	log.Info("invocation parsed")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "component=Params") {
		t.Error("Component logger should attach the component attribute")
	}
}

func TestWithTerminal(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := WithTerminal("abc-123")
	log.Info("terminal message")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "terminalUUID=abc-123") {
		t.Error("Terminal logger should attach the terminalUUID attribute")
	}
}

func TestClose_DoesNotPanic(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	Close()
}

func TestInit_Twice(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Second Init is a no-op, not an error
	if err := Init(filepath.Join(t.TempDir(), "other.log")); err != nil {
		t.Fatalf("Second Init should not error: %v", err)
	}

	Info("still-first-file")
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "still-first-file") {
		t.Error("Logging should continue to the first initialized file")
	}
}
