package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/tl/cmd"
	"github.com/xolan/tl/internal/config"
)

// installTestDeps redirects all command I/O into buffers and both the
// config and timelog lookups into a temp directory.
func installTestDeps(t *testing.T, timelogContent string) *bytes.Buffer {
	t.Helper()

	tmpDir := t.TempDir()
	timelogPath := filepath.Join(tmpDir, "timelog.txt")
	if err := os.WriteFile(timelogPath, []byte(timelogContent), 0644); err != nil {
		t.Fatalf("Failed to write test timelog: %v", err)
	}

	stdout := &bytes.Buffer{}
	cmd.SetDeps(&cmd.Deps{
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Exit:   func(code int) {},
		ConfigPath: func() (string, error) {
			return filepath.Join(tmpDir, "config.toml"), nil
		},
		TimelogPath: func(cfg config.Config) (string, error) {
			return timelogPath, nil
		},
	})
	t.Cleanup(cmd.ResetDeps)

	return stdout
}

func TestRun_Success(t *testing.T) {
	stdout := installTestDeps(t, `2024-01-01 09:00: arrived
2024-01-01 17:00: coding
`)

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"tl", "all"}

	if code := run(); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Report for full timelog") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
}

func TestRun_ExecuteError(t *testing.T) {
	installTestDeps(t, "")

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"tl", "--unknownflag"}

	if code := run(); code != 1 {
		t.Errorf("Expected exit code 1 for Execute error, got %d", code)
	}
}

func TestMain_CallsExitWithRunResult(t *testing.T) {
	installTestDeps(t, "2024-01-01 09:00: arrived\n")

	originalExit := exitFunc
	originalArgs := os.Args
	defer func() {
		exitFunc = originalExit
		os.Args = originalArgs
	}()

	var capturedCode int
	exitFunc = func(code int) {
		capturedCode = code
	}
	os.Args = []string{"tl", "all"}

	main()

	if capturedCode != 0 {
		t.Errorf("Expected exit code 0, got %d", capturedCode)
	}
}
