package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTimelog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timelog.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test timelog: %v", err)
	}
	return path
}

func TestReadLines_StripsAndFiltersBlank(t *testing.T) {
	path := writeTimelog(t, "2024-01-01 09:00: arrived\n  2024-01-01 12:00: coding  \n\n2024-01-02 09:00: arrived\n")

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() returned unexpected error: %v", err)
	}

	want := []string{
		"2024-01-01 09:00: arrived",
		"2024-01-01 12:00: coding",
		"2024-01-02 09:00: arrived",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadAllLines_KeepsBlank(t *testing.T) {
	path := writeTimelog(t, "2024-01-01 09:00: arrived\n\n2024-01-02 09:00: arrived\n")

	lines, err := ReadAllLines(path)
	if err != nil {
		t.Fatalf("ReadAllLines() returned unexpected error: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines including the blank, got %d", len(lines))
	}
	if lines[1] != "" {
		t.Errorf("expected line 1 to be blank, got %q", lines[1])
	}
}

func TestReadLines_EmptyFile(t *testing.T) {
	path := writeTimelog(t, "")

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() returned unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %v", lines)
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.txt")

	if _, err := ReadLines(path); err == nil {
		t.Error("ReadLines() should return error for a missing file")
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() returned unexpected error: %v", err)
	}
	if filepath.Base(path) != TimelogFile {
		t.Errorf("expected path ending in %s, got %s", TimelogFile, path)
	}
}
