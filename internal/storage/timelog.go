// Package storage reads the timelog file from disk. The file is
// input-only: tl never writes to it.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TimelogFile is the default timelog file name in the home directory
const TimelogFile = "timelog.txt"

// DefaultPath returns the default timelog location, ~/timelog.txt.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, TimelogFile), nil
}

// ReadLines reads the timelog file and returns its non-blank lines,
// stripped of surrounding whitespace, in file order. Blank lines
// (day-boundary markers) are filtered out on this standard path;
// callers that need them should use ReadAllLines.
func ReadLines(path string) ([]string, error) {
	return readLines(path, false)
}

// ReadAllLines reads the timelog file keeping blank lines, for
// callers that want the day-boundary markers preserved.
func ReadAllLines(path string) ([]string, error) {
	return readLines(path, true)
}

func readLines(path string, keepBlank bool) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open timelog file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" && !keepBlank {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read timelog file: %w", err)
	}

	return lines, nil
}
