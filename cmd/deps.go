package cmd

import (
	"io"
	"os"

	"github.com/xolan/tl/internal/config"
	"github.com/xolan/tl/internal/storage"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Exit        func(code int)
	ConfigPath  func() (string, error)
	TimelogPath func(cfg config.Config) (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Exit:        os.Exit,
		ConfigPath:  config.GetConfigPath,
		TimelogPath: resolveTimelogPath,
	}
}

// resolveTimelogPath returns the configured timelog path, falling
// back to the default location when the config leaves it empty.
func resolveTimelogPath(cfg config.Config) (string, error) {
	if cfg.TimelogPath != "" {
		return cfg.TimelogPath, nil
	}
	return storage.DefaultPath()
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
