package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/xolan/tl/internal/expected"
)

const (
	// AppName is the application name used for the config directory
	AppName = "tl"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// TimelogPath is the path to the timelog file. An empty value
	// falls back to ~/timelog.txt.
	TimelogPath string `toml:"timelog_path"`
	// Expected holds the expected-hours contract parameters
	Expected expected.Config `toml:"expected"`
}

// DefaultConfig returns a Config with sensible defaults:
// - timelog_path: "" (resolved to ~/timelog.txt)
// - expected: the standard 35-hour contract (see expected.DefaultConfig)
func DefaultConfig() Config {
	return Config{
		TimelogPath: "",
		Expected:    expected.DefaultConfig(),
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.Expected.WorkdaysPerWeek < 1 || c.Expected.WorkdaysPerWeek > 7 {
		return fmt.Errorf("workdays_per_week must be between 1 and 7, got %d", c.Expected.WorkdaysPerWeek)
	}
	if c.Expected.WorkhoursPerWeek < 1 {
		return fmt.Errorf("workhours_per_week must be positive, got %d", c.Expected.WorkhoursPerWeek)
	}
	if c.Expected.HolidaysPerYear < 0 {
		return fmt.Errorf("holidays_per_year cannot be negative, got %d", c.Expected.HolidaysPerYear)
	}
	if c.Expected.VacationDaysPerYear < 0 {
		return fmt.Errorf("vacation_days_per_year cannot be negative, got %d", c.Expected.VacationDaysPerYear)
	}
	return nil
}

// Load reads and validates the config file at the given path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault reads the config file at the given path, returning
// defaults if the file does not exist. A file that exists but cannot
// be parsed or validated is an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// GenerateSampleConfig returns a commented sample config file body
// reflecting the defaults.
func GenerateSampleConfig() string {
	d := expected.DefaultConfig()
	return fmt.Sprintf(`# tl configuration file

# Path to the timelog file (default: ~/timelog.txt)
#timelog_path = "/home/user/timelog.txt"

[expected]
workdays_per_week = %d
workhours_per_week = %d
holidays_per_year = %d
vacation_days_per_year = %d
`, d.WorkdaysPerWeek, d.WorkhoursPerWeek, d.HolidaysPerYear, d.VacationDaysPerYear)
}
