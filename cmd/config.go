package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/tl/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration settings for tl.

Shows the configuration file location, whether it exists, and all
current settings. Values are merged from the config file with
sensible defaults, so tl works without any configuration file:
  - timelog_path: ~/timelog.txt
  - expected: 5 workdays/week, 35 hours/week, 9 holidays/year,
    30 vacation days/year

Configuration file location:
  ~/.config/tl/config.toml           Linux/macOS
  %APPDATA%\tl\config.toml           Windows`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	timelogPath, err := deps.TimelogPath(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine timelog location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: file exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "timelog_path:            %s\n", timelogPath)
	_, _ = fmt.Fprintf(deps.Stdout, "workdays_per_week:       %d\n", cfg.Expected.WorkdaysPerWeek)
	_, _ = fmt.Fprintf(deps.Stdout, "workhours_per_week:      %d\n", cfg.Expected.WorkhoursPerWeek)
	_, _ = fmt.Fprintf(deps.Stdout, "holidays_per_year:       %d\n", cfg.Expected.HolidaysPerYear)
	_, _ = fmt.Fprintf(deps.Stdout, "vacation_days_per_year:  %d\n", cfg.Expected.VacationDaysPerYear)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Create a config.toml file at the above location to customize settings.")
	}
}
