package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/tl/internal/config"
	"github.com/xolan/tl/internal/service"
	"github.com/xolan/tl/internal/timelog"
)

var rootCmd = &cobra.Command{
	Use:   "tl",
	Short: "A timelog analyzer",
	Long: `tl reads a plain-text timelog file and reports how much time was
spent, and on what, during a given period.

Timelog format (one record per line):
  YYYY-MM-DD HH:MM: <comment>

A blank line marks a day boundary. A comment containing ** marks the
interval ending at that entry as a break, excluded from worked time.

Usage:
  tl                       Report for today
  tl day   [--offset n]    Report for a day (0 = today, -1 = yesterday)
  tl week  [--offset n]    Report for a week (Monday-started)
  tl month [--offset n]    Report for a calendar month
  tl year  [--offset n]    Report for a calendar year
  tl all                   Report over the full timelog
  tl export csv            Per-day worked hours as CSV
  tl export json           Entries of a period as JSON
  tl tui                   Interactive period browser

Each report shows the per-comment breakdown sorted by duration, the
total, and the difference against the expected hours for the period.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(service.PeriodDay, 0)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tl version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadServices loads the configuration, resolves the timelog path and
// builds the service bundle. On failure it reports to stderr and
// exits; the nil return only matters under test where Exit is a stub.
func loadServices() *service.Services {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Fix or remove the config file: %s\n", configPath)
		deps.Exit(1)
		return nil
	}

	timelogPath, err := deps.TimelogPath(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine timelog location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set timelog_path in the config file")
		deps.Exit(1)
		return nil
	}

	return service.NewServices(timelogPath, cfg)
}

// reportError prints a report-generation failure. A parse error in
// the timelog file is reported with its line number; the report is
// fatal either way.
func reportError(err error) {
	var parseErr *timelog.ParseError
	if errors.As(err, &parseErr) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Malformed timelog line %d\n", parseErr.Line)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %s\n", parseErr.Msg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Expected format: YYYY-MM-DD HH:MM: <comment>")
	} else {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to generate report")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	deps.Exit(1)
}
