package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tl/internal/cli"
	"github.com/xolan/tl/internal/service"
)

// dayCmd represents the day report command
var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Report for a single day",
	Long: `Report worked time for one calendar day.

The --offset flag selects the day relative to today: 0 is today,
-1 is yesterday, -7 a week ago. An entry timestamped exactly at
midnight belongs to the day starting then.

Examples:
  tl day                 Report for today
  tl day --offset -1     Report for yesterday`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(service.PeriodDay, offsetFlag(cmd))
	},
}

// weekCmd represents the week report command
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Report for a week",
	Long: `Report worked time for one week. Weeks start on Monday.

Examples:
  tl week                Report for this week
  tl week --offset -1    Report for last week`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(service.PeriodWeek, offsetFlag(cmd))
	},
}

// monthCmd represents the month report command
var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Report for a calendar month",
	Long: `Report worked time for one calendar month. Month arithmetic
carries across year boundaries, so 'tl month --offset -14' from
March 2026 reports January 2025.

Examples:
  tl month               Report for this month
  tl month --offset -1   Report for last month`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(service.PeriodMonth, offsetFlag(cmd))
	},
}

// yearCmd represents the year report command
var yearCmd = &cobra.Command{
	Use:   "year",
	Short: "Report for a calendar year",
	Long: `Report worked time for one calendar year.

Examples:
  tl year                Report for this year
  tl year --offset -1    Report for last year`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(service.PeriodYear, offsetFlag(cmd))
	},
}

// allCmd represents the full-range report command
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Report over the full timelog",
	Long: `Report worked time over the entire timelog file.

The expected-hours baseline is interpolated over the span between the
first and last entry: short spans are measured against the daily rate,
long spans against the yearly average.`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(service.PeriodAll, 0)
	},
}

func init() {
	for _, c := range []*cobra.Command{dayCmd, weekCmd, monthCmd, yearCmd} {
		c.Flags().Int("offset", 0, "Period offset (0 = current, negative = past)")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(allCmd)
}

func offsetFlag(cmd *cobra.Command) int {
	offset, _ := cmd.Flags().GetInt("offset")
	return offset
}

// runReport generates and prints the report for one period
func runReport(period service.Period, offset int) {
	services := loadServices()
	if services == nil {
		return
	}

	report, err := services.Report.Generate(period, offset)
	if err != nil {
		reportError(err)
		return
	}

	cli.FormatReport(deps.Stdout, report)
}
