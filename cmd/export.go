package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/tl/internal/service"
	"github.com/xolan/tl/internal/timelog"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export timelog data to various formats",
	Long: `Export timelog data for programmatic use or further analysis.

Available formats:
  csv     Per-day worked hours as CSV
  json    All entries as JSON

Examples:
  tl export csv                 Per-day hours on stdout
  tl export csv > hours.csv     Export to file
  tl export json > backup.json  Export entries to file`,
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export per-day worked hours as CSV",
	Long: `Export one CSV row per calendar day with the worked hours for
that day (whole hours, rounded down). Break intervals are excluded,
the same rule the reports apply.

Output format:
  date,hours
  2026-08-28,7
  2026-08-29,6`,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV()
	},
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export timelog entries as JSON",
	Long: `Export all timelog entries to JSON format.

Output includes metadata (export timestamp, entry count) and an array
of entry objects with timestamp and comment.`,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON()
	},
}

func init() {
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportJSONCmd)
	rootCmd.AddCommand(exportCmd)
}

// exportCSV writes per-day worked hours as CSV to stdout
func exportCSV() {
	services := loadServices()
	if services == nil {
		return
	}

	days, err := services.Report.DailyTotals()
	if err != nil {
		reportError(err)
		return
	}

	writer := csv.NewWriter(deps.Stdout)
	_ = writer.Write([]string{"date", "hours"})
	for _, day := range days {
		_ = writer.Write([]string{day.Date, strconv.Itoa(day.Hours)})
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write CSV: %v\n", err)
		deps.Exit(1)
	}
}

// jsonEntry is the serialized form of one timelog entry
type jsonEntry struct {
	Timestamp string `json:"timestamp"`
	Comment   string `json:"comment"`
}

// jsonExport is the top-level JSON export document
type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	EntryCount int         `json:"entry_count"`
	Entries    []jsonEntry `json:"entries"`
}

// exportJSON writes all entries as JSON to stdout
func exportJSON() {
	services := loadServices()
	if services == nil {
		return
	}

	report, err := services.Report.Generate(service.PeriodAll, 0)
	if err != nil {
		reportError(err)
		return
	}

	doc := jsonExport{
		ExportedAt: time.Now().Format(time.RFC3339),
		EntryCount: len(report.Entries),
		Entries:    make([]jsonEntry, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		doc.Entries = append(doc.Entries, jsonEntry{
			Timestamp: e.Timestamp.Format(timelog.TimestampLayout),
			Comment:   e.Comment,
		})
	}

	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write JSON: %v\n", err)
		deps.Exit(1)
	}
}
