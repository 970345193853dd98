// Package cli provides the CLI presentation layer for the tl
// application. It handles output formatting for reports and exports.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/xolan/tl/internal/service"
	"github.com/xolan/tl/internal/timelog"
)

// FormatDuration formats a duration as a human-readable string with
// minute precision.
// Examples: "30m", "2h", "1h 30m"
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatHours formats a fractional hour count, e.g. "7.0h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// FormatSignedHours formats a fractional hour count with an explicit
// sign, e.g. "+1.5h" or "-0.5h".
func FormatSignedHours(hours float64) string {
	return fmt.Sprintf("%+.1fh", hours)
}

// PeriodLabel returns the human label for a period and offset,
// e.g. "today", "last week", "month -3", "full timelog".
func PeriodLabel(period service.Period, offset int) string {
	if period == service.PeriodAll {
		return "full timelog"
	}

	switch offset {
	case 0:
		if period == service.PeriodDay {
			return "today"
		}
		return "this " + period.String()
	case -1:
		if period == service.PeriodDay {
			return "yesterday"
		}
		return "last " + period.String()
	}
	return fmt.Sprintf("%s %+d", period.String(), offset)
}

// FormatEntry formats an entry for display in a listing.
func FormatEntry(e timelog.Entry) string {
	if e.Blank {
		return ""
	}
	return fmt.Sprintf("%s  %s", e.Timestamp.Format(timelog.TimestampLayout), e.Comment)
}

// FormatReport writes the full report: per-comment breakdown sorted
// by duration, total, and the comparison against expected hours.
// Label columns are aligned by display width so wide runes line up.
func FormatReport(w io.Writer, r *service.Report) {
	label := PeriodLabel(r.Period, r.Offset)

	if len(r.Entries) == 0 {
		_, _ = fmt.Fprintf(w, "No entries found for %s\n", label)
		return
	}

	_, _ = fmt.Fprintf(w, "Report for %s (%d entries)\n", label, len(r.Entries))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 50))

	width := 0
	for _, row := range r.Breakdown {
		if lw := runewidth.StringWidth(row.Comment); lw > width {
			width = lw
		}
	}
	for _, row := range r.Breakdown {
		_, _ = fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(row.Comment, width), FormatDuration(row.Duration))
	}

	_, _ = fmt.Fprintln(w, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(w, "Total:    %s\n", FormatDuration(r.Total))
	_, _ = fmt.Fprintf(w, "Expected: %s\n", FormatHours(r.ExpectedHours))
	_, _ = fmt.Fprintf(w, "Extra:    %s\n", FormatSignedHours(r.ExtraHours()))
}
