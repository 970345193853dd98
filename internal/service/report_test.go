package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/tl/internal/config"
	"github.com/xolan/tl/internal/timelog"
)

// testNow is the fixed "now" the preset windows are computed against:
// Friday 2024-03-15, 13:37.
var testNow = time.Date(2024, time.March, 15, 13, 37, 0, 0, time.Local)

func newTestService(t *testing.T, content string) *ReportService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timelog.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test timelog: %v", err)
	}

	s := NewReportService(path, config.DefaultConfig())
	s.SetNow(func() time.Time { return testNow })
	return s
}

func TestGenerate_DayReport(t *testing.T) {
	s := newTestService(t, `2024-03-14 16:00: coding
2024-03-15 09:00: arrived
2024-03-15 12:00: coding
2024-03-15 12:30: lunch **
2024-03-15 16:30: coding
`)

	report, err := s.Generate(PeriodDay, 0)
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}

	if len(report.Entries) != 4 {
		t.Fatalf("expected 4 entries for today, got %d", len(report.Entries))
	}
	// 3h coding + 4h coding; the 30m lunch gap is excluded
	if report.Total != 7*time.Hour {
		t.Errorf("expected 7h total, got %v", report.Total)
	}
	if report.ExpectedHours != 7 {
		t.Errorf("expected 7 expected hours for a day, got %v", report.ExpectedHours)
	}
	if extra := report.ExtraHours(); extra != 0 {
		t.Errorf("expected 0 extra hours, got %v", extra)
	}
	if len(report.Breakdown) != 1 || report.Breakdown[0].Comment != "coding" {
		t.Errorf("unexpected breakdown: %+v", report.Breakdown)
	}
}

func TestGenerate_WeekAndPresetBaselines(t *testing.T) {
	s := newTestService(t, `2024-03-11 09:00: arrived
2024-03-11 17:00: coding
`)

	tests := []struct {
		period   Period
		expected float64
	}{
		{PeriodWeek, 35},
		{PeriodMonth, 130},
		{PeriodYear, 1570},
	}

	for _, tt := range tests {
		report, err := s.Generate(tt.period, 0)
		if err != nil {
			t.Fatalf("Generate(%v) returned unexpected error: %v", tt.period, err)
		}
		if report.Total != 8*time.Hour {
			t.Errorf("%v: expected 8h total, got %v", tt.period, report.Total)
		}
		if report.ExpectedHours != tt.expected {
			t.Errorf("%v: expected baseline %v, got %v", tt.period, tt.expected, report.ExpectedHours)
		}
	}
}

func TestGenerate_EmptyPeriod(t *testing.T) {
	s := newTestService(t, `2024-01-01 09:00: coding
2024-01-01 17:00: coding
`)

	report, err := s.Generate(PeriodDay, 0)
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}
	if len(report.Entries) != 0 {
		t.Errorf("expected no entries for today, got %d", len(report.Entries))
	}
	if report.Total != 0 {
		t.Errorf("expected zero total, got %v", report.Total)
	}
	if len(report.Breakdown) != 0 {
		t.Errorf("expected empty breakdown, got %+v", report.Breakdown)
	}
}

func TestGenerate_AllUsesSpanBaseline(t *testing.T) {
	// Exactly 7 days between first and last entry: the interpolated
	// baseline equals seven daily rates.
	s := newTestService(t, `2024-03-01 09:00: coding
2024-03-08 09:00: coding
`)

	report, err := s.Generate(PeriodAll, 0)
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}
	if report.ExpectedHours != 49 {
		t.Errorf("expected 49 expected hours over a 7-day span, got %v", report.ExpectedHours)
	}
}

func TestGenerate_AllWithNoEntries(t *testing.T) {
	s := newTestService(t, "")

	report, err := s.Generate(PeriodAll, 0)
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}
	if len(report.Entries) != 0 || report.Total != 0 || report.ExpectedHours != 0 {
		t.Errorf("empty timelog must report zeros, got %+v", report)
	}
}

func TestGenerate_ParseErrorPropagates(t *testing.T) {
	s := newTestService(t, `2024-03-15 09:00: coding
2024-03-15 10:00: coding
not-a-date: oops
`)

	_, err := s.Generate(PeriodAll, 0)
	if err == nil {
		t.Fatal("expected a parse error")
	}

	var parseErr *timelog.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a *timelog.ParseError, got %T", err)
	}
	if parseErr.Line != 2 {
		t.Errorf("expected line index 2, got %d", parseErr.Line)
	}
}

func TestGenerate_MissingTimelogFile(t *testing.T) {
	s := NewReportService(filepath.Join(t.TempDir(), "missing.txt"), config.DefaultConfig())

	if _, err := s.Generate(PeriodDay, 0); err == nil {
		t.Error("expected an error for a missing timelog file")
	}
}

func TestDailyTotals(t *testing.T) {
	s := newTestService(t, `2024-03-14 09:00: arrived
2024-03-14 12:00: coding
2024-03-14 12:30: lunch **
2024-03-14 17:00: coding
2024-03-15 09:00: arrived
2024-03-15 11:30: mail
`)

	days, err := s.DailyTotals()
	if err != nil {
		t.Fatalf("DailyTotals() returned unexpected error: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d: %+v", len(days), days)
	}
	// 3h + 4h30m = 7h30m worked, rounded down to 7; lunch excluded.
	if days[0].Date != "2024-03-14" || days[0].Hours != 7 {
		t.Errorf("unexpected first day: %+v", days[0])
	}
	// The overnight gap ends at the 09:00 arrival entry of the 15th
	// and counts toward that day unless marked as a break.
	if days[1].Date != "2024-03-15" {
		t.Errorf("unexpected second day: %+v", days[1])
	}
}

func TestPeriod_String(t *testing.T) {
	tests := []struct {
		period Period
		want   string
	}{
		{PeriodDay, "day"},
		{PeriodWeek, "week"},
		{PeriodMonth, "month"},
		{PeriodYear, "year"},
		{PeriodAll, "all"},
	}

	for _, tt := range tests {
		if got := tt.period.String(); got != tt.want {
			t.Errorf("Period(%d).String() = %q, want %q", tt.period, got, tt.want)
		}
	}
}
