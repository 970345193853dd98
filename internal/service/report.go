package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/xolan/tl/internal/aggregate"
	"github.com/xolan/tl/internal/config"
	"github.com/xolan/tl/internal/expected"
	"github.com/xolan/tl/internal/query"
	"github.com/xolan/tl/internal/storage"
	"github.com/xolan/tl/internal/timelog"
)

// Period identifies a preset reporting period.
type Period int

const (
	PeriodDay Period = iota
	PeriodWeek
	PeriodMonth
	PeriodYear
	// PeriodAll covers the full timelog; expected hours are
	// interpolated over the span between the first and last entry.
	PeriodAll
)

// String returns the period name as used in CLI output.
func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	case PeriodAll:
		return "all"
	}
	return "unknown"
}

// Report is the aggregated result for one period, ready for
// presentation.
type Report struct {
	Period        Period
	Offset        int
	Entries       []timelog.Entry
	Total         time.Duration
	Breakdown     []aggregate.CommentDuration
	ExpectedHours float64
}

// ExtraHours returns logged minus expected hours; negative means the
// period is short of the expectation.
func (r *Report) ExtraHours() float64 {
	return r.Total.Hours() - r.ExpectedHours
}

// ReportService generates period reports from the timelog file.
type ReportService struct {
	timelogPath string
	cfg         config.Config
	now         func() time.Time
}

// NewReportService creates a ReportService reading from the given
// timelog path.
func NewReportService(timelogPath string, cfg config.Config) *ReportService {
	return &ReportService{
		timelogPath: timelogPath,
		cfg:         cfg,
		now:         time.Now,
	}
}

// SetNow overrides the wall clock the period presets are computed
// relative to (for testing).
func (s *ReportService) SetNow(now func() time.Time) {
	s.now = now
}

// Generate produces the report for the given period and offset
// (0 = current period, negative = further in the past). The offset is
// ignored for PeriodAll. A *timelog.ParseError from a malformed line
// inside the requested window propagates unchanged.
func (s *ReportService) Generate(period Period, offset int) (*Report, error) {
	lines, err := storage.ReadLines(s.timelogPath)
	if err != nil {
		return nil, err
	}

	seq := timelog.NewSequence(lines)
	q := query.NewAt(seq, s.now())

	switch period {
	case PeriodDay:
		err = q.Day(offset)
	case PeriodWeek:
		err = q.Week(offset)
	case PeriodMonth:
		err = q.Month(offset)
	case PeriodYear:
		err = q.Year(offset)
	case PeriodAll:
		// full range, no narrowing
	default:
		return nil, fmt.Errorf("unknown period %d", period)
	}
	if err != nil {
		return nil, err
	}

	entries, err := q.All()
	if err != nil {
		return nil, err
	}

	agg := aggregate.New(entries)
	model := expected.New(s.cfg.Expected)

	report := &Report{
		Period:        period,
		Offset:        offset,
		Entries:       entries,
		Total:         agg.Sum(),
		Breakdown:     agg.Breakdown(),
		ExpectedHours: expectedFor(model, period, entries),
	}
	return report, nil
}

// expectedFor picks the baseline for a preset period, or interpolates
// over the report's actual span when no preset applies. An empty or
// single-entry full-range report has a zero-length span and expects 0.
func expectedFor(model expected.Model, period Period, entries []timelog.Entry) float64 {
	switch period {
	case PeriodDay:
		return float64(model.PerDay())
	case PeriodWeek:
		return float64(model.PerWeek())
	case PeriodMonth:
		return float64(model.PerMonth())
	case PeriodYear:
		return float64(model.PerYear())
	}

	if len(entries) < 2 {
		return 0
	}
	span := entries[len(entries)-1].Timestamp.Sub(entries[0].Timestamp)
	return model.ForSpan(span.Hours() / 24)
}

// DailyHours is the worked total for one calendar day.
type DailyHours struct {
	Date  string // YYYY-MM-DD
	Hours int    // whole hours, rounded down
}

// DailyTotals computes per-day worked hours over the whole timelog,
// for CSV export. Each gap is attributed to the day of its ending
// entry; break intervals are excluded.
func (s *ReportService) DailyTotals() ([]DailyHours, error) {
	lines, err := storage.ReadLines(s.timelogPath)
	if err != nil {
		return nil, err
	}

	seq := timelog.NewSequence(lines)
	entries, err := query.NewAt(seq, s.now()).All()
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]time.Duration)
	for i := 1; i < len(entries); i++ {
		e := entries[i]
		if e.IsBreak() {
			continue
		}
		day := e.Timestamp.Format("2006-01-02")
		byDay[day] += e.Timestamp.Sub(entries[i-1].Timestamp)
	}

	days := make([]DailyHours, 0, len(byDay))
	for day, total := range byDay {
		days = append(days, DailyHours{Date: day, Hours: int(total.Hours())})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days, nil
}
