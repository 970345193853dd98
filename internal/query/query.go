// Package query narrows a chronologically ordered timelog sequence to
// a requested time window using binary search, and exposes the usual
// period presets (day/week/month/year with integer offsets).
package query

import (
	"time"

	"github.com/xolan/tl/internal/timelog"
	"github.com/xolan/tl/internal/timeutil"
)

// Query selects a contiguous index window over a sequence whose
// timestamps are assumed non-decreasing. The window starts full-width
// and is narrowed in place by successive Before/After calls, then
// materialized once with All. Bounds are half-open: After(a) keeps
// entries with timestamp >= a, Before(b) keeps timestamp < b, so a
// timestamp exactly on a period boundary falls into the period that
// starts there.
type Query struct {
	seq *timelog.Sequence
	lo  int // inclusive
	hi  int // exclusive
	now time.Time
}

// New creates a full-width query with "now" taken from the wall clock.
func New(seq *timelog.Sequence) *Query {
	return NewAt(seq, time.Now())
}

// NewAt creates a full-width query with an explicit "now", which the
// period presets are computed relative to.
func NewAt(seq *timelog.Sequence, now time.Time) *Query {
	return &Query{seq: seq, lo: 0, hi: seq.Len(), now: now}
}

func (q *Query) timestamp(i int) (time.Time, error) {
	e, err := q.seq.Get(i)
	if err != nil {
		return time.Time{}, err
	}
	return e.Timestamp, nil
}

// boundary finds the first index in the current window whose
// timestamp is >= target. Preconditions (checked by split's fast
// paths): the window is non-empty, the first entry is < target and
// the last is >= target, so the boundary lies strictly inside.
// O(log n): the window is bisected until adjacent indices remain.
func (q *Query) boundary(target time.Time) (int, error) {
	low, high := q.lo, q.hi-1
	for high-low > 1 {
		mid := (low + high) / 2
		ts, err := q.timestamp(mid)
		if err != nil {
			return 0, err
		}
		if ts.Before(target) {
			low = mid
		} else {
			high = mid
		}
	}
	return high, nil
}

// split tightens one bound of the window. With after set it tightens
// the lower bound (keep timestamp >= target), otherwise the upper
// bound (keep timestamp < target).
func (q *Query) split(target time.Time, after bool) error {
	if q.hi <= q.lo {
		return nil
	}

	first, err := q.timestamp(q.lo)
	if err != nil {
		return err
	}
	last, err := q.timestamp(q.hi - 1)
	if err != nil {
		return err
	}

	if after {
		// Fast paths: everything qualifies, or nothing does.
		if !first.Before(target) {
			return nil
		}
		if last.Before(target) {
			q.lo = q.hi
			return nil
		}
	} else {
		if last.Before(target) {
			return nil
		}
		if !first.Before(target) {
			q.hi = q.lo
			return nil
		}
	}

	b, err := q.boundary(target)
	if err != nil {
		return err
	}
	if after {
		q.lo = b
	} else {
		q.hi = b
	}
	return nil
}

// After narrows the window to entries with timestamp >= t.
func (q *Query) After(t time.Time) error {
	return q.split(t, true)
}

// Before narrows the window to entries with timestamp < t.
func (q *Query) Before(t time.Time) error {
	return q.split(t, false)
}

// Day narrows to the calendar day at the given offset from today
// (0 = today, -1 = yesterday).
func (q *Query) Day(offset int) error {
	start := timeutil.StartOfDay(q.now).AddDate(0, 0, offset)
	return q.window(start, start.AddDate(0, 0, 1))
}

// Week narrows to the Monday-started week at the given offset from
// the current week.
func (q *Query) Week(offset int) error {
	start := timeutil.StartOfWeek(q.now).AddDate(0, 0, 7*offset)
	return q.window(start, start.AddDate(0, 0, 7))
}

// Month narrows to the calendar month at the given offset from the
// current month, with month arithmetic wrapping across year
// boundaries.
func (q *Query) Month(offset int) error {
	first := timeutil.StartOfMonth(q.now)
	return q.window(timeutil.AddMonths(first, offset), timeutil.AddMonths(first, offset+1))
}

// Year narrows to the calendar year at the given offset from the
// current year.
func (q *Query) Year(offset int) error {
	start := timeutil.StartOfYear(q.now).AddDate(offset, 0, 0)
	return q.window(start, start.AddDate(1, 0, 0))
}

func (q *Query) window(start, end time.Time) error {
	if err := q.After(start); err != nil {
		return err
	}
	return q.Before(end)
}

// Bounds returns the current index window [lo, hi).
func (q *Query) Bounds() (lo, hi int) {
	return q.lo, q.hi
}

// All materializes the entries currently in the window, in original
// order, parsing each lazily if not already cached. An empty window
// yields an empty slice.
func (q *Query) All() ([]timelog.Entry, error) {
	entries := make([]timelog.Entry, 0, q.hi-q.lo)
	for i := q.lo; i < q.hi; i++ {
		e, err := q.seq.Get(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
