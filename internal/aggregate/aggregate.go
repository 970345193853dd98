// Package aggregate turns a materialized, ascending-time sequence of
// timelog entries into a total elapsed duration and a per-comment
// breakdown. Elapsed time is the sum of gaps between consecutive
// entries; a gap whose ending entry is a tracked break (comment
// containing "**") is excluded from both the total and the breakdown.
package aggregate

import (
	"sort"
	"time"

	"github.com/xolan/tl/internal/timelog"
)

// Aggregator computes worked-time totals over a fixed entry sequence.
// All methods are pure; the input is never mutated.
type Aggregator struct {
	entries []timelog.Entry
}

// New creates an Aggregator over the given entries. The entries must
// be in ascending timestamp order (as produced by query.All).
func New(entries []timelog.Entry) *Aggregator {
	return &Aggregator{entries: entries}
}

// Sum returns the total worked duration: the sum of all gaps between
// consecutive entries, excluding break intervals. A sequence of 0 or
// 1 entries has no gaps and yields zero.
func (a *Aggregator) Sum() time.Duration {
	var total time.Duration
	for i := 1; i < len(a.entries); i++ {
		e := a.entries[i]
		if e.IsBreak() {
			continue
		}
		total += e.Timestamp.Sub(a.entries[i-1].Timestamp)
	}
	return total
}

// ByComment returns the worked duration accumulated per comment
// label. Each gap is attributed to the comment of its ending entry;
// recurring labels accumulate. Break intervals are excluded entirely,
// so a break label never appears in the result.
func (a *Aggregator) ByComment() map[string]time.Duration {
	byComment := make(map[string]time.Duration)
	for i := 1; i < len(a.entries); i++ {
		e := a.entries[i]
		if e.IsBreak() {
			continue
		}
		byComment[e.Comment] += e.Timestamp.Sub(a.entries[i-1].Timestamp)
	}
	return byComment
}

// CommentDuration is one row of a sorted per-comment breakdown.
type CommentDuration struct {
	Comment  string
	Duration time.Duration
}

// Breakdown returns ByComment flattened into a slice sorted by
// duration descending, ties broken by label, for presentation.
func (a *Aggregator) Breakdown() []CommentDuration {
	byComment := a.ByComment()

	breakdown := make([]CommentDuration, 0, len(byComment))
	for comment, d := range byComment {
		breakdown = append(breakdown, CommentDuration{Comment: comment, Duration: d})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Duration != breakdown[j].Duration {
			return breakdown[i].Duration > breakdown[j].Duration
		}
		return breakdown[i].Comment < breakdown[j].Comment
	})

	return breakdown
}
