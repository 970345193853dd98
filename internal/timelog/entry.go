package timelog

import (
	"fmt"
	"time"
)

// Timestamp layout used by timelog files (minute precision)
const TimestampLayout = "2006-01-02 15:04"

// BreakMarker marks the interval ending at an entry as a break.
// Any comment containing it is excluded from worked-time totals.
const BreakMarker = "**"

// Entry represents a single parsed timelog record.
// A blank line in the log parses to the blank variant (Blank=true),
// a day-boundary sentinel distinct from any real entry.
type Entry struct {
	Timestamp time.Time
	Comment   string
	Blank     bool
}

// IsBreak reports whether the interval ending at this entry is a
// tracked break and must not count toward worked time.
func (e Entry) IsBreak() bool {
	return !e.Blank && containsBreakMarker(e.Comment)
}

// ParseError describes a line that does not match the expected
// timelog format. Line is the 0-based index of the offending line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in line %d: %s", e.Line, e.Msg)
}
