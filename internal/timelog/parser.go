package timelog

import (
	"fmt"
	"strings"
	"time"
)

// delimiter separates the timestamp field from the comment field
const delimiter = ": "

func containsBreakMarker(comment string) bool {
	return strings.Contains(comment, BreakMarker)
}

// ParseLine converts one raw, whitespace-stripped line into an Entry.
// A blank line yields the blank day-boundary variant. Any other line
// must have the form "YYYY-MM-DD HH:MM: <comment>".
func ParseLine(s string) (Entry, error) {
	if s == "" {
		return Entry{Blank: true}, nil
	}

	idx := strings.Index(s, delimiter)
	if idx == -1 {
		return Entry{}, fmt.Errorf("missing %q delimiter", delimiter)
	}

	ts, err := time.ParseInLocation(TimestampLayout, s[:idx], time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("bad timestamp %q: expected %s", s[:idx], TimestampLayout)
	}

	return Entry{
		Timestamp: ts,
		Comment:   s[idx+len(delimiter):],
	}, nil
}
