package timelog

// Sequence wraps an ordered collection of raw timelog lines and
// parses each line at most once, on first access. The memo slots are
// write-once: a successfully parsed entry never changes, while a
// failing line re-attempts (and re-fails) the parse on every access.
//
// Query assumes timestamps are non-decreasing across increasing
// indices; results are unreliable otherwise.
//
// Sequence is not safe for concurrent use.
type Sequence struct {
	lines  []string
	slots  []Entry
	parsed []bool
}

// NewSequence creates a Sequence over the given raw lines. The slice
// is copied; the caller keeps ownership of the original.
func NewSequence(lines []string) *Sequence {
	src := make([]string, len(lines))
	copy(src, lines)
	return &Sequence{
		lines:  src,
		slots:  make([]Entry, len(src)),
		parsed: make([]bool, len(src)),
	}
}

// Len returns the number of lines in the sequence.
func (s *Sequence) Len() int {
	return len(s.lines)
}

// Get returns the parsed entry for line i, parsing and caching it on
// first access. A malformed line fails with a *ParseError carrying
// the 0-based line index; the error surfaces at access time, so a
// caller that never touches the line never observes it.
func (s *Sequence) Get(i int) (Entry, error) {
	if s.parsed[i] {
		return s.slots[i], nil
	}

	e, err := ParseLine(s.lines[i])
	if err != nil {
		return Entry{}, &ParseError{Line: i, Msg: err.Error()}
	}

	s.slots[i] = e
	s.parsed[i] = true
	return e, nil
}
