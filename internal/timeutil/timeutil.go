// Package timeutil provides calendar boundary arithmetic for period
// queries. All boundaries are half-open period starts; the end of a
// period is the start of the next one.
package timeutil

import "time"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns Monday 00:00:00 of the week containing the given time (ISO standard)
// Handles the Sunday edge case where Go's Weekday() returns 0
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns January 1st of the year at 00:00:00 in the same timezone
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// AddMonths shifts t by the given number of calendar months, wrapping
// the month through 1-12 with year carry. Negative offsets spanning
// multiple years wrap correctly. The day of month is preserved, so it
// must be valid in the target month (period starts always use day 1).
func AddMonths(t time.Time, months int) time.Time {
	m := int(t.Month()) - 1 + months
	year := t.Year() + m/12
	m = m % 12
	if m < 0 {
		m += 12
		year--
	}
	return time.Date(year, time.Month(m+1), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
