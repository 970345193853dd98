// Package expected computes the number of work hours a user is
// nominally expected to log for a period, used as the comparison
// baseline in reports.
package expected

import "math"

// Config holds the contract parameters the expectation is derived
// from. It is configuration, not behavior: a Config is built once
// (defaults or the config file) and passed into the model.
type Config struct {
	WorkdaysPerWeek     int `toml:"workdays_per_week"`
	WorkhoursPerWeek    int `toml:"workhours_per_week"`
	HolidaysPerYear     int `toml:"holidays_per_year"`
	VacationDaysPerYear int `toml:"vacation_days_per_year"`
}

// DefaultConfig returns the standard 35-hour contract parameters.
func DefaultConfig() Config {
	return Config{
		WorkdaysPerWeek:     5,
		WorkhoursPerWeek:    35,
		HolidaysPerYear:     9,
		VacationDaysPerYear: 30,
	}
}

// Model is a stateless expected-hours calculator for a given Config.
type Model struct {
	cfg Config
}

// New creates a Model for the given configuration.
func New(cfg Config) Model {
	return Model{cfg: cfg}
}

// PerDay returns the expected hours for a single workday.
func (m Model) PerDay() int {
	return m.cfg.WorkhoursPerWeek / m.cfg.WorkdaysPerWeek
}

// PerWeek returns the expected hours for a week.
func (m Model) PerWeek() int {
	return m.cfg.WorkhoursPerWeek
}

// PerMonth returns the expected hours for a month, one twelfth of a
// year rounded down.
func (m Model) PerMonth() int {
	return m.PerYear() / 12
}

// PerYear returns the expected hours for a year, accounting for paid
// holidays and vacation days.
func (m Model) PerYear() int {
	return int(float64(m.PerDay()) * m.workdaysPerYear())
}

func (m Model) workdaysPerYear() float64 {
	return float64(365-m.cfg.HolidaysPerYear)*float64(m.cfg.WorkdaysPerWeek)/7 -
		float64(m.cfg.VacationDaysPerYear)
}

// ForSpan returns the expected hours for an arbitrary reporting span
// of n days (typically non-integer). The rate is a logistic blend
// between the flat daily rate and the yearly-average daily rate,
// centered so that a 7-day span uses the pure daily rate and long
// spans approach the yearly average. A non-positive span yields 0.
func (m Model) ForSpan(days float64) float64 {
	if days <= 0 {
		return 0
	}

	d1 := float64(m.PerDay())
	d2 := float64(m.PerYear()) / 365

	f := 2/(1+math.Exp(-(days-7)/7)) - 1
	rate := (1-f)*d1 + f*d2

	return rate * days
}
