// Package clock provides an injectable current-time dependency. View logic
// that needs "today" or "tomorrow" takes a Clock instead of reading the wall
// clock directly, so tests can fix the date deterministically.
package clock

import "time"

// DateLayout is the calendar-date format used throughout the service for
// reservation dates: local calendar date, not a UTC instant.
const DateLayout = "2006-01-02"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time { return time.Now() }

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	T time.Time
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time { return f.T }

// DateString formats t as a local calendar date (YYYY-MM-DD).
func DateString(t time.Time) string { return t.Format(DateLayout) }

// Today returns the clock's current local calendar date string.
func Today(c Clock) string { return DateString(c.Now()) }

// Tomorrow returns the calendar date string one day after Today. AddDate
// handles month and DST boundaries.
func Tomorrow(c Clock) string { return DateString(c.Now().AddDate(0, 0, 1)) }
