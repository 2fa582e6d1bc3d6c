// Package daterange holds the check-in/check-out selection logic used by the
// booking flow. Every function is pure: "today" and the nightly rate are
// always passed in by the caller and nothing here reads the clock.
package daterange

import (
	"errors"
	"time"
)

// DefaultHorizon is the number of days offered for selection by the booking
// screen.
const DefaultHorizon = 60

// ErrInvalidHorizon is returned when a horizon of zero or negative length is
// requested.
var ErrInvalidHorizon = errors.New("horizon length must be positive")

// Day truncates t to its calendar date. The year, month and day are taken in
// t's own location and the result is midnight UTC of that date, so two
// instants on the same local date always compare equal.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// CalendarDay is one entry of a horizon. Only the date is stored; all render
// flags are computed from a Selection on demand.
type CalendarDay struct {
	Date time.Time
}

// DayFlags bundles the render flags of a single day.
type DayFlags struct {
	Past     bool `json:"is_past"`
	Today    bool `json:"is_today"`
	Selected bool `json:"is_selected"`
	InRange  bool `json:"is_in_range"`
}

// IsPast reports whether the day is strictly before today.
func (d CalendarDay) IsPast(today time.Time) bool {
	return Day(d.Date).Before(Day(today))
}

// IsToday reports whether the day is today.
func (d CalendarDay) IsToday(today time.Time) bool {
	return SameDay(d.Date, today)
}

// IsSelected reports whether the day is one of the picked days: the check-in
// of a partial range, or any day of a complete range.
func (d CalendarDay) IsSelected(sel Selection) bool {
	switch sel.Phase() {
	case PartialRange:
		return SameDay(d.Date, sel.CheckIn)
	case CompleteRange:
		return InSelectedRange(sel, d.Date)
	}
	return false
}

// IsInRange reports whether the day lies in a complete range.
func (d CalendarDay) IsInRange(sel Selection) bool {
	return InSelectedRange(sel, d.Date)
}

// Flags computes every render flag for the day at once.
func (d CalendarDay) Flags(sel Selection, today time.Time) DayFlags {
	return DayFlags{
		Past:     d.IsPast(today),
		Today:    d.IsToday(today),
		Selected: d.IsSelected(sel),
		InRange:  d.IsInRange(sel),
	}
}

// GenerateHorizon returns length consecutive days starting at today
// (inclusive), in ascending order.
func GenerateHorizon(today time.Time, length int) ([]CalendarDay, error) {
	if length <= 0 {
		return nil, ErrInvalidHorizon
	}
	start := Day(today)
	days := make([]CalendarDay, 0, length)
	for i := 0; i < length; i++ {
		// AddDate on a UTC midnight never drifts across DST boundaries
		days = append(days, CalendarDay{Date: start.AddDate(0, 0, i)})
	}
	return days, nil
}
