// Package period is the single source of day, week, and month boundaries.
// Both the budget evaluator and the statistics aggregator use these rules so
// the add-transaction warning and the dashboard numbers always agree.
package period

import "time"

// Window identifies an aggregation window.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// IsValid reports whether w is a supported window.
func (w Window) IsValid() bool {
	switch w {
	case WindowDay, WindowWeek, WindowMonth:
		return true
	}
	return false
}

// StartOfDay returns t with hours, minutes, seconds, and nanoseconds zeroed,
// in t's own location. Transactions are timestamped UTC, so day boundaries
// are UTC throughout.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the start of t's week. Weeks start Monday.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// Range returns the half-open interval [start, end) covering the window that
// contains now.
func Range(w Window, now time.Time) (time.Time, time.Time) {
	switch w {
	case WindowWeek:
		start := StartOfWeek(now)
		return start, start.AddDate(0, 0, 7)
	case WindowMonth:
		start := StartOfMonth(now)
		return start, start.AddDate(0, 1, 0)
	default:
		start := StartOfDay(now)
		return start, start.AddDate(0, 0, 1)
	}
}

// Contains reports whether t falls inside the half-open interval [start, end).
func Contains(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
