package utils

import "time"

// DayRange returns the half-open local-calendar-day window [start, end)
// containing t: local midnight up to the following midnight.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
