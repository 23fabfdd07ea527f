package timeutil

import "time"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Today returns midnight of the current date in loc
func Today(loc *time.Location) time.Time {
	return StartOfDay(time.Now().In(loc))
}

// Yesterday returns midnight of the previous date in loc
func Yesterday(loc *time.Location) time.Time {
	return Today(loc).AddDate(0, 0, -1)
}
