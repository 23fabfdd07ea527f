package interval

import (
	"regexp"
	"strconv"
	"time"
)

// fragmentPattern matches a parenthesised clock range such as "(09:00 - 12:30)".
// Hours are 00-23 and minutes 00-59, both zero-padded; spaces around the dash are optional.
var fragmentPattern = regexp.MustCompile(`\(\s*([01]\d|2[0-3]):([0-5]\d)\s*-\s*([01]\d|2[0-3]):([0-5]\d)\s*\)`)

// Parse extracts every interval fragment from text, anchored to the current local date.
func Parse(text, activity string) []Interval {
	return ParseAt(text, activity, time.Now())
}

// ParseAt extracts every interval fragment from text, anchored to the calendar date of day.
// Fragments are returned in the order they appear. Text that is not a fragment is ignored.
//
// Both clock times are placed on day's date. When the stop time is earlier than the
// start time the stop moves to the next day; equal times give a zero-length interval.
func ParseAt(text, activity string, day time.Time) []Interval {
	matches := fragmentPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	intervals := make([]Interval, 0, len(matches))
	for _, m := range matches {
		start := clockOn(day, m[1], m[2])
		stop := clockOn(day, m[3], m[4])
		if stop.Before(start) {
			stop = stop.AddDate(0, 0, 1)
		}
		intervals = append(intervals, Interval{
			Start:    start,
			Stop:     stop,
			Activity: activity,
		})
	}
	return intervals
}

// clockOn places an HH:MM pair on day's date with minute precision.
// The pattern guarantees both parts are valid two-digit numbers.
func clockOn(day time.Time, hh, mm string) time.Time {
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// Count returns the number of interval fragments in text.
func Count(text string) int {
	return len(fragmentPattern.FindAllStringIndex(text, -1))
}
