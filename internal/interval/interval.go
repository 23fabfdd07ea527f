// Package interval turns raw "(HH:MM - HH:MM)" fragments into absolute time ranges.
package interval

import (
	"fmt"
	"time"

	"github.com/xolan/worklog/internal/palette"
)

// Interval is a single worked time range.
// Stop is never before Start; a stop clock time earlier than the start clock
// time has already been moved to the following day.
type Interval struct {
	Start    time.Time
	Stop     time.Time
	Activity string
	// Color is set during grouping when activity coloring is enabled.
	Color *palette.Color
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.Stop.Sub(i.Start)
}

// CrossesMidnight reports whether the interval ends on a later calendar day than it starts.
func (i Interval) CrossesMidnight() bool {
	sy, sm, sd := i.Start.Date()
	ey, em, ed := i.Stop.Date()
	return sy != ey || sm != em || sd != ed
}

// String returns the interval in its source notation, e.g. "23:30-00:15".
func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start.Format("15:04"), i.Stop.Format("15:04"))
}
