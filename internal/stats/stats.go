package stats

import (
	"sort"
	"time"

	"github.com/xolan/worklog/internal/interval"
)

// NoActivity is the breakdown label for intervals logged without an activity
const NoActivity = "(no activity)"

// Metrics contains the derived figures of one group of intervals
type Metrics struct {
	Count   int
	Total   time.Duration
	Gap     time.Duration
	Overlap time.Duration
	// Start is the earliest start and Stop the stop of the last interval; both nil when empty
	Start *time.Time
	Stop  *time.Time
}

// Span returns Total + Gap, the length used to scale a group on a shared timeline
func (m Metrics) Span() time.Duration {
	return m.Total + m.Gap
}

// Summary contains aggregated figures across all groups
type Summary struct {
	Groups          int
	NonEmptyGroups  int
	Intervals       int
	Total           time.Duration
	Gap             time.Duration
	Overlap         time.Duration
	AveragePerGroup time.Duration
}

// ActivityBreakdown contains totals for a single activity
type ActivityBreakdown struct {
	Activity      string
	Total         time.Duration
	IntervalCount int
}

// Compute derives metrics from intervals already sorted by start.
// Gap and overlap only look at adjacent pairs in that order.
func Compute(intervals []interval.Interval) Metrics {
	m := Metrics{Count: len(intervals)}
	if len(intervals) == 0 {
		return m
	}

	start := intervals[0].Start
	stop := intervals[len(intervals)-1].Stop
	m.Start = &start
	m.Stop = &stop

	for i, iv := range intervals {
		m.Total += iv.Duration()
		if i == 0 {
			continue
		}
		gap, overlap := PairContribution(intervals[i-1], iv)
		m.Gap += gap
		m.Overlap += overlap
	}

	return m
}

// PairContribution splits the boundary between two adjacent intervals into idle
// time and overlapping time. At most one of the two is positive.
func PairContribution(prev, curr interval.Interval) (gap, overlap time.Duration) {
	diff := curr.Start.Sub(prev.Stop)
	if diff > 0 {
		return diff, 0
	}
	return 0, -diff
}

// Summarize aggregates the metrics of every group
func Summarize(groups []Metrics) Summary {
	s := Summary{Groups: len(groups)}

	for _, m := range groups {
		if m.Count == 0 {
			continue
		}
		s.NonEmptyGroups++
		s.Intervals += m.Count
		s.Total += m.Total
		s.Gap += m.Gap
		s.Overlap += m.Overlap
	}

	if s.NonEmptyGroups > 0 {
		s.AveragePerGroup = s.Total / time.Duration(s.NonEmptyGroups)
	}

	return s
}

// CalculateActivityBreakdown groups intervals by activity and returns the breakdown
// sorted by total duration, largest first. Ties are ordered by activity name.
func CalculateActivityBreakdown(intervals []interval.Interval) []ActivityBreakdown {
	if len(intervals) == 0 {
		return []ActivityBreakdown{}
	}

	activityMap := make(map[string]*ActivityBreakdown)

	for _, iv := range intervals {
		name := iv.Activity
		if name == "" {
			name = NoActivity
		}

		if _, exists := activityMap[name]; !exists {
			activityMap[name] = &ActivityBreakdown{
				Activity: name,
			}
		}

		activityMap[name].Total += iv.Duration()
		activityMap[name].IntervalCount++
	}

	breakdowns := make([]ActivityBreakdown, 0, len(activityMap))
	for _, breakdown := range activityMap {
		breakdowns = append(breakdowns, *breakdown)
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Total != breakdowns[j].Total {
			return breakdowns[i].Total > breakdowns[j].Total
		}
		return breakdowns[i].Activity < breakdowns[j].Activity
	})

	return breakdowns
}

// Share returns part as a percentage of whole, or 0 when whole is zero
func Share(part, whole time.Duration) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
