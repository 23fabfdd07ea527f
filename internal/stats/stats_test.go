package stats

import (
	"testing"
	"time"

	"github.com/xolan/worklog/internal/interval"
)

// Helper function to create test times on a fixed day
func makeTime(day, hour, min int) time.Time {
	return time.Date(2024, time.January, day, hour, min, 0, 0, time.Local)
}

// Helper function to create an interval on January 15
func makeInterval(startH, startM, stopH, stopM int, activity string) interval.Interval {
	return interval.Interval{
		Start:    makeTime(15, startH, startM),
		Stop:     makeTime(15, stopH, stopM),
		Activity: activity,
	}
}

func TestCompute_Empty(t *testing.T) {
	m := Compute(nil)

	if m.Total != 0 || m.Gap != 0 || m.Overlap != 0 {
		t.Errorf("Compute(nil) = %+v, expected zero durations", m)
	}
	if m.Start != nil || m.Stop != nil {
		t.Error("Start and Stop should be nil for an empty group")
	}
	if m.Count != 0 {
		t.Errorf("Count = %d, expected 0", m.Count)
	}
}

func TestCompute_SingleInterval(t *testing.T) {
	m := Compute([]interval.Interval{makeInterval(9, 0, 12, 30, "")})

	if m.Total != 3*time.Hour+30*time.Minute {
		t.Errorf("Total = %v, expected 3h30m", m.Total)
	}
	if m.Gap != 0 {
		t.Errorf("Gap = %v, expected 0", m.Gap)
	}
	if m.Overlap != 0 {
		t.Errorf("Overlap = %v, expected 0", m.Overlap)
	}
	if m.Start == nil || !m.Start.Equal(makeTime(15, 9, 0)) {
		t.Errorf("Start = %v, expected 09:00", m.Start)
	}
	if m.Stop == nil || !m.Stop.Equal(makeTime(15, 12, 30)) {
		t.Errorf("Stop = %v, expected 12:30", m.Stop)
	}
}

func TestCompute_Gap(t *testing.T) {
	m := Compute([]interval.Interval{
		makeInterval(9, 0, 12, 0, ""),
		makeInterval(13, 0, 17, 0, ""),
	})

	if m.Total != 7*time.Hour {
		t.Errorf("Total = %v, expected 7h", m.Total)
	}
	if m.Gap != time.Hour {
		t.Errorf("Gap = %v, expected 1h", m.Gap)
	}
	if m.Overlap != 0 {
		t.Errorf("Overlap = %v, expected 0", m.Overlap)
	}
	if m.Span() != 8*time.Hour {
		t.Errorf("Span() = %v, expected 8h", m.Span())
	}
}

func TestCompute_Overlap(t *testing.T) {
	m := Compute([]interval.Interval{
		makeInterval(9, 0, 13, 0, ""),
		makeInterval(12, 0, 15, 0, ""),
	})

	if m.Total != 7*time.Hour {
		t.Errorf("Total = %v, expected 7h", m.Total)
	}
	if m.Overlap != time.Hour {
		t.Errorf("Overlap = %v, expected 1h", m.Overlap)
	}
	if m.Gap != 0 {
		t.Errorf("Gap = %v, expected 0", m.Gap)
	}
}

func TestCompute_TouchingIntervals(t *testing.T) {
	m := Compute([]interval.Interval{
		makeInterval(9, 0, 10, 0, ""),
		makeInterval(10, 0, 11, 0, ""),
	})

	if m.Gap != 0 || m.Overlap != 0 {
		t.Errorf("Gap = %v, Overlap = %v, expected both 0", m.Gap, m.Overlap)
	}
}

func TestCompute_StopIsLastInterval(t *testing.T) {
	// The first interval ends after the second; Stop still comes from the last one
	m := Compute([]interval.Interval{
		makeInterval(9, 0, 17, 0, ""),
		makeInterval(10, 0, 11, 0, ""),
	})

	if !m.Stop.Equal(makeTime(15, 11, 0)) {
		t.Errorf("Stop = %v, expected 11:00", m.Stop)
	}
	if m.Overlap != 7*time.Hour {
		t.Errorf("Overlap = %v, expected 7h", m.Overlap)
	}
}

func TestCompute_MidnightRollover(t *testing.T) {
	m := Compute([]interval.Interval{
		{Start: makeTime(15, 22, 0), Stop: makeTime(15, 23, 0)},
		{Start: makeTime(15, 23, 30), Stop: makeTime(16, 0, 15)},
	})

	if m.Total != time.Hour+45*time.Minute {
		t.Errorf("Total = %v, expected 1h45m", m.Total)
	}
	if m.Gap != 30*time.Minute {
		t.Errorf("Gap = %v, expected 30m", m.Gap)
	}
}

func TestPairContribution_Exclusive(t *testing.T) {
	tests := []struct {
		name        string
		prev, curr  interval.Interval
		wantGap     time.Duration
		wantOverlap time.Duration
	}{
		{"gap", makeInterval(9, 0, 10, 0, ""), makeInterval(10, 30, 11, 0, ""), 30 * time.Minute, 0},
		{"overlap", makeInterval(9, 0, 10, 30, ""), makeInterval(10, 0, 11, 0, ""), 0, 30 * time.Minute},
		{"touching", makeInterval(9, 0, 10, 0, ""), makeInterval(10, 0, 11, 0, ""), 0, 0},
		{"contained", makeInterval(9, 0, 12, 0, ""), makeInterval(10, 0, 11, 0, ""), 0, 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap, overlap := PairContribution(tt.prev, tt.curr)
			if gap != tt.wantGap || overlap != tt.wantOverlap {
				t.Errorf("PairContribution() = (%v, %v), expected (%v, %v)", gap, overlap, tt.wantGap, tt.wantOverlap)
			}
			if gap > 0 && overlap > 0 {
				t.Error("gap and overlap are both positive")
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	groups := []Metrics{
		Compute([]interval.Interval{makeInterval(9, 0, 12, 0, ""), makeInterval(13, 0, 17, 0, "")}),
		Compute(nil),
		Compute([]interval.Interval{makeInterval(9, 0, 13, 0, ""), makeInterval(12, 0, 15, 0, "")}),
	}

	s := Summarize(groups)

	if s.Groups != 3 {
		t.Errorf("Groups = %d, expected 3", s.Groups)
	}
	if s.NonEmptyGroups != 2 {
		t.Errorf("NonEmptyGroups = %d, expected 2", s.NonEmptyGroups)
	}
	if s.Intervals != 4 {
		t.Errorf("Intervals = %d, expected 4", s.Intervals)
	}
	if s.Total != 14*time.Hour {
		t.Errorf("Total = %v, expected 14h", s.Total)
	}
	if s.Gap != time.Hour || s.Overlap != time.Hour {
		t.Errorf("Gap = %v, Overlap = %v, expected 1h each", s.Gap, s.Overlap)
	}
	if s.AveragePerGroup != 7*time.Hour {
		t.Errorf("AveragePerGroup = %v, expected 7h", s.AveragePerGroup)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Groups != 0 || s.AveragePerGroup != 0 {
		t.Errorf("Summarize(nil) = %+v, expected zero summary", s)
	}
}

func TestCalculateActivityBreakdown(t *testing.T) {
	intervals := []interval.Interval{
		makeInterval(9, 0, 10, 0, "dev"),
		makeInterval(10, 0, 10, 30, "meeting"),
		makeInterval(11, 0, 13, 0, "dev"),
		makeInterval(14, 0, 14, 30, ""),
	}

	breakdown := CalculateActivityBreakdown(intervals)

	if len(breakdown) != 3 {
		t.Fatalf("len(breakdown) = %d, expected 3", len(breakdown))
	}
	if breakdown[0].Activity != "dev" || breakdown[0].Total != 3*time.Hour || breakdown[0].IntervalCount != 2 {
		t.Errorf("breakdown[0] = %+v, expected dev 3h x2", breakdown[0])
	}
	// meeting and (no activity) tie at 30m; ordered by name
	if breakdown[1].Activity != NoActivity {
		t.Errorf("breakdown[1].Activity = %q, expected %q", breakdown[1].Activity, NoActivity)
	}
	if breakdown[2].Activity != "meeting" {
		t.Errorf("breakdown[2].Activity = %q, expected %q", breakdown[2].Activity, "meeting")
	}
}

func TestCalculateActivityBreakdown_Empty(t *testing.T) {
	breakdown := CalculateActivityBreakdown(nil)
	if breakdown == nil || len(breakdown) != 0 {
		t.Errorf("CalculateActivityBreakdown(nil) = %v, expected empty non-nil slice", breakdown)
	}
}

func TestShare(t *testing.T) {
	if got := Share(time.Hour, 4*time.Hour); got != 25 {
		t.Errorf("Share() = %v, expected 25", got)
	}
	if got := Share(time.Hour, 0); got != 0 {
		t.Errorf("Share() with zero whole = %v, expected 0", got)
	}
}
