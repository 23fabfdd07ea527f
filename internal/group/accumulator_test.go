package group

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/xolan/worklog/internal/palette"
)

var testDay = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)

func at(hour, min int) time.Time {
	return time.Date(2024, time.January, 15, hour, min, 0, 0, time.Local)
}

func accumulate(rows []RawRow, opts ...Option) []Group {
	return Accumulate(rows, append([]Option{WithDay(testDay)}, opts...)...)
}

func TestAccumulate_ScenarioGap(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Mon"),
		Content("(09:00-12:00)(13:00-17:00)", ""),
	})

	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, expected 1", len(groups))
	}
	g := groups[0]
	if g.ID != "g1" || g.Label != "Mon" {
		t.Errorf("group = %q/%q, expected g1/Mon", g.ID, g.Label)
	}
	if len(g.Intervals) != 2 {
		t.Fatalf("len(Intervals) = %d, expected 2", len(g.Intervals))
	}
	if g.Intervals[0].Duration() != 3*time.Hour || g.Intervals[1].Duration() != 4*time.Hour {
		t.Errorf("durations = %v, %v, expected 3h, 4h", g.Intervals[0].Duration(), g.Intervals[1].Duration())
	}
	if g.Total != 7*time.Hour {
		t.Errorf("Total = %v, expected 7h", g.Total)
	}
	if g.Gap != time.Hour {
		t.Errorf("Gap = %v, expected 1h", g.Gap)
	}
	if g.Overlap != 0 {
		t.Errorf("Overlap = %v, expected 0", g.Overlap)
	}
}

func TestAccumulate_ScenarioOverlap(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Tue"),
		Content("(12:00-15:00)", ""),
		Content("(09:00-13:00)", ""),
	})

	g := groups[0]
	if !g.Intervals[0].Start.Equal(at(9, 0)) || !g.Intervals[1].Start.Equal(at(12, 0)) {
		t.Errorf("intervals not sorted: %v, %v", g.Intervals[0], g.Intervals[1])
	}
	if g.Overlap != time.Hour {
		t.Errorf("Overlap = %v, expected 1h", g.Overlap)
	}
	if g.Gap != 0 {
		t.Errorf("Gap = %v, expected 0", g.Gap)
	}
	if !g.Start.Equal(at(9, 0)) || !g.Stop.Equal(at(15, 0)) {
		t.Errorf("Start/Stop = %v/%v, expected 09:00/15:00", g.Start, g.Stop)
	}
}

func TestAccumulate_OrphanContentDropped(t *testing.T) {
	var buf bytes.Buffer
	groups := accumulate([]RawRow{
		Content("(08:00-09:00)", ""),
		Boundary("g1", "Mon"),
		Content("(10:00-11:00)", ""),
	}, WithLogger(log.New(&buf, "", 0)))

	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, expected 1", len(groups))
	}
	if len(groups[0].Intervals) != 1 {
		t.Errorf("len(Intervals) = %d, expected 1 (orphan dropped)", len(groups[0].Intervals))
	}
	if !strings.Contains(buf.String(), "before first boundary") {
		t.Errorf("log = %q, expected orphan message", buf.String())
	}
}

func TestAccumulate_NoRows(t *testing.T) {
	groups := accumulate(nil)
	if groups == nil || len(groups) != 0 {
		t.Errorf("Accumulate(nil) = %v, expected empty non-nil slice", groups)
	}
}

func TestAccumulate_EmptyGroups(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Mon"),
		Content("", "dev"),
		Content("nothing here", ""),
		Boundary("g2", ""),
	})

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, expected 2", len(groups))
	}
	for _, g := range groups {
		if !g.IsEmpty() {
			t.Errorf("group %s should be empty", g.ID)
		}
		if g.Start != nil || g.Stop != nil {
			t.Errorf("group %s Start/Stop should be nil", g.ID)
		}
	}
	if groups[1].Label != "" {
		t.Errorf("Label = %q, expected empty", groups[1].Label)
	}
}

func TestAccumulate_RowsGoToLatestBoundary(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Mon"),
		Content("(09:00-10:00)", ""),
		Boundary("g2", "Tue"),
		Content("(11:00-12:00)", ""),
		Content("(13:00-14:00)", ""),
	})

	if len(groups[0].Intervals) != 1 || len(groups[1].Intervals) != 2 {
		t.Errorf("interval counts = %d, %d, expected 1, 2", len(groups[0].Intervals), len(groups[1].Intervals))
	}
}

func TestAccumulate_StableSortKeepsTies(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Mon"),
		Content("(09:00-10:00)", "first"),
		Content("(09:00-09:30)", "second"),
	})

	ivs := groups[0].Intervals
	if ivs[0].Activity != "first" || ivs[1].Activity != "second" {
		t.Errorf("tie order = %q, %q, expected first, second", ivs[0].Activity, ivs[1].Activity)
	}
}

func TestAccumulate_SortInvariance(t *testing.T) {
	contents := []RawRow{
		Content("(13:00-17:00)", "dev"),
		Content("(09:00-12:00)", "dev"),
		Content("(11:30-12:30)", "meeting"),
		Content("(23:00-00:30)", "ops"),
	}
	permutations := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	var reference []Group
	for _, perm := range permutations {
		rows := []RawRow{Boundary("g1", "Mon")}
		for _, idx := range perm {
			rows = append(rows, contents[idx])
		}
		groups := accumulate(rows, WithActivityColors(true))
		if reference == nil {
			reference = groups
			continue
		}
		if !reflect.DeepEqual(groups, reference) {
			t.Errorf("permutation %v produced different groups", perm)
		}
	}
}

func TestAccumulate_Idempotent(t *testing.T) {
	rows := []RawRow{
		Boundary("g1", "Mon"),
		Content("(09:00-12:00)(13:00-17:00)", "dev"),
		Boundary("g2", "Tue"),
		Content("(09:00-13:00)(12:00-15:00)", "ops"),
	}

	first := accumulate(rows, WithActivityColors(true))
	second := accumulate(rows, WithActivityColors(true))
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same rows produced different groups")
	}
}

func TestAccumulate_ActivityColors(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Mon"),
		Content("(09:00-10:00)", "review"),
		Boundary("g2", "Tue"),
		Content("(09:00-10:00)", "dev"),
		Content("(11:00-12:00)", ""),
	}, WithActivityColors(true))

	review := groups[0].Intervals[0].Color
	dev := groups[1].Intervals[0].Color
	none := groups[1].Intervals[1].Color

	if review == nil || dev == nil || none == nil {
		t.Fatal("every interval should be colored")
	}
	// labels are sorted across all groups: dev=0, review=180
	if dev.Hue != 0 || review.Hue != 180 {
		t.Errorf("hues = dev %v, review %v, expected 0 and 180", dev.Hue, review.Hue)
	}
	if *none != palette.Fallback {
		t.Errorf("interval without activity = %+v, expected Fallback", *none)
	}
}

func TestAccumulate_ColorsDisabled(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Mon"),
		Content("(09:00-10:00)", "dev"),
	})

	if groups[0].Intervals[0].Color != nil {
		t.Error("Color should be nil when activity colors are disabled")
	}
}

func TestAccumulate_MidnightGroup(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Night shift"),
		Content("(23:30 - 00:15)", ""),
		Content("(22:00 - 23:00)", ""),
	})

	g := groups[0]
	if g.Total != time.Hour+45*time.Minute {
		t.Errorf("Total = %v, expected 1h45m", g.Total)
	}
	if g.Gap != 30*time.Minute {
		t.Errorf("Gap = %v, expected 30m", g.Gap)
	}
	if g.Stop.Day() != 16 {
		t.Errorf("Stop = %v, expected next day", g.Stop)
	}
}

func TestRowKind_String(t *testing.T) {
	if RowBoundary.String() != "boundary" || RowContent.String() != "content" {
		t.Errorf("RowKind strings = %q, %q", RowBoundary.String(), RowContent.String())
	}
}

func TestAllIntervalsAndMetrics(t *testing.T) {
	groups := accumulate([]RawRow{
		Boundary("g1", "Mon"),
		Content("(09:00-10:00)", ""),
		Boundary("g2", "Tue"),
		Content("(09:00-10:00)(11:00-12:00)", ""),
	})

	if got := len(AllIntervals(groups)); got != 3 {
		t.Errorf("len(AllIntervals) = %d, expected 3", got)
	}
	m := AllMetrics(groups)
	if len(m) != 2 || m[1].Total != 2*time.Hour {
		t.Errorf("AllMetrics = %+v", m)
	}
}
