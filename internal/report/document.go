// Package report shapes an analysis into export documents and writes them.
package report

import (
	"time"

	"github.com/xolan/worklog/internal/group"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/timeline"
)

// Document is the exported form of an analysis
type Document struct {
	Day        string        `json:"day" yaml:"day"`
	Source     string        `json:"source,omitempty" yaml:"source,omitempty"`
	Scale      Minutes       `json:"scale_minutes" yaml:"scale_minutes"`
	Thresholds ThresholdsDoc `json:"thresholds" yaml:"thresholds"`
	Summary    SummaryDoc    `json:"summary" yaml:"summary"`
	Groups     []GroupDoc    `json:"groups" yaml:"groups"`
	Activities []ActivityDoc `json:"activities" yaml:"activities"`
	Warnings   []WarningDoc  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Minutes is a duration exported as a number of minutes
type Minutes float64

// ToMinutes converts d to Minutes
func ToMinutes(d time.Duration) Minutes {
	return Minutes(d.Minutes())
}

// ThresholdsDoc holds the limits used to flag groups
type ThresholdsDoc struct {
	Workday Minutes `json:"workday_minutes" yaml:"workday_minutes"`
	Gap     Minutes `json:"gap_minutes" yaml:"gap_minutes"`
	Overlap Minutes `json:"overlap_minutes" yaml:"overlap_minutes"`
}

// SummaryDoc holds the cross-group totals
type SummaryDoc struct {
	Groups          int     `json:"groups" yaml:"groups"`
	NonEmptyGroups  int     `json:"non_empty_groups" yaml:"non_empty_groups"`
	FlaggedGroups   int     `json:"flagged_groups" yaml:"flagged_groups"`
	Intervals       int     `json:"intervals" yaml:"intervals"`
	Total           Minutes `json:"total_minutes" yaml:"total_minutes"`
	Gap             Minutes `json:"gap_minutes" yaml:"gap_minutes"`
	Overlap         Minutes `json:"overlap_minutes" yaml:"overlap_minutes"`
	AveragePerGroup Minutes `json:"average_minutes" yaml:"average_minutes"`
}

// GroupDoc is one exported group
type GroupDoc struct {
	ID        string        `json:"id" yaml:"id"`
	Label     string        `json:"label" yaml:"label"`
	Start     *time.Time    `json:"start,omitempty" yaml:"start,omitempty"`
	Stop      *time.Time    `json:"stop,omitempty" yaml:"stop,omitempty"`
	Total     Minutes       `json:"total_minutes" yaml:"total_minutes"`
	Gap       Minutes       `json:"gap_minutes" yaml:"gap_minutes"`
	Overlap   Minutes       `json:"overlap_minutes" yaml:"overlap_minutes"`
	Flags     FlagsDoc      `json:"flags" yaml:"flags"`
	Intervals []IntervalDoc `json:"intervals" yaml:"intervals"`
}

// FlagsDoc marks which metrics crossed their threshold
type FlagsDoc struct {
	Total   bool `json:"total" yaml:"total"`
	Gap     bool `json:"gap" yaml:"gap"`
	Overlap bool `json:"overlap" yaml:"overlap"`
}

// IntervalDoc is one exported interval with its timeline placement
type IntervalDoc struct {
	Start           time.Time `json:"start" yaml:"start"`
	Stop            time.Time `json:"stop" yaml:"stop"`
	Activity        string    `json:"activity,omitempty" yaml:"activity,omitempty"`
	Duration        Minutes   `json:"duration_minutes" yaml:"duration_minutes"`
	CrossesMidnight bool      `json:"crosses_midnight,omitempty" yaml:"crosses_midnight,omitempty"`
	OffsetPercent   *float64  `json:"offset_percent,omitempty" yaml:"offset_percent,omitempty"`
	WidthPercent    *float64  `json:"width_percent,omitempty" yaml:"width_percent,omitempty"`
	Color           string    `json:"color,omitempty" yaml:"color,omitempty"`
	Hex             string    `json:"hex,omitempty" yaml:"hex,omitempty"`
}

// ActivityDoc is one row of the activity breakdown
type ActivityDoc struct {
	Activity  string  `json:"activity" yaml:"activity"`
	Total     Minutes `json:"total_minutes" yaml:"total_minutes"`
	Intervals int     `json:"intervals" yaml:"intervals"`
	Percent   float64 `json:"percent" yaml:"percent"`
}

// WarningDoc is a skipped input line
type WarningDoc struct {
	Line    int    `json:"line" yaml:"line"`
	Content string `json:"content" yaml:"content"`
	Error   string `json:"error" yaml:"error"`
}

// Build converts an analysis into a Document
func Build(a *service.Analysis) Document {
	doc := Document{
		Day:    a.Day.Format("2006-01-02"),
		Source: a.Source,
		Scale:  ToMinutes(a.Scale),
		Thresholds: ThresholdsDoc{
			Workday: ToMinutes(a.Thresholds.Workday),
			Gap:     ToMinutes(a.Thresholds.Gap),
			Overlap: ToMinutes(a.Thresholds.Overlap),
		},
		Summary: SummaryDoc{
			Groups:          a.Summary.Groups,
			NonEmptyGroups:  a.Summary.NonEmptyGroups,
			FlaggedGroups:   a.FlaggedGroups(),
			Intervals:       a.Summary.Intervals,
			Total:           ToMinutes(a.Summary.Total),
			Gap:             ToMinutes(a.Summary.Gap),
			Overlap:         ToMinutes(a.Summary.Overlap),
			AveragePerGroup: ToMinutes(a.Summary.AveragePerGroup),
		},
		Groups:     make([]GroupDoc, len(a.Groups)),
		Activities: make([]ActivityDoc, len(a.Breakdown)),
	}

	for i, g := range a.Groups {
		var positions []timeline.Position
		if a.HasTimeline() {
			positions = a.Positions[i]
		}
		var eval stats.Evaluation
		if i < len(a.Evaluations) {
			eval = a.Evaluations[i]
		}
		doc.Groups[i] = buildGroup(g, eval, positions)
	}

	for i, b := range a.Breakdown {
		doc.Activities[i] = ActivityDoc{
			Activity:  b.Activity,
			Total:     ToMinutes(b.Total),
			Intervals: b.IntervalCount,
			Percent:   stats.Share(b.Total, a.Summary.Total),
		}
	}

	for _, w := range a.Warnings {
		doc.Warnings = append(doc.Warnings, WarningDoc{Line: w.LineNumber, Content: w.Content, Error: w.Error})
	}

	return doc
}

func buildGroup(g group.Group, eval stats.Evaluation, positions []timeline.Position) GroupDoc {
	gd := GroupDoc{
		ID:      g.ID,
		Label:   g.Label,
		Start:   g.Start,
		Stop:    g.Stop,
		Total:   ToMinutes(g.Total),
		Gap:     ToMinutes(g.Gap),
		Overlap: ToMinutes(g.Overlap),
		Flags: FlagsDoc{
			Total:   eval.Total.Flagged,
			Gap:     eval.Gap.Flagged,
			Overlap: eval.Overlap.Flagged,
		},
		Intervals: make([]IntervalDoc, len(g.Intervals)),
	}

	for j, iv := range g.Intervals {
		doc := IntervalDoc{
			Start:           iv.Start,
			Stop:            iv.Stop,
			Activity:        iv.Activity,
			Duration:        ToMinutes(iv.Duration()),
			CrossesMidnight: iv.CrossesMidnight(),
		}
		if j < len(positions) {
			offset, width := positions[j].OffsetPercent(), positions[j].WidthPercent()
			doc.OffsetPercent = &offset
			doc.WidthPercent = &width
		}
		if iv.Color != nil {
			doc.Color = iv.Color.CSS()
			doc.Hex = iv.Color.Hex()
		}
		gd.Intervals[j] = doc
	}

	return gd
}
