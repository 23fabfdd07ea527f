// Package service provides the business logic layer for the worklog application.
// It wraps the feed, group, stats and timeline packages behind one pipeline,
// providing a clean API for both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/group"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/timeline"
)

// Analysis is the result of one run of the pipeline over a log
type Analysis struct {
	Source      string // File path, "-" for stdin, or "" for in-memory rows
	Format      feed.Format
	Day         time.Time // Date that interval fragments were anchored to
	Groups      []group.Group
	Scale       time.Duration         // Shared timeline scale; zero when there is nothing to draw
	Positions   [][]timeline.Position // Aligned with Groups; nil when Scale is zero
	Thresholds  stats.Thresholds
	Evaluations []stats.Evaluation // Aligned with Groups
	Breakdown   []stats.ActivityBreakdown
	Summary     stats.Summary
	Warnings    []feed.ParseWarning
}

// HasTimeline reports whether a shared scale could be computed
func (a *Analysis) HasTimeline() bool {
	return a.Scale > 0
}

// FlaggedGroups returns how many groups have at least one flagged metric
func (a *Analysis) FlaggedGroups() int {
	n := 0
	for _, e := range a.Evaluations {
		if e.Any() {
			n++
		}
	}
	return n
}

// ActivityShare is an activity's total with its share of all logged time
type ActivityShare struct {
	stats.ActivityBreakdown
	Percent float64
}

// StatsResult contains aggregate statistics for a log
type StatsResult struct {
	Day           time.Time
	Summary       stats.Summary
	Activities    []ActivityShare
	FlaggedGroups int
	Busiest       *group.Group // Group with the largest total; nil when every group is empty
	Warnings      []feed.ParseWarning
}
