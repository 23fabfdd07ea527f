// Package group assembles raw rows into day groups and freezes their metrics.
package group

import (
	"github.com/xolan/worklog/internal/interval"
	"github.com/xolan/worklog/internal/stats"
)

// RowKind classifies a raw row
type RowKind int

const (
	// RowContent carries interval text and an optional activity
	RowContent RowKind = iota
	// RowBoundary starts a new group
	RowBoundary
)

// String returns the row kind as used in JSONL feeds
func (k RowKind) String() string {
	if k == RowBoundary {
		return "boundary"
	}
	return "content"
}

// RawRow is one row supplied by a feed.
// Boundary rows use ID and Label; content rows use IntervalText and Activity.
// An empty string means the field is absent.
type RawRow struct {
	Kind         RowKind
	ID           string
	Label        string
	IntervalText string
	Activity     string
}

// Boundary creates a boundary row
func Boundary(id, label string) RawRow {
	return RawRow{Kind: RowBoundary, ID: id, Label: label}
}

// Content creates a content row
func Content(intervalText, activity string) RawRow {
	return RawRow{Kind: RowContent, IntervalText: intervalText, Activity: activity}
}

// Group is a day (or period) and the intervals logged under it.
// Intervals are sorted by start and the embedded metrics are computed once
// accumulation finishes; neither changes afterwards.
type Group struct {
	ID        string
	Label     string
	Intervals []interval.Interval
	stats.Metrics
}

// IsEmpty reports whether the group has no intervals
func (g Group) IsEmpty() bool {
	return len(g.Intervals) == 0
}

// Activities returns the activity of every interval in order, including empty ones
func (g Group) Activities() []string {
	out := make([]string, len(g.Intervals))
	for i, iv := range g.Intervals {
		out[i] = iv.Activity
	}
	return out
}

// AllIntervals flattens the intervals of every group in order
func AllIntervals(groups []Group) []interval.Interval {
	var out []interval.Interval
	for _, g := range groups {
		out = append(out, g.Intervals...)
	}
	return out
}

// AllMetrics returns the metrics of every group in order
func AllMetrics(groups []Group) []stats.Metrics {
	out := make([]stats.Metrics, len(groups))
	for i, g := range groups {
		out[i] = g.Metrics
	}
	return out
}
