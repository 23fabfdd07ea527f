package group

import (
	"io"
	"log"
	"sort"
	"time"

	"github.com/xolan/worklog/internal/interval"
	"github.com/xolan/worklog/internal/palette"
	"github.com/xolan/worklog/internal/stats"
)

// Accumulator turns an ordered row sequence into groups.
type Accumulator struct {
	day            time.Time
	activityColors bool
	logger         *log.Logger
}

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithDay sets the date interval fragments are anchored to.
func WithDay(day time.Time) Option {
	return func(a *Accumulator) {
		a.day = day
	}
}

// WithActivityColors enables per-activity color annotation.
func WithActivityColors(enabled bool) Option {
	return func(a *Accumulator) {
		a.activityColors = enabled
	}
}

// WithLogger sets the logger used for dropped rows.
func WithLogger(logger *log.Logger) Option {
	return func(a *Accumulator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAccumulator creates an Accumulator anchored to the current date unless WithDay is given.
func NewAccumulator(opts ...Option) *Accumulator {
	a := &Accumulator{
		day:    time.Now(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Accumulate processes rows in order and returns the finished groups.
//
// A boundary row opens a new group; content rows are parsed into the most recent
// group. Content rows seen before the first boundary have nowhere to go and are
// dropped. Once every row is consumed each group's intervals are stably sorted by
// start and its metrics computed.
func (a *Accumulator) Accumulate(rows []RawRow) []Group {
	groups := make([]Group, 0)
	current := -1

	for i, row := range rows {
		switch row.Kind {
		case RowBoundary:
			groups = append(groups, Group{ID: row.ID, Label: row.Label})
			current = len(groups) - 1
		default:
			if current < 0 {
				a.logger.Printf("row %d: content before first boundary dropped", i+1)
				continue
			}
			if row.IntervalText == "" {
				continue
			}
			parsed := interval.ParseAt(row.IntervalText, row.Activity, a.day)
			if len(parsed) == 0 {
				a.logger.Printf("row %d: no interval in %q", i+1, row.IntervalText)
				continue
			}
			groups[current].Intervals = append(groups[current].Intervals, parsed...)
		}
	}

	var colors map[string]palette.Color
	if a.activityColors {
		var labels []string
		for _, g := range groups {
			labels = append(labels, g.Activities()...)
		}
		colors = palette.Assign(labels)
	}

	for i := range groups {
		g := &groups[i]
		sort.SliceStable(g.Intervals, func(x, y int) bool {
			return g.Intervals[x].Start.Before(g.Intervals[y].Start)
		})
		if colors != nil {
			for j := range g.Intervals {
				c := palette.Lookup(colors, g.Intervals[j].Activity)
				g.Intervals[j].Color = &c
			}
		}
		g.Metrics = stats.Compute(g.Intervals)
	}

	return groups
}

// Accumulate is a convenience wrapper around NewAccumulator(opts...).Accumulate(rows).
func Accumulate(rows []RawRow, opts ...Option) []Group {
	return NewAccumulator(opts...).Accumulate(rows)
}
