// Package timeline scales groups onto a shared proportional axis.
package timeline

import (
	"errors"
	"time"

	"github.com/xolan/worklog/internal/group"
)

var (
	// ErrEmptyInput is returned by MaxScale when no group has any measurable span.
	ErrEmptyInput = errors.New("no intervals to scale")
	// ErrNonPositiveScale is returned by Project when scale is zero or negative.
	ErrNonPositiveScale = errors.New("timeline scale must be positive")
)

// Position is an interval's place on the axis as fractions of the scale.
// Offset is measured from the owning group's first start.
type Position struct {
	Offset float64 `json:"offset" yaml:"offset"`
	Width  float64 `json:"width" yaml:"width"`
}

// OffsetPercent returns Offset as a percentage.
func (p Position) OffsetPercent() float64 {
	return p.Offset * 100
}

// WidthPercent returns Width as a percentage.
func (p Position) WidthPercent() float64 {
	return p.Width * 100
}

// End returns Offset + Width.
func (p Position) End() float64 {
	return p.Offset + p.Width
}

// MaxScale returns the largest Total + Gap across groups.
//
// Overlap is not subtracted, so an overlapping group's wall-clock extent can be
// shorter than its span. Every projected end stays within [0, 1]. There is no
// usable scale when no group has intervals or every interval has zero length;
// both cases return ErrEmptyInput.
func MaxScale(groups []group.Group) (time.Duration, error) {
	var scale time.Duration
	for _, g := range groups {
		if g.IsEmpty() {
			continue
		}
		if span := g.Span(); span > scale {
			scale = span
		}
	}
	if scale <= 0 {
		return 0, ErrEmptyInput
	}
	return scale, nil
}

// Project places every interval of g on the axis, in the same order as g.Intervals.
func Project(g group.Group, scale time.Duration) ([]Position, error) {
	if scale <= 0 {
		return nil, ErrNonPositiveScale
	}

	positions := make([]Position, len(g.Intervals))
	if g.IsEmpty() {
		return positions, nil
	}

	origin := *g.Start
	for i, iv := range g.Intervals {
		positions[i] = Position{
			Offset: float64(iv.Start.Sub(origin)) / float64(scale),
			Width:  float64(iv.Duration()) / float64(scale),
		}
	}
	return positions, nil
}

// ProjectAll projects every group against the shared MaxScale.
// The returned slice is aligned with groups.
func ProjectAll(groups []group.Group) ([][]Position, time.Duration, error) {
	scale, err := MaxScale(groups)
	if err != nil {
		return nil, 0, err
	}

	all := make([][]Position, len(groups))
	for i, g := range groups {
		positions, err := Project(g, scale)
		if err != nil {
			return nil, 0, err
		}
		all[i] = positions
	}
	return all, scale, nil
}
