package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/worklog/internal/interval"
	"github.com/xolan/worklog/internal/palette"
	"github.com/xolan/worklog/internal/timeline"
)

// Bar cell glyphs
const (
	CellEmpty   = "·"
	CellFilled  = "█"
	CellOverlap = "▓"
)

// overlapColor marks cells covered by more than one interval
var overlapColor = lipgloss.Color("#ff5555")

// BarCells lays positions out on width cells and returns, per cell, how many
// intervals cover it and the index of the last one that does (-1 when none).
// Every interval with a non-zero width covers at least one cell.
func BarCells(positions []timeline.Position, width int) (counts, owners []int) {
	if width <= 0 {
		return nil, nil
	}
	counts = make([]int, width)
	owners = make([]int, width)
	for i := range owners {
		owners[i] = -1
	}

	for j, p := range positions {
		from := int(math.Round(p.Offset * float64(width)))
		to := int(math.Round(p.End() * float64(width)))
		if to <= from && p.Width > 0 {
			to = from + 1
		}
		if from >= width {
			from = width - 1
		}
		if to > width {
			to = width
		}
		for c := from; c < to; c++ {
			counts[c]++
			owners[c] = j
		}
	}
	return counts, owners
}

// RenderBar draws one group's intervals as a fixed-width bar.
// Filled cells take their interval's color when it has one.
func RenderBar(positions []timeline.Position, intervals []interval.Interval, width int) string {
	counts, owners := BarCells(positions, width)

	var b strings.Builder
	for c := range counts {
		switch {
		case counts[c] == 0:
			b.WriteString(CellEmpty)
		case counts[c] > 1:
			b.WriteString(lipgloss.NewStyle().Foreground(overlapColor).Render(CellOverlap))
		default:
			b.WriteString(cellStyle(intervals, owners[c]).Render(CellFilled))
		}
	}
	return b.String()
}

func cellStyle(intervals []interval.Interval, owner int) lipgloss.Style {
	style := lipgloss.NewStyle()
	if owner < 0 || owner >= len(intervals) {
		return style
	}
	color := palette.Fallback
	if intervals[owner].Color != nil {
		color = *intervals[owner].Color
	}
	return style.Foreground(lipgloss.Color(color.Hex()))
}
