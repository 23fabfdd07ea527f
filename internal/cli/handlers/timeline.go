package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/palette"
	"github.com/xolan/worklog/internal/service"
)

// ShowTimeline draws every group on the shared scale, one bar per group
func ShowTimeline(deps *cli.Deps, a *service.Analysis, width int) {
	if width <= 0 {
		width = deps.Config.TimelineWidth
	}
	if !a.HasTimeline() {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing to draw: no intervals found")
		return
	}

	labelWidth := 0
	for _, g := range a.Groups {
		if n := len([]rune(g.Label)); n > labelWidth {
			labelWidth = n
		}
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Timeline (scale %s)\n", cli.FormatDuration(a.Scale))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", labelWidth+width+12))

	for i, g := range a.Groups {
		bar := cli.RenderBar(a.Positions[i], g.Intervals, width)
		marker := " "
		if evaluationAt(a, i).Any() {
			marker = "!"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%-*s %s|%s| %s\n", labelWidth, g.Label, marker, bar, cli.FormatDuration(g.Total))
	}

	if len(a.Breakdown) == 0 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "Legend:")
	for _, b := range a.Breakdown {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s %s\n", legendSwatch(a, b.Activity), cli.FormatActivity(b.Activity))
	}
}

// legendSwatch returns the hex color used for activity in a, or the fallback
func legendSwatch(a *service.Analysis, activity string) string {
	for _, g := range a.Groups {
		for _, iv := range g.Intervals {
			if iv.Activity == activity && iv.Color != nil {
				return iv.Color.Hex()
			}
		}
	}
	return palette.Fallback.Hex()
}
