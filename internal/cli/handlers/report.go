package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/group"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/stats"
)

// ShowReport prints every group with its intervals and metrics
func ShowReport(deps *cli.Deps, a *service.Analysis) {
	if len(a.Groups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No groups found in log")
		return
	}

	for i, g := range a.Groups {
		if i > 0 {
			_, _ = fmt.Fprintln(deps.Stdout)
		}
		showGroup(deps, g, evaluationAt(a, i))
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s, %d %s, %s logged\n",
		a.Summary.Groups, cli.Pluralize("group", a.Summary.Groups),
		a.Summary.Intervals, cli.Pluralize("interval", a.Summary.Intervals),
		cli.FormatDuration(a.Summary.Total))
	if flagged := a.FlaggedGroups(); flagged > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "%d %s flagged\n", flagged, cli.Pluralize("group", flagged))
	}
}

func evaluationAt(a *service.Analysis, i int) stats.Evaluation {
	if i < len(a.Evaluations) {
		return a.Evaluations[i]
	}
	return stats.Evaluation{}
}

func showGroup(deps *cli.Deps, g group.Group, eval stats.Evaluation) {
	header := g.Label
	if eval.Any() {
		header += " [!]"
	}
	_, _ = fmt.Fprintln(deps.Stdout, header)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	if g.IsEmpty() {
		_, _ = fmt.Fprintln(deps.Stdout, "  (no intervals)")
		return
	}

	for _, iv := range g.Intervals {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-17s %8s  %s\n",
			cli.FormatInterval(iv), cli.FormatDuration(iv.Duration()), cli.FormatActivity(iv.Activity))
	}

	_, _ = fmt.Fprintf(deps.Stdout, "  Total:   %s\n", cli.FormatFlag(eval.Total))
	_, _ = fmt.Fprintf(deps.Stdout, "  Gap:     %s\n", cli.FormatFlag(eval.Gap))
	_, _ = fmt.Fprintf(deps.Stdout, "  Overlap: %s\n", cli.FormatFlag(eval.Overlap))
}
