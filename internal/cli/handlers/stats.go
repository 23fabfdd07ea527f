package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/service"
)

// ShowStats prints summary statistics and the activity breakdown
func ShowStats(deps *cli.Deps, a *service.Analysis) {
	result := deps.Services.Stats.ForAnalysis(a)
	s := result.Summary

	_, _ = fmt.Fprintf(deps.Stdout, "Statistics for %s:\n", result.Day.Format("Mon, Jan 2, 2006"))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:      %s\n", cli.FormatDuration(s.Total))
	_, _ = fmt.Fprintf(deps.Stdout, "Total gap:       %s\n", cli.FormatDuration(s.Gap))
	_, _ = fmt.Fprintf(deps.Stdout, "Total overlap:   %s\n", cli.FormatDuration(s.Overlap))
	_, _ = fmt.Fprintf(deps.Stdout, "Groups:          %d (%d with work)\n", s.Groups, s.NonEmptyGroups)
	_, _ = fmt.Fprintf(deps.Stdout, "Intervals:       %d %s\n", s.Intervals, cli.Pluralize("interval", s.Intervals))
	_, _ = fmt.Fprintf(deps.Stdout, "Average/group:   %s\n", cli.FormatDuration(s.AveragePerGroup))
	_, _ = fmt.Fprintf(deps.Stdout, "Flagged groups:  %d\n", result.FlaggedGroups)
	if result.Busiest != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Busiest group:   %s (%s)\n", result.Busiest.Label, cli.FormatDuration(result.Busiest.Total))
	}

	if len(result.Activities) == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "By Activity:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, act := range result.Activities {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-24s  %10s  %5.1f%%  (%d %s)\n",
			cli.FormatActivity(act.Activity),
			cli.FormatDuration(act.Total),
			act.Percent,
			act.IntervalCount,
			cli.Pluralize("interval", act.IntervalCount))
	}
}
