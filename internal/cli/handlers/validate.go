package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/service"
)

// Validate checks a log and reports how much of it the pipeline can use.
// Exits with status 1 when the log is not healthy.
func Validate(deps *cli.Deps, sourceArg string) {
	svc := deps.Services.Analysis

	source, err := svc.ResolveSource(sourceArg)
	if err != nil {
		if errors.Is(err, service.ErrNoLog) {
			fail(deps, "No log file given", nil, "Pass a file or run: worklog config set default_log <path>")
		} else {
			fail(deps, "Failed to resolve log path", err, "")
		}
		return
	}

	var health feed.Health
	if source == service.StdinSource {
		result, readErr := feed.Read(deps.Stdin, svc.Format())
		health, err = feed.Inspect(result), readErr
	} else {
		health, err = feed.Validate(source, svc.Format())
	}
	if err != nil {
		fail(deps, "Failed to read log", err, fmt.Sprintf("Check that the file exists and is readable: %s", source))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Log: %s\n", source)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Format:          %s\n", health.Format)
	_, _ = fmt.Fprintf(deps.Stdout, "Lines:           %d\n", health.TotalLines)
	_, _ = fmt.Fprintf(deps.Stdout, "Boundaries:      %d\n", health.Boundaries)
	_, _ = fmt.Fprintf(deps.Stdout, "Content rows:    %d\n", health.ContentRows)
	_, _ = fmt.Fprintf(deps.Stdout, "Fragments:       %d\n", health.Fragments)
	if health.EmptyRows > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Empty rows:      %d (no interval text)\n", health.EmptyRows)
	}

	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Healthy")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	if health.OrphanRows > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Orphan rows:     %d (before the first boundary, ignored)\n", health.OrphanRows)
	}
	if health.UnmatchedRows > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Unmatched rows:  %d (no (HH:MM - HH:MM) fragment)\n", health.UnmatchedRows)
	}
	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Unreadable:      %d %s\n", len(health.Warnings), cli.Pluralize("line", len(health.Warnings)))
		for _, w := range health.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatCorruptionWarning(w))
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout, "Status: Issues found")
	deps.Exit(1)
}
