// Package handlers implements the output of each worklog command on top of the service layer.
package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/service"
)

// fail prints a user-facing error and exits with status 1
func fail(deps *cli.Deps, msg string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// Analyze resolves the log and day and runs the pipeline.
// On failure it reports the error and returns false.
func Analyze(deps *cli.Deps, sourceArg, dateFlag string) (*service.Analysis, bool) {
	svc := deps.Services.Analysis

	day, err := svc.ResolveDay(dateFlag)
	if err != nil {
		fail(deps, fmt.Sprintf("Invalid date '%s'", dateFlag), err, "Use YYYY-MM-DD, DD/MM/YYYY, today or yesterday")
		return nil, false
	}

	source, err := svc.ResolveSource(sourceArg)
	if err != nil {
		if errors.Is(err, service.ErrNoLog) {
			fail(deps, "No log file given", nil, "Pass a file, use - for stdin, or run: worklog config set default_log <path>")
		} else {
			fail(deps, "Failed to resolve log path", err, "Check that your home directory is accessible")
		}
		return nil, false
	}

	var analysis *service.Analysis
	if source == service.StdinSource {
		analysis, err = svc.AnalyzeReader(deps.Stdin, svc.Format(), day)
	} else {
		analysis, err = svc.AnalyzeFile(source, day)
	}
	if err != nil {
		fail(deps, "Failed to read log", err, fmt.Sprintf("Check that the file exists and is readable: %s", source))
		return nil, false
	}

	PrintWarnings(deps, analysis.Warnings)
	return analysis, true
}

// PrintWarnings writes skipped lines to stderr
func PrintWarnings(deps *cli.Deps, warnings []feed.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Skipped %d unreadable %s:\n", len(warnings), cli.Pluralize("line", len(warnings)))
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(w))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}
