package handlers

import (
	"errors"
	"fmt"
	"os"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/report"
	"github.com/xolan/worklog/internal/service"
)

// Convert rewrites a log as JSONL rows, to stdout or to output when it is set.
// Unreadable lines are reported and left out. Existing files at output are
// rotated into .bak.N unless noBackup is set.
func Convert(deps *cli.Deps, sourceArg, output string, noBackup bool) {
	svc := deps.Services.Analysis

	source, err := svc.ResolveSource(sourceArg)
	if err != nil {
		if errors.Is(err, service.ErrNoLog) {
			fail(deps, "No log file given", nil, "Pass a file, use - for stdin, or run: worklog config set default_log <path>")
		} else {
			fail(deps, "Failed to resolve log path", err, "")
		}
		return
	}

	var result feed.ReadResult
	if source == service.StdinSource {
		result, err = feed.Read(deps.Stdin, svc.Format())
	} else {
		result, err = feed.ReadFile(source, svc.Format())
	}
	if err != nil {
		fail(deps, "Failed to read log", err, fmt.Sprintf("Check that the file exists and is readable: %s", source))
		return
	}
	PrintWarnings(deps, result.Warnings)

	data, err := feed.EncodeJSONL(result.Rows)
	if err != nil {
		fail(deps, "Failed to encode rows", err, "")
		return
	}

	if output == "" {
		_, _ = deps.Stdout.Write(data)
		return
	}

	_, statErr := os.Stat(output)
	rotated := !noBackup && statErr == nil
	if err := report.WriteFile(output, data, !noBackup); err != nil {
		fail(deps, "Failed to write rows", err, fmt.Sprintf("Check that the directory exists and is writable: %s", output))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Converted %d %s from %s to %s\n", len(result.Rows), cli.Pluralize("row", len(result.Rows)), result.Format, output)
	if rotated {
		_, _ = fmt.Fprintf(deps.Stdout, "Previous file kept at %s\n", report.BackupPath(output, 1))
	}
}
