package handlers

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/report"
	"github.com/xolan/worklog/internal/service"
)

// Export encodes a in the given format to stdout, or to output when it is set.
// Existing files at output are rotated into .bak.N unless noBackup is set.
func Export(deps *cli.Deps, a *service.Analysis, format report.Format, output string, noBackup bool) {
	doc := report.Build(a)

	if output == "" {
		if err := report.Encode(deps.Stdout, doc, format); err != nil {
			fail(deps, fmt.Sprintf("Failed to encode %s", format), err, "")
		}
		return
	}

	var buf bytes.Buffer
	if err := report.Encode(&buf, doc, format); err != nil {
		fail(deps, fmt.Sprintf("Failed to encode %s", format), err, "")
		return
	}
	_, statErr := os.Stat(output)
	rotated := !noBackup && statErr == nil
	if err := report.WriteFile(output, buf.Bytes(), !noBackup); err != nil {
		fail(deps, "Failed to write export", err, fmt.Sprintf("Check that the directory exists and is writable: %s", output))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", len(doc.Groups), cli.Pluralize("group", len(doc.Groups)), output)
	if rotated {
		_, _ = fmt.Fprintf(deps.Stdout, "Previous export kept at %s\n", report.BackupPath(output, 1))
	}
}
