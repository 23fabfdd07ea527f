package feed

import (
	"strings"

	"github.com/xolan/worklog/internal/group"
	"github.com/xolan/worklog/internal/interval"
)

// Health summarizes how much of a log the pipeline can use.
type Health struct {
	Format        Format         // Format used to read the log
	TotalLines    int            // Lines in the file, blank ones included
	Boundaries    int            // Boundary rows
	ContentRows   int            // Content rows, orphans included
	OrphanRows    int            // Content rows before the first boundary
	UnmatchedRows int            // Content rows whose text holds no interval fragment
	EmptyRows     int            // Content rows with no interval text at all, not an issue
	Fragments     int            // Interval fragments across all attached rows
	Warnings      []ParseWarning // Lines that could not be read as rows
}

// Healthy reports whether every line was usable
func (h Health) Healthy() bool {
	return len(h.Warnings) == 0 && h.OrphanRows == 0 && h.UnmatchedRows == 0
}

// Inspect computes Health from an already read result
func Inspect(result ReadResult) Health {
	health := Health{
		Format:     result.Format,
		TotalLines: result.Lines,
		Warnings:   result.Warnings,
	}
	if health.Warnings == nil {
		health.Warnings = []ParseWarning{}
	}

	for _, row := range result.Rows {
		if row.Kind == group.RowBoundary {
			health.Boundaries++
			continue
		}
		health.ContentRows++
		if health.Boundaries == 0 {
			health.OrphanRows++
			continue
		}
		if strings.TrimSpace(row.IntervalText) == "" {
			health.EmptyRows++
			continue
		}
		n := interval.Count(row.IntervalText)
		if n == 0 {
			health.UnmatchedRows++
			continue
		}
		health.Fragments += n
	}

	return health
}

// Validate reads the log at path and returns its Health
func Validate(path string, format Format) (Health, error) {
	result, err := ReadFile(path, format)
	if err != nil {
		return Health{Warnings: []ParseWarning{}}, err
	}
	return Inspect(result), nil
}
