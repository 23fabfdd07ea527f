package feed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/group"
)

// Record is the JSONL encoding of a row
type Record struct {
	Kind      string `json:"kind"`
	ID        string `json:"id,omitempty"`
	Label     string `json:"label,omitempty"`
	Intervals string `json:"intervals,omitempty"`
	Activity  string `json:"activity,omitempty"`
}

// RecordFor converts a row to its JSONL record
func RecordFor(row group.RawRow) Record {
	if row.Kind == group.RowBoundary {
		return Record{Kind: row.Kind.String(), ID: row.ID, Label: row.Label}
	}
	return Record{Kind: row.Kind.String(), Intervals: row.IntervalText, Activity: row.Activity}
}

// Row converts a record back to a row
func (r Record) Row() (group.RawRow, error) {
	switch strings.ToLower(r.Kind) {
	case "boundary":
		return group.Boundary(r.ID, r.Label), nil
	case "content":
		return group.Content(r.Intervals, r.Activity), nil
	default:
		return group.RawRow{}, fmt.Errorf("unknown row kind %q", r.Kind)
	}
}

func parseJSONLLine(lineNumber int, line string, result *ReadResult) {
	if strings.TrimSpace(line) == "" {
		return
	}

	var rec Record
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		result.Warnings = append(result.Warnings, ParseWarning{
			LineNumber: lineNumber,
			Content:    line,
			Error:      err.Error(),
		})
		return
	}

	row, err := rec.Row()
	if err != nil {
		result.Warnings = append(result.Warnings, ParseWarning{
			LineNumber: lineNumber,
			Content:    line,
			Error:      err.Error(),
		})
		return
	}
	result.Rows = append(result.Rows, row)
}

// EncodeJSONL writes rows as JSON Lines
func EncodeJSONL(rows []group.RawRow) ([]byte, error) {
	var sb strings.Builder
	for _, row := range rows {
		line, err := json.Marshal(RecordFor(row))
		if err != nil {
			return nil, err
		}
		sb.Write(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
