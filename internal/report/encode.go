package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an export format other than json, csv or yaml.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported export formats
var Formats = []Format{FormatJSON, FormatCSV, FormatYAML}

// ParseFormat converts a name to a Format. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected json, csv or yaml)", ErrUnknownFormat, name)
	}
}

// Encode writes doc to w in the given format
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		return EncodeJSON(w, doc)
	case FormatCSV:
		return EncodeCSV(w, doc)
	case FormatYAML:
		return EncodeYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// EncodeJSON writes doc as indented JSON
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// EncodeYAML writes doc as YAML
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// csvHeader is the column order of EncodeCSV
var csvHeader = []string{
	"group_id", "group_label", "start", "stop", "activity", "duration_minutes",
	"offset_percent", "width_percent", "color",
	"group_total_minutes", "group_gap_minutes", "group_overlap_minutes",
	"total_flagged", "gap_flagged", "overlap_flagged",
}

// EncodeCSV writes one row per interval. Empty groups get a single row with no interval columns.
func EncodeCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, g := range doc.Groups {
		groupCols := []string{
			formatMinutes(g.Total), formatMinutes(g.Gap), formatMinutes(g.Overlap),
			strconv.FormatBool(g.Flags.Total), strconv.FormatBool(g.Flags.Gap), strconv.FormatBool(g.Flags.Overlap),
		}

		if len(g.Intervals) == 0 {
			record := append([]string{g.ID, g.Label, "", "", "", "", "", "", ""}, groupCols...)
			if err := cw.Write(record); err != nil {
				return err
			}
			continue
		}

		for _, iv := range g.Intervals {
			record := []string{
				g.ID,
				g.Label,
				iv.Start.Format(time.RFC3339),
				iv.Stop.Format(time.RFC3339),
				iv.Activity,
				formatMinutes(iv.Duration),
				formatPercent(iv.OffsetPercent),
				formatPercent(iv.WidthPercent),
				iv.Color,
			}
			if err := cw.Write(append(record, groupCols...)); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatMinutes(m Minutes) string {
	return strconv.FormatFloat(float64(m), 'f', -1, 64)
}

func formatPercent(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
