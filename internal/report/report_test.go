package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/group"
	"github.com/xolan/worklog/internal/service"
)

var testDay = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func sampleAnalysis(t *testing.T) *service.Analysis {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	svc := service.NewAnalysisService(cfg)
	return svc.AnalyzeRows([]group.RawRow{
		group.Boundary("g1", "Mon"),
		group.Content("(09:00-12:00)(13:00-17:00)", "dev"),
		group.Boundary("g2", "Tue"),
		group.Content("(09:00-13:00)", "dev"),
		group.Content("(12:00-15:00)", "review"),
		group.Boundary("g3", "Wed"),
	}, testDay)
}

func TestBuild(t *testing.T) {
	doc := Build(sampleAnalysis(t))

	if doc.Day != "2024-01-15" {
		t.Errorf("Day = %q, expected 2024-01-15", doc.Day)
	}
	if doc.Scale != 480 {
		t.Errorf("Scale = %v, expected 480", doc.Scale)
	}
	if len(doc.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(doc.Groups))
	}

	mon := doc.Groups[0]
	if mon.Total != 420 || mon.Gap != 60 || mon.Overlap != 0 {
		t.Errorf("Mon total/gap/overlap = %v/%v/%v, expected 420/60/0", mon.Total, mon.Gap, mon.Overlap)
	}
	if len(mon.Intervals) != 2 {
		t.Fatalf("expected 2 Mon intervals, got %d", len(mon.Intervals))
	}
	first := mon.Intervals[0]
	if first.OffsetPercent == nil || *first.OffsetPercent != 0 {
		t.Errorf("first offset = %v, expected 0", first.OffsetPercent)
	}
	if first.WidthPercent == nil || *first.WidthPercent != 37.5 {
		t.Errorf("first width = %v, expected 37.5", first.WidthPercent)
	}
	if first.Color == "" || !strings.HasPrefix(first.Hex, "#") {
		t.Errorf("expected colors on interval, got %q / %q", first.Color, first.Hex)
	}

	tue := doc.Groups[1]
	if tue.Overlap != 60 || !tue.Flags.Overlap {
		t.Errorf("Tue overlap = %v flagged=%v, expected 60 and flagged", tue.Overlap, tue.Flags.Overlap)
	}

	wed := doc.Groups[2]
	if len(wed.Intervals) != 0 || wed.Start != nil {
		t.Errorf("Wed should be empty, got %+v", wed)
	}
	if wed.Flags.Gap {
		t.Error("empty group should not be gap-flagged")
	}

	if len(doc.Activities) != 2 || doc.Activities[0].Activity != "dev" {
		t.Errorf("Activities = %+v, expected dev first", doc.Activities)
	}
}

func TestBuild_NoTimeline(t *testing.T) {
	svc := service.NewAnalysisService(config.DefaultConfig())
	a := svc.AnalyzeRows([]group.RawRow{group.Boundary("g1", "Mon")}, testDay)

	doc := Build(a)
	if doc.Scale != 0 {
		t.Errorf("Scale = %v, expected 0", doc.Scale)
	}
	if len(doc.Groups) != 1 || len(doc.Groups[0].Intervals) != 0 {
		t.Errorf("unexpected groups: %+v", doc.Groups)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("ParseFormat(%q) error = %v, expected ErrUnknownFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Build(sampleAnalysis(t)), FormatJSON); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Groups) != 3 || decoded.Summary.Total != 840 {
		t.Errorf("unexpected decoded document: groups=%d total=%v", len(decoded.Groups), decoded.Summary.Total)
	}
	if !strings.Contains(buf.String(), `"scale_minutes": 480`) {
		t.Errorf("expected indented scale_minutes field, got:\n%s", buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Build(sampleAnalysis(t)), FormatYAML); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["day"] != "2024-01-15" {
		t.Errorf("day = %v, expected 2024-01-15", decoded["day"])
	}
	groups, ok := decoded["groups"].([]interface{})
	if !ok || len(groups) != 3 {
		t.Errorf("expected 3 groups, got %v", decoded["groups"])
	}
}

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Build(sampleAnalysis(t)), FormatCSV); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	// header + 2 Mon + 2 Tue + 1 empty Wed
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
	if records[0][0] != "group_id" || len(records[0]) != len(csvHeader) {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][2] != "2024-01-15T09:00:00Z" {
		t.Errorf("start = %q, expected RFC3339", records[1][2])
	}
	if records[1][6] != "0.00" || records[1][7] != "37.50" {
		t.Errorf("offset/width = %q/%q, expected 0.00/37.50", records[1][6], records[1][7])
	}
	wed := records[5]
	if wed[0] != "g3" || wed[2] != "" {
		t.Errorf("empty group row = %v", wed)
	}
	if wed[len(wed)-2] != "false" {
		t.Errorf("empty group gap_flagged = %q, expected false", wed[len(wed)-2])
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Document{}, Format("xml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
