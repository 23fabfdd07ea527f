// Package feed reads raw boundary/content rows from interval logs.
package feed

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xolan/worklog/internal/group"
)

// Format identifies how a log encodes its rows
type Format string

const (
	// FormatAuto picks a format from the file extension or the content
	FormatAuto Format = "auto"
	// FormatText is the plain line format with "#" day headers
	FormatText Format = "text"
	// FormatJSONL is one JSON object per line
	FormatJSONL Format = "jsonl"
)

// ErrUnknownFormat is returned for a format name that is not auto, text or jsonl.
var ErrUnknownFormat = errors.New("unknown input format")

// maxLineSize bounds a single log line.
const maxLineSize = 1024 * 1024

// ParseFormat converts a format name to a Format. An empty name means auto.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText:
		return FormatText, nil
	case FormatJSONL:
		return FormatJSONL, nil
	default:
		return "", fmt.Errorf("%w: %q (expected auto, text or jsonl)", ErrUnknownFormat, name)
	}
}

// ParseWarning represents a line that could not be turned into a row
type ParseWarning struct {
	LineNumber int    // Line number in the input (1-indexed)
	Content    string // Raw content of the line
	Error      string // Description of the problem
}

// ReadResult contains the rows read from a log together with warnings
// about lines that were skipped.
type ReadResult struct {
	Rows     []group.RawRow
	Warnings []ParseWarning
	Format   Format // Format actually used after auto detection
	Lines    int    // Number of lines scanned
}

// DetectFormat picks a format from the file extension.
// .jsonl and .ndjson are JSONL; anything else is the text format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatText
	}
}

// Sniff picks a format from content: JSONL when the first non-blank line
// starts with "{", text otherwise.
func Sniff(data []byte) Format {
	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if trimmed[0] == '{' {
			return FormatJSONL
		}
		return FormatText
	}
	return FormatText
}

// Parse turns log content into rows. Malformed lines become warnings and never abort parsing.
func Parse(data []byte, format Format) (ReadResult, error) {
	if format == FormatAuto || format == "" {
		format = Sniff(data)
	}

	result := ReadResult{
		Rows:     []group.RawRow{},
		Warnings: []ParseWarning{},
		Format:   format,
	}

	var parseLine func(lineNumber int, line string, result *ReadResult)
	switch format {
	case FormatText:
		parseLine = parseTextLine
	case FormatJSONL:
		parseLine = parseJSONLLine
	default:
		return result, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		result.Lines++
		parseLine(result.Lines, scanner.Text(), &result)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// Read reads all of r and parses it
func Read(r io.Reader, format Format) (ReadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ReadResult{}, fmt.Errorf("failed to read input: %w", err)
	}
	return Parse(data, format)
}

// ReadFile reads and parses the log at path. FormatAuto is resolved with DetectFormat.
// A missing file is an error: the log is user input, not application state.
func ReadFile(path string, format Format) (ReadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadResult{}, err
	}
	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}
	return Parse(data, format)
}
