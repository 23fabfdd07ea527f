package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)        // YYYY-MM (missing day)
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)                // YYYY (year only)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)      // MM-DD or DD-MM (missing year)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)      // DD/MM (missing year)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`) // Too many separators
)

// ParseDate parses a date in the local timezone. See ParseDateIn.
func ParseDate(input string) (time.Time, error) {
	return ParseDateIn(input, time.Local)
}

// ParseDateIn parses a date string and returns midnight of that date in loc.
// For ambiguous dates (like 05/06/2024), ISO format (YYYY-MM-DD) is preferred.
//
// Valid inputs:
//   - "2024-01-15" (ISO format)
//   - "15/01/2024" (European format)
//   - "today", "yesterday"
//
// Invalid inputs return an error with suggested formats.
func ParseDateIn(input string, loc *time.Location) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}
	if loc == nil {
		loc = time.Local
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "today":
		return Today(loc), nil
	case "yesterday":
		return Yesterday(loc), nil
	}

	// ISO first so ambiguous input resolves the same way every time
	if t, err := time.ParseInLocation("2006-01-02", input, loc); err == nil {
		return StartOfDay(t), nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, loc); err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, buildDateParseError(input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD, DD/MM/YYYY, today or yesterday)", input)
	}
}
