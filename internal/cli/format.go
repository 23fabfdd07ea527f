// Package cli provides the CLI presentation layer for the worklog application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/interval"
	"github.com/xolan/worklog/internal/stats"
)

// FormatDuration formats a duration as a human-readable string, rounded down to the minute.
// Examples: "0m", "30m", "2h", "1h 30m"
func FormatDuration(d time.Duration) string {
	minutes := int(d / time.Minute)
	if minutes < 0 {
		return "-" + FormatDuration(-d)
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatClock formats t as HH:MM, marking days after day with "+Nd".
// Example: "00:15+1d" for an interval that ran past midnight.
func FormatClock(t, day time.Time) string {
	clock := t.Format("15:04")
	y, m, d := day.Date()
	anchor := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	ty, tm, td := t.Date()
	offset := int(math.Round(time.Date(ty, tm, td, 0, 0, 0, 0, t.Location()).Sub(anchor).Hours() / 24))
	if offset > 0 {
		return fmt.Sprintf("%s+%dd", clock, offset)
	}
	return clock
}

// FormatInterval formats an interval as "HH:MM-HH:MM" relative to its start day
func FormatInterval(iv interval.Interval) string {
	return fmt.Sprintf("%s-%s", FormatClock(iv.Start, iv.Start), FormatClock(iv.Stop, iv.Start))
}

// FormatActivity returns "@activity", or the no-activity label
func FormatActivity(activity string) string {
	if activity == "" || activity == stats.NoActivity {
		return stats.NoActivity
	}
	return "@" + activity
}

// FormatFlag renders a flagged metric with its threshold, e.g. "9h (> 8h)".
// Unflagged metrics render as the bare value.
func FormatFlag(f stats.Flag) string {
	if !f.Flagged {
		return FormatDuration(f.Value)
	}
	return fmt.Sprintf("%s (%s %s)", FormatDuration(f.Value), f.Rule, FormatDuration(f.Threshold))
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning feed.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
