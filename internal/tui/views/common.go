// Package views contains the tab views of the watch TUI.
package views

import (
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/tui/ui"
)

// renderFlag renders a metric, highlighted with its threshold when flagged
func renderFlag(styles ui.Styles, f stats.Flag) string {
	if !f.Flagged {
		return cli.FormatDuration(f.Value)
	}
	return styles.Flagged.Render(cli.FormatFlag(f))
}

func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

// renderPlaceholder returns the text shown before a first analysis arrives or after a failed one
func renderPlaceholder(styles ui.Styles, a *service.Analysis, err error) (string, bool) {
	if err != nil && a == nil {
		return styles.Error.Render(fmt.Sprintf("Error: %v", err)), true
	}
	if a == nil {
		return "Loading...", true
	}
	if len(a.Groups) == 0 {
		return styles.StatLabel.Render("No groups in log yet"), true
	}
	return "", false
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// divider returns a horizontal rule no wider than width
func divider(width int) string {
	return strings.Repeat("─", max(0, min(50, width)))
}
