package feed

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xolan/worklog/internal/group"
)

// activityPattern matches an "@name" activity tag
var activityPattern = regexp.MustCompile(`(?:^|\s)@([A-Za-z0-9_-]+)`)

// parseTextLine handles one line of the text format.
//
//	# Monday 15 Jan          boundary, label "Monday 15 Jan", id "line-1"
//	(09:00-12:00) @dev      content, activity "dev"
//
// Blank lines are ignored. A header with nothing after the "#" still opens a group.
func parseTextLine(lineNumber int, line string, result *ReadResult) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if strings.HasPrefix(trimmed, "#") {
		label := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		result.Rows = append(result.Rows, group.Boundary(fmt.Sprintf("line-%d", lineNumber), label))
		return
	}

	result.Rows = append(result.Rows, group.Content(trimmed, Activity(trimmed)))
}

// Activity returns the last "@name" tag in text, or "" when there is none
func Activity(text string) string {
	matches := activityPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}
