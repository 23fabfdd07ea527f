package ui

import (
	"time"

	"github.com/xolan/worklog/internal/service"
)

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// TickMsg fires on every poll interval.
type TickMsg time.Time

// AnalysisLoadedMsg carries the result of reading the watched log.
// Unchanged is set when the log content is the same as on the previous read.
type AnalysisLoadedMsg struct {
	Analysis  *service.Analysis
	Err       error
	Unchanged bool
	LoadedAt  time.Time
}
