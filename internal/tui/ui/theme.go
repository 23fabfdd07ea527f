package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when no theme is configured or the configured one is unknown
const DefaultTheme = "dracula"

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
	ids      []string // sorted, for cycling and the selector
}

// NewThemeProvider creates a ThemeProvider starting at initialTheme.
// Unknown or empty names fall back to DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	ids := registry.TintIDs()
	sort.Strings(ids)

	return &ThemeProvider{registry: registry, ids: ids}
}

// SetTheme switches to name and reports whether it exists
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// Cycle moves step themes forward (negative steps go back) in alphabetical
// order, wrapping at either end, and returns the new theme name.
func (tp *ThemeProvider) Cycle(step int) string {
	if len(tp.ids) == 0 {
		return tp.CurrentName()
	}
	current := sort.SearchStrings(tp.ids, tp.CurrentName())
	if current >= len(tp.ids) || tp.ids[current] != tp.CurrentName() {
		current = 0
	}
	next := ((current+step)%len(tp.ids) + len(tp.ids)) % len(tp.ids)
	tp.registry.SetTintID(tp.ids[next])
	return tp.CurrentName()
}

// CurrentName returns the ID of the current theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns all theme IDs in alphabetical order
func (tp *ThemeProvider) AvailableThemes() []string {
	out := make([]string, len(tp.ids))
	copy(out, tp.ids)
	return out
}

// Styles returns Styles for the current theme
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
