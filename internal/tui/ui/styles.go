package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Group list
	RowSelected  lipgloss.Style
	RowNormal    lipgloss.Style
	GroupLabel   lipgloss.Style
	IntervalTime lipgloss.Style
	Duration     lipgloss.Style
	Activity     lipgloss.Style
	Flagged      lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	errColor  lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	selection lipgloss.TerminalColor
}

// DefaultStyles returns the styles used when no theme registry is available
func DefaultStyles() Styles {
	return buildStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		accent:    lipgloss.Color("212"), // Pink
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		errColor:  lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		selection: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates Styles from the current theme of a bubbletint registry.
// Purple is the primary color, Cyan the secondary, BrightPurple the accent and
// BrightBlack is used for muted text and the selection background.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return buildStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		errColor:  r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		selection: r.BrightBlack(),
	})
}

func buildStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(p.fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		RowSelected: lipgloss.NewStyle().
			Background(p.selection).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		GroupLabel: lipgloss.NewStyle().
			Foreground(p.primary),
		IntervalTime: lipgloss.NewStyle().
			Foreground(p.secondary),
		Duration: lipgloss.NewStyle().
			Foreground(p.accent).
			Width(9).
			Align(lipgloss.Right),
		Activity: lipgloss.NewStyle().
			Foreground(p.fg),
		Flagged: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.muted),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),

		Error: lipgloss.NewStyle().
			Foreground(p.errColor),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
