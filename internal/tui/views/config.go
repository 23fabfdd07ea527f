package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/tui/ui"
)

// ConfigModel shows the active configuration and hosts the theme selector
type ConfigModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	themeName string
	source    string

	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int
}

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// NewConfigModel creates a new config view model for the watched source
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap, source string) ConfigModel {
	m := ConfigModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		themes:    themeProvider.AvailableThemes(),
		themeName: themeProvider.CurrentName(),
		source:    source,
	}
	m.resetCursor()
	return m
}

// configLoadedMsg is sent when config is loaded
type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// IsSelecting reports whether the theme selector is open and capturing keys
func (m ConfigModel) IsSelecting() bool {
	return m.selectingTheme
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}
		if key.Matches(msg, m.keys.Select) {
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.resetCursor()
		return m, m.loadConfig()
	}

	return m, nil
}

func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		if len(m.themes) == 0 {
			return m, nil
		}
		selected := m.themes[m.themeCursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: selected}
		}

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetCursor()
	}

	return m, nil
}

// resetCursor moves the selector cursor to the current theme
func (m *ConfigModel) resetCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			break
		}
	}
	m.updateThemeOffset()
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(renderStatLine(m.styles, "Watching:", m.source))
	b.WriteString(renderStatLine(m.styles, "Config file:", m.path))
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n")
	b.WriteString(divider(m.width))
	b.WriteString("\n\n")

	b.WriteString(renderStatLine(m.styles, "workday:", m.config.Workday))
	b.WriteString(renderStatLine(m.styles, "gap_threshold:", m.config.GapThreshold))
	b.WriteString(renderStatLine(m.styles, "overlap_threshold:", m.config.OverlapThreshold))
	b.WriteString(renderStatLine(m.styles, "color_by_activity:", fmt.Sprintf("%t", m.config.ColorByActivity)))
	b.WriteString(renderStatLine(m.styles, "timezone:", m.config.Timezone))
	b.WriteString(renderStatLine(m.styles, "input_format:", m.config.InputFormat))
	b.WriteString(renderStatLine(m.styles, "poll_interval:", m.config.PollInterval))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(renderStatLine(m.styles, "theme:", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Press Enter to pick a theme, [ and ] to cycle"))
	}

	return b.String()
}

func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	endIdx := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.StatLabel.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < endIdx; i++ {
		theme := m.themes[i]
		current := ""
		if theme == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.RowSelected.Render("▸ " + theme))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(theme))
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if endIdx < len(m.themes) {
		b.WriteString(m.styles.StatLabel.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		return configLoadedMsg{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
		}
	}
}
