// Package tui provides the watch mode of the worklog application: a terminal
// UI that re-reads the log on an interval and redraws groups, the timeline
// and statistics when the content changes.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/timeutil"
	"github.com/xolan/worklog/internal/tui/ui"
	"github.com/xolan/worklog/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabGroups Tab = iota
	TabTimeline
	TabStats
	TabConfig
)

var tabNames = []string{"Groups", "Timeline", "Stats", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services
	analyzer *service.AnalysisService

	// Watched log
	source   string
	day      time.Time
	guard    *feed.Guard
	poll     time.Duration
	colors   bool
	loadedAt time.Time
	loadErr  error
	groups   int
	flagged  int

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	groupsView   views.GroupsModel
	timelineView views.TimelineModel
	statsView    views.StatsModel
	configView   views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model watching the log at source, anchored to day
func New(services *service.Services, source string, day time.Time) Model {
	cfg := services.Config.Get()
	themeProvider := ui.NewThemeProvider(cfg.Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		analyzer:      services.Analysis,
		source:        source,
		day:           day,
		guard:         feed.NewGuard(),
		poll:          cfg.Poll(),
		colors:        services.Analysis.Colors(),
		activeTab:     TabGroups,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		groupsView:    views.NewGroupsModel(styles, keys),
		timelineView:  views.NewTimelineModel(styles, keys, cfg.TimelineWidth),
		statsView:     views.NewStatsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys, source),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.load(true),
		m.tick(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// the theme selector owns navigation and Enter/Esc while open
		selecting := m.activeTab == TabConfig && m.configView.IsSelecting()

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !selecting:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !selecting:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !selecting:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !selecting:
			m.activeTab = TabGroups
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !selecting:
			m.activeTab = TabTimeline
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !selecting:
			m.activeTab = TabStats
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab4) && !selecting:
			m.activeTab = TabConfig
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Refresh) && !selecting:
			return m, m.load(true)

		case key.Matches(msg, m.keys.PrevDay) && !selecting:
			m.day = m.day.AddDate(0, 0, -1)
			return m, m.load(true)

		case key.Matches(msg, m.keys.NextDay) && !selecting:
			m.day = m.day.AddDate(0, 0, 1)
			return m, m.load(true)

		case key.Matches(msg, m.keys.Today) && !selecting:
			m.day = timeutil.Today(m.services.Config.Get().Location())
			return m, m.load(true)

		case key.Matches(msg, m.keys.ToggleColors) && !selecting:
			m.colors = !m.colors
			m.analyzer = m.analyzer.WithColors(m.colors)
			return m, m.load(true)

		case key.Matches(msg, m.keys.NextTheme) && !selecting:
			name := m.themeProvider.Cycle(1)
			return m, requestTheme(name)

		case key.Matches(msg, m.keys.PrevTheme) && !selecting:
			name := m.themeProvider.Cycle(-1)
			return m, requestTheme(name)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.groupsView.SetSize(m.width, contentHeight)
		m.timelineView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.TickMsg:
		return m, tea.Batch(m.load(false), m.tick())

	case ui.AnalysisLoadedMsg:
		m.loadedAt = msg.LoadedAt
		m.loadErr = msg.Err
		if msg.Analysis != nil {
			m.groups = len(msg.Analysis.Groups)
			m.flagged = msg.Analysis.FlaggedGroups()
		}
		m.groupsView, _ = m.groupsView.Update(msg)
		m.timelineView, _ = m.timelineView.Update(msg)
		m.statsView, _ = m.statsView.Update(msg)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.groupsView, _ = m.groupsView.Update(themeMsg)
		m.timelineView, _ = m.timelineView.Update(themeMsg)
		m.statsView, _ = m.statsView.Update(themeMsg)
		m.configView, cmd = m.configView.Update(themeMsg)

		return m, tea.Batch(cmd, m.saveThemeConfig(newTheme))
	}

	// Update the active view
	switch m.activeTab {
	case TabGroups:
		m.groupsView, cmd = m.groupsView.Update(msg)
	case TabTimeline:
		m.timelineView, cmd = m.timelineView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabGroups:
		b.WriteString(m.groupsView.View())
	case TabTimeline:
		b.WriteString(m.timelineView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// Day returns the date interval fragments are currently anchored to
func (m Model) Day() time.Time {
	return m.day
}

// load reads the watched log and analyzes it. Unless force is set, content
// identical to the previous read yields an Unchanged message instead.
func (m Model) load(force bool) tea.Cmd {
	source, day, guard, analyzer := m.source, m.day, m.guard, m.analyzer
	return func() tea.Msg {
		now := time.Now()
		data, err := os.ReadFile(source)
		if err != nil {
			guard.Forget(source)
			return ui.AnalysisLoadedMsg{Err: fmt.Errorf("failed to read log %s: %w", source, err), LoadedAt: now}
		}

		if force {
			guard.Forget(source)
		}
		if !guard.Observe(source, data) {
			return ui.AnalysisLoadedMsg{Unchanged: true, LoadedAt: now}
		}

		format := analyzer.Format()
		if format == feed.FormatAuto {
			format = feed.DetectFormat(source)
		}
		a, err := analyzer.AnalyzeData(data, format, day)
		if err != nil {
			guard.Forget(source)
			return ui.AnalysisLoadedMsg{Err: err, LoadedAt: now}
		}
		a.Source = source
		return ui.AnalysisLoadedMsg{Analysis: a, LoadedAt: now}
	}
}

// tick schedules the next poll
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.poll, func(t time.Time) tea.Msg {
		return ui.TickMsg(t)
	})
}

func requestTheme(name string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: name}
	}
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	parts = append(parts, m.styles.StatusValue.Render(m.day.Format("Mon Jan 2")))
	switch {
	case m.loadErr != nil:
		parts = append(parts, m.styles.Error.Render("read failed"))
	case !m.loadedAt.IsZero():
		summary := fmt.Sprintf("%d groups, %d flagged, checked %s", m.groups, m.flagged, m.loadedAt.Format("15:04:05"))
		parts = append(parts, m.styles.StatusValue.Render(summary))
	}

	switch m.activeTab {
	case TabGroups:
		parts = append(parts, m.renderKeyHelp("j/k", "select"))
	case TabConfig:
		parts = append(parts, m.renderKeyHelp("enter", "themes"))
	}

	parts = append(parts, m.renderKeyHelp("h/l", "day"))
	parts = append(parts, m.renderKeyHelp("r", "reload"))
	parts = append(parts, m.renderKeyHelp("1-4", "views"))
	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabGroups:
		return m.groupsView.Init()
	case TabTimeline:
		return m.timelineView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// renderHelpOverlay renders the keyboard shortcuts in place of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  h/l        Previous/next day\n")
	help.WriteString("  t          Today\n")
	help.WriteString("  r          Reload now\n")
	help.WriteString("  c          Toggle activity colors\n")
	help.WriteString("  [ ]        Cycle themes\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabGroups:
		help.WriteString(m.styles.StatLabel.Render("Groups:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Select group\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  Enter      Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the watch UI on source
func Run(services *service.Services, source string, day time.Time) error {
	model := New(services, source, day)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
