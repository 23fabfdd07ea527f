package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/tui/ui"
)

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width    int
	height   int
	analysis *service.Analysis
	result   *service.StatsResult
	err      error
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.AnalysisLoadedMsg:
		if msg.Unchanged {
			return m, nil
		}
		m.err = msg.Err
		if msg.Analysis != nil {
			m.analysis = msg.Analysis
			m.result = m.services.Stats.ForAnalysis(msg.Analysis)
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n\n")

	if text, ok := renderPlaceholder(m.styles, m.analysis, m.err); ok {
		b.WriteString(text)
		return b.String()
	}

	s := m.result.Summary
	b.WriteString(renderStatLine(m.styles, "Total time:", cli.FormatDuration(s.Total)))
	b.WriteString(renderStatLine(m.styles, "Total gap:", cli.FormatDuration(s.Gap)))
	b.WriteString(renderStatLine(m.styles, "Total overlap:", cli.FormatDuration(s.Overlap)))
	b.WriteString(renderStatLine(m.styles, "Groups:", fmt.Sprintf("%d (%d with work)", s.Groups, s.NonEmptyGroups)))
	b.WriteString(renderStatLine(m.styles, "Intervals:", fmt.Sprintf("%d", s.Intervals)))
	b.WriteString(renderStatLine(m.styles, "Average per group:", cli.FormatDuration(s.AveragePerGroup)))
	b.WriteString(renderStatLine(m.styles, "Flagged groups:", fmt.Sprintf("%d", m.result.FlaggedGroups)))
	if m.result.Busiest != nil {
		b.WriteString(renderStatLine(m.styles, "Busiest group:",
			fmt.Sprintf("%s (%s)", m.result.Busiest.Label, cli.FormatDuration(m.result.Busiest.Total))))
	}

	if len(m.result.Activities) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render("By Activity"))
		b.WriteString("\n")
		for _, act := range m.result.Activities {
			line := fmt.Sprintf("  %-20s %10s  %5.1f%%  (%d %s)",
				truncate(cli.FormatActivity(act.Activity), 20),
				cli.FormatDuration(act.Total),
				act.Percent,
				act.IntervalCount,
				cli.Pluralize("interval", act.IntervalCount))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
