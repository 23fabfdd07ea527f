package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/tui/ui"
)

// minBarWidth keeps bars readable on narrow terminals
const minBarWidth = 10

// TimelineModel draws every group as a bar on the shared scale
type TimelineModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	width    int
	height   int
	barWidth int // configured width, used until the terminal size is known
	analysis *service.Analysis
	err      error
}

// NewTimelineModel creates a new timeline view model
func NewTimelineModel(styles ui.Styles, keys ui.KeyMap, barWidth int) TimelineModel {
	return TimelineModel{styles: styles, keys: keys, barWidth: barWidth}
}

// Init implements tea.Model
func (m TimelineModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m TimelineModel) Update(msg tea.Msg) (TimelineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.AnalysisLoadedMsg:
		if msg.Unchanged {
			return m, nil
		}
		m.err = msg.Err
		if msg.Analysis != nil {
			m.analysis = msg.Analysis
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m TimelineModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Timeline"))
	b.WriteString("\n\n")

	if text, ok := renderPlaceholder(m.styles, m.analysis, m.err); ok {
		b.WriteString(text)
		return b.String()
	}
	if !m.analysis.HasTimeline() {
		b.WriteString(m.styles.StatLabel.Render("Nothing to draw: no intervals found"))
		return b.String()
	}

	labelWidth := 0
	for _, g := range m.analysis.Groups {
		labelWidth = max(labelWidth, len([]rune(g.Label)))
	}
	labelWidth = min(labelWidth, 20)
	width := m.BarWidth(labelWidth)

	b.WriteString(renderStatLine(m.styles, "Scale:", cli.FormatDuration(m.analysis.Scale)))
	b.WriteString("\n")

	for i, g := range m.analysis.Groups {
		marker := " "
		if i < len(m.analysis.Evaluations) && m.analysis.Evaluations[i].Any() {
			marker = m.styles.Flagged.Render("!")
		}
		label := fmt.Sprintf("%-*s", labelWidth, truncate(g.Label, labelWidth))
		bar := cli.RenderBar(m.analysis.Positions[i], g.Intervals, width)
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			m.styles.GroupLabel.Render(label), marker, bar,
			m.styles.Duration.Render(cli.FormatDuration(g.Total))))
	}

	return b.String()
}

// BarWidth returns the bar width that fits the terminal next to labels of labelWidth
func (m TimelineModel) BarWidth(labelWidth int) int {
	if m.width == 0 {
		return max(minBarWidth, m.barWidth)
	}
	// label, marker, duration column and padding
	return max(minBarWidth, m.width-labelWidth-20)
}

// SetSize sets the view dimensions
func (m *TimelineModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
