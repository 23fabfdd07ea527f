package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/tui/ui"
)

// GroupsModel lists groups and shows the intervals and metrics of the selected one
type GroupsModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	width    int
	height   int
	analysis *service.Analysis
	err      error
	cursor   int
}

// NewGroupsModel creates a new groups view model
func NewGroupsModel(styles ui.Styles, keys ui.KeyMap) GroupsModel {
	return GroupsModel{styles: styles, keys: keys}
}

// Init implements tea.Model
func (m GroupsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m GroupsModel) Update(msg tea.Msg) (GroupsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.analysis != nil && m.cursor < len(m.analysis.Groups)-1 {
				m.cursor++
			}
		}

	case ui.AnalysisLoadedMsg:
		if msg.Unchanged {
			return m, nil
		}
		m.err = msg.Err
		if msg.Analysis != nil {
			m.analysis = msg.Analysis
			m.cursor = min(m.cursor, max(0, len(m.analysis.Groups)-1))
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// Cursor returns the index of the selected group
func (m GroupsModel) Cursor() int {
	return m.cursor
}

// View implements tea.Model
func (m GroupsModel) View() string {
	var b strings.Builder

	title := "Groups"
	if m.analysis != nil {
		title = fmt.Sprintf("Groups for %s", m.analysis.Day.Format("Mon, Jan 2, 2006"))
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	if text, ok := renderPlaceholder(m.styles, m.analysis, m.err); ok {
		b.WriteString(text)
		return b.String()
	}

	labelWidth := 0
	for _, g := range m.analysis.Groups {
		labelWidth = max(labelWidth, len([]rune(g.Label)))
	}
	labelWidth = min(labelWidth, max(10, m.width-30))

	for i, g := range m.analysis.Groups {
		marker := "  "
		if m.evaluation(i).Any() {
			marker = m.styles.Flagged.Render("! ")
		}
		label := fmt.Sprintf("%-*s", labelWidth, truncate(g.Label, labelWidth))
		line := fmt.Sprintf("%s%s %s  %d %s", marker, m.styles.GroupLabel.Render(label),
			m.styles.Duration.Render(cli.FormatDuration(g.Total)),
			len(g.Intervals), cli.Pluralize("interval", len(g.Intervals)))
		if i == m.cursor {
			b.WriteString(m.styles.RowSelected.Render(line))
		} else {
			b.WriteString(m.styles.RowNormal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(divider(m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderDetail())

	return b.String()
}

func (m GroupsModel) evaluation(i int) stats.Evaluation {
	if i < len(m.analysis.Evaluations) {
		return m.analysis.Evaluations[i]
	}
	return stats.Evaluation{}
}

func (m GroupsModel) renderDetail() string {
	g := m.analysis.Groups[m.cursor]
	eval := m.evaluation(m.cursor)

	var b strings.Builder
	b.WriteString(m.styles.GroupLabel.Render(g.Label))
	b.WriteString("\n")

	if g.IsEmpty() {
		b.WriteString(m.styles.StatLabel.Render("  (no intervals)"))
		b.WriteString("\n")
		return b.String()
	}

	for _, iv := range g.Intervals {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			m.styles.IntervalTime.Render(fmt.Sprintf("%-17s", cli.FormatInterval(iv))),
			m.styles.Duration.Render(cli.FormatDuration(iv.Duration())),
			m.styles.Activity.Render(cli.FormatActivity(iv.Activity))))
	}

	b.WriteString("\n")
	b.WriteString(renderStatLine(m.styles, "Total:", renderFlag(m.styles, eval.Total)))
	b.WriteString(renderStatLine(m.styles, "Gap:", renderFlag(m.styles, eval.Gap)))
	b.WriteString(renderStatLine(m.styles, "Overlap:", renderFlag(m.styles, eval.Overlap)))
	return b.String()
}

// SetSize sets the view dimensions
func (m *GroupsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
