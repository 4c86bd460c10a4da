package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GoalListModel shows the goals as a table with a cursor.
type GoalListModel struct {
	theme  themes.Theme
	goals  []model.Goal
	table  table.Model
	width  int
	height int
}

// NewGoalList creates a goal list.
func NewGoalList(goals []model.Goal, theme themes.Theme) GoalListModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := GoalListModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: 14,
	}
	m.updateColumnWidths()
	m.SetGoals(goals)
	return m
}

// SetGoals replaces the listed goals, keeping the cursor in range. An
// empty table parks the cursor at -1, so refilling moves it back to row 0.
func (m *GoalListModel) SetGoals(goals []model.Goal) {
	m.goals = goals
	m.table.SetRows(m.buildTableRows())
	if c := m.table.Cursor(); c < 0 || c >= len(goals) {
		m.table.SetCursor(max(0, min(c, len(goals)-1)))
	}
}

// Goals returns the listed goals.
func (m GoalListModel) Goals() []model.Goal {
	return m.goals
}

// Selected returns the goal under the cursor.
func (m GoalListModel) Selected() (model.Goal, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.goals) {
		return model.Goal{}, false
	}
	return m.goals[c], true
}

// Cursor returns the cursor position.
func (m GoalListModel) Cursor() int {
	return m.table.Cursor()
}

// Update handles navigation keys.
func (m GoalListModel) Update(msg tea.Msg) (GoalListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list.
func (m GoalListModel) View() string {
	if len(m.goals) == 0 {
		empty := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No goals yet. Press n to add one.")
		return lipgloss.NewStyle().Width(m.width).Padding(1, 2).Render(empty)
	}
	return m.table.View()
}

func (m GoalListModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.goals))
	for _, g := range m.goals {
		rows = append(rows, table.Row{
			statusMark(g),
			truncate(g.Title, m.titleWidth()),
			themes.GetDifficultyIcon(g.Difficulty) + " " + string(g.Difficulty),
			fmt.Sprintf("%.1f%%", g.Weight),
			fmt.Sprintf("%d", g.Points),
		})
	}
	return rows
}

func statusMark(g model.Goal) string {
	switch {
	case g.Archived:
		return "▣"
	case g.Completed:
		return "✓"
	default:
		return "○"
	}
}

// Resize updates the component size.
func (m *GoalListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Header row and its border take two lines.
	m.table.SetHeight(max(1, height-2))
	m.updateColumnWidths()
	m.table.SetRows(m.buildTableRows())
}

func (m GoalListModel) titleWidth() int {
	return max(15, m.width-4-4-12-9-8-10)
}

// updateColumnWidths adjusts column widths to the available space.
func (m *GoalListModel) updateColumnWidths() {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Goal", Width: m.titleWidth()},
		{Title: "Difficulty", Width: 12},
		{Title: "Weight", Width: 8},
		{Title: "Points", Width: 6},
	}
	m.table.SetColumns(columns)
}

func truncate(s string, maxLen int) string {
	if len([]rune(s)) <= maxLen {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:maxLen-3])) + "..."
}
