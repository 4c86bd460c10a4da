package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/progress"
	"github.com/Veraticus/ascend/internal/tui/themes"
	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StatsPanelModel displays level, points and the weight budget.
type StatsPanelModel struct {
	theme       themes.Theme
	stats       model.ProgressStats
	progressBar bprogress.Model
	budgetBar   bprogress.Model
	available   float64
	archived    int
	unlocked    int
	width       int
	compact     bool
}

// NewStatsPanelModel creates a new stats panel.
func NewStatsPanelModel(theme themes.Theme) StatsPanelModel {
	level := bprogress.New(bprogress.WithGradient(theme.GradientStart, theme.GradientEnd))
	level.ShowPercentage = false
	budget := bprogress.New(bprogress.WithSolidFill(string(theme.Secondary)))
	budget.ShowPercentage = false

	return StatsPanelModel{
		theme:       theme,
		progressBar: level,
		budgetBar:   budget,
		width:       80,
	}
}

// SetStats updates the numbers shown.
func (m *StatsPanelModel) SetStats(stats model.ProgressStats, available float64, archived, unlocked int) {
	m.stats = stats
	m.available = available
	m.archived = archived
	m.unlocked = unlocked
}

// LevelFraction returns how far the current level has progressed, in [0,1).
func (m StatsPanelModel) LevelFraction() float64 {
	return float64(progress.PointsPerLevel-m.stats.PointsToNextLevel) / float64(progress.PointsPerLevel)
}

// View renders the stats panel.
func (m StatsPanelModel) View() string {
	if m.compact {
		return m.renderCompact()
	}
	return m.renderFull()
}

func (m StatsPanelModel) renderCompact() string {
	stats := fmt.Sprintf(
		"Lv %d | %d pts | %d to next | %d/%d done | %.0f%% free",
		m.stats.CurrentLevel,
		m.stats.TotalPoints,
		m.stats.PointsToNextLevel,
		m.stats.CompletedGoals,
		m.stats.TotalGoals,
		m.available,
	)
	return m.theme.Box.Render(stats)
}

func (m StatsPanelModel) renderFull() string {
	level := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Bold.Render(fmt.Sprintf("Level %d  ", m.stats.CurrentLevel)),
		m.progressBar.ViewAs(m.LevelFraction()),
		m.theme.Subtitle.Render(fmt.Sprintf("  %d to next", m.stats.PointsToNextLevel)),
	)

	allocated := (100 - m.available) / 100
	budget := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Bold.Render("Budget   "),
		m.budgetBar.ViewAs(allocated),
		m.theme.Subtitle.Render(fmt.Sprintf("  %.1f%% free", m.available)),
	)

	details := []string{
		fmt.Sprintf("%d points", m.stats.TotalPoints),
		fmt.Sprintf("%d/%d goals done", m.stats.CompletedGoals, m.stats.TotalGoals),
		fmt.Sprintf("%.0f%% progress", m.stats.TotalProgress),
		fmt.Sprintf("%d unlocked", m.unlocked),
	}
	if m.archived > 0 {
		details = append(details, fmt.Sprintf("%d archived", m.archived))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		level,
		budget,
		m.theme.Subtitle.Render(strings.Join(details, " · ")),
	)
}

// SetCompact sets compact mode.
func (m *StatsPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component size.
func (m *StatsPanelModel) Resize(width int) {
	m.width = width
	barWidth := max(10, min(width-30, 40))
	m.progressBar.Width = barWidth
	m.budgetBar.Width = barWidth
}
