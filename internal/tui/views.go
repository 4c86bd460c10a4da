package tui

import (
	"fmt"

	"github.com/Veraticus/ascend/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.stats.View(),
	}
	if m.banner != nil {
		sections = append(sections, m.renderBanner(*m.banner))
	}

	switch m.state {
	case StateForm:
		sections = append(sections, m.form.View())
	case StateConfirmDelete:
		sections = append(sections, m.list.View(), m.renderConfirm())
	default:
		sections = append(sections, m.list.View())
	}

	sections = append(sections, m.renderStatusBar())
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("⚔ Ascend")
	view := "active goals"
	if m.showArchived {
		view = "all goals"
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		title,
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  "+view),
	)
}

// renderBanner renders the unlock notification.
func (m Model) renderBanner(event model.UnlockEvent) string {
	headline := m.theme.StatusWarning.Render("✨ " + event.Title())
	body := event.Description
	if event.ImageRef != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(event.ImageRef)
	}
	return m.theme.Banner.Render(lipgloss.JoinVertical(lipgloss.Left, headline, body))
}

func (m Model) renderConfirm() string {
	prompt := fmt.Sprintf("Delete %q? (y/n)", m.pendingDelete.Title)
	return m.theme.StatusWarning.Render(prompt)
}

// renderStatusBar shows the last error or the last action.
func (m Model) renderStatusBar() string {
	if m.lastError != nil {
		return m.theme.StatusError.Render("✗ " + m.lastError.Error())
	}
	if m.status != "" {
		return m.theme.StatusSuccess.Render(m.status)
	}
	return m.theme.StatusPending.Render(" ")
}
