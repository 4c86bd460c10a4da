package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDifficulty
	fieldWeight
	fieldCount
)

// GoalFormModel collects the fields of a new goal.
type GoalFormModel struct {
	theme  themes.Theme
	err    string
	inputs []textinput.Model
	focus  int
}

// NewGoalForm creates a form. suggestedWeight prefills the weight field.
func NewGoalForm(theme themes.Theme, suggestedWeight float64) GoalFormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 120
		in.Width = 48
		inputs[i] = in
	}

	inputs[fieldTitle].Prompt = "Title:       "
	inputs[fieldTitle].Placeholder = "What do you want to achieve?"
	inputs[fieldDescription].Prompt = "Description: "
	inputs[fieldDescription].Placeholder = "How will you know it is done?"
	inputs[fieldDifficulty].Prompt = "Difficulty:  "
	inputs[fieldDifficulty].Placeholder = "easy, medium or hard"
	inputs[fieldDifficulty].SetValue(string(model.DefaultDifficulty))
	inputs[fieldWeight].Prompt = "Weight:      "
	inputs[fieldWeight].Placeholder = "1-100"
	inputs[fieldWeight].CharLimit = 6
	if suggestedWeight > 0 {
		inputs[fieldWeight].SetValue(strconv.FormatFloat(suggestedWeight, 'f', -1, 64))
	}

	inputs[fieldTitle].Focus()
	return GoalFormModel{theme: theme, inputs: inputs}
}

// Focused returns the index of the focused field.
func (m GoalFormModel) Focused() int {
	return m.focus
}

// Err returns the current validation message.
func (m GoalFormModel) Err() string {
	return m.err
}

// Update handles messages.
func (m GoalFormModel) Update(msg tea.Msg) (GoalFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return FormCancelledMsg{} }
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if m.focus < fieldCount-1 {
				return m, m.setFocus(m.focus + 1)
			}
			in, err := m.input()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return GoalSubmittedMsg{Input: in} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *GoalFormModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// input validates the fields and builds the create request.
func (m GoalFormModel) input() (engine.CreateGoalInput, error) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		return engine.CreateGoalInput{}, fmt.Errorf("title is required")
	}
	description := strings.TrimSpace(m.inputs[fieldDescription].Value())
	if description == "" {
		return engine.CreateGoalInput{}, fmt.Errorf("description is required")
	}
	difficulty, err := model.ParseDifficulty(m.inputs[fieldDifficulty].Value())
	if err != nil {
		return engine.CreateGoalInput{}, err
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldWeight].Value()), 64)
	if err != nil || weight <= 0 || weight > 100 {
		return engine.CreateGoalInput{}, fmt.Errorf("weight must be a number greater than 0 and at most 100")
	}

	return engine.CreateGoalInput{
		Title:       title,
		Description: description,
		Difficulty:  difficulty,
		Weight:      weight,
	}, nil
}

// View renders the form.
func (m GoalFormModel) View() string {
	lines := []string{m.theme.Title.Render("New goal"), ""}
	for _, in := range m.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "")
	if m.err != "" {
		lines = append(lines, m.theme.StatusError.Render(m.err))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("tab next · enter submit · esc cancel"))

	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}
