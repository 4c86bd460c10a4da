// Package tui implements the interactive goal board.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/tui/components"
	"github.com/Veraticus/ascend/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateBoard State = iota
	StateForm
	StateConfirmDelete
)

// Model holds the main TUI state.
type Model struct {
	ctx           context.Context
	theme         themes.Theme
	lastError     error
	store         *engine.GoalStore
	banner        *model.UnlockEvent
	help          help.Model
	status        string
	pendingDelete model.Goal
	form          components.GoalFormModel
	list          components.GoalListModel
	stats         components.StatsPanelModel
	config        Config
	keymap        KeyMap
	bannerSeq     int
	width         int
	height        int
	state         State
	showArchived  bool
	quitting      bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, store *engine.GoalStore, cfg Config) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		ctx:          ctx,
		store:        store,
		config:       cfg,
		keymap:       DefaultKeyMap(),
		theme:        cfg.Theme,
		help:         h,
		state:        StateBoard,
		showArchived: cfg.ShowArchived,
		width:        cfg.Width,
		height:       cfg.Height,
		list:         components.NewGoalList(nil, cfg.Theme),
		stats:        components.NewStatsPanelModel(cfg.Theme),
	}
	m.handleResize()
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case StateForm:
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		case StateConfirmDelete:
			return m.handleConfirmKeys(msg)
		default:
			return m.handleBoardKeys(msg)
		}

	case components.GoalSubmittedMsg:
		return m, createGoal(m.ctx, m.store, msg.Input)

	case components.FormCancelledMsg:
		m.state = StateBoard
		m.status = ""
		return m, nil

	case goalCreatedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.state = StateBoard
		m.lastError = nil
		m.status = fmt.Sprintf("Added %q with weight %.1f%%", msg.goal.Title, msg.goal.Weight)
		m.refresh()
		return m, nil

	case goalToggledMsg:
		return m.handleToggled(msg)

	case goalArchivedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.status = fmt.Sprintf("Archived %q", msg.goal.Title)
		m.refresh()
		return m, nil

	case goalDeletedMsg:
		m.state = StateBoard
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.status = fmt.Sprintf("Deleted %q", msg.goal.Title)
		m.refresh()
		return m, nil

	case dismissBannerMsg:
		if msg.seq == m.bannerSeq {
			m.banner = nil
		}
		return m, nil
	}

	if m.state == StateForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleBoardKeys handles keys while the goal list has focus.
func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.banner != nil && msg.String() == "esc" {
			m.banner = nil
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Toggle):
		if g, ok := m.list.Selected(); ok {
			return m, toggleGoal(m.ctx, m.store, g.ID)
		}

	case key.Matches(msg, m.keymap.Archive):
		if g, ok := m.list.Selected(); ok {
			if !g.Completed || g.Archived {
				m.lastError = fmt.Errorf("only completed goals can be archived")
				return m, nil
			}
			return m, archiveGoal(m.ctx, m.store, g.ID)
		}

	case key.Matches(msg, m.keymap.Delete):
		if g, ok := m.list.Selected(); ok {
			m.pendingDelete = g
			m.state = StateConfirmDelete
		}

	case key.Matches(msg, m.keymap.New):
		m.form = components.NewGoalForm(m.theme, m.store.SuggestedWeight(m.config.DefaultWeight))
		m.state = StateForm
		m.lastError = nil

	case key.Matches(msg, m.keymap.ToggleArchived):
		m.showArchived = !m.showArchived
		m.refresh()

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Up, m.keymap.Down, m.keymap.Top, m.keymap.Bottom):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		return m, deleteGoal(m.ctx, m.store, m.pendingDelete.ID)
	case key.Matches(msg, m.keymap.Cancel):
		m.state = StateBoard
		m.pendingDelete = model.Goal{}
	}
	return m, nil
}

func (m Model) handleToggled(msg goalToggledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, engine.ErrAlreadyArchived) {
			m.lastError = fmt.Errorf("archived goals cannot be reopened")
		} else {
			m.lastError = msg.err
		}
		return m, nil
	}

	m.lastError = nil
	m.refresh()

	out := msg.outcome
	switch {
	case out.LeveledUp:
		m.status = fmt.Sprintf("Level up! You reached level %d", out.After.CurrentLevel)
	case out.Completed:
		m.status = fmt.Sprintf("Completed %q (+%d points)", out.Goal.Title, out.Goal.Points)
	default:
		m.status = fmt.Sprintf("Reopened %q", out.Goal.Title)
	}

	if out.Notification == nil {
		return m, nil
	}
	event := *out.Notification
	m.banner = &event
	m.bannerSeq++
	return m, dismissBannerAfter(m.config.BannerDuration, m.bannerSeq)
}

// refresh reloads everything shown from the store.
func (m *Model) refresh() {
	m.list.SetGoals(m.store.Goals(m.showArchived))
	unlocked := len(m.store.UnlockedCompanions()) + len(m.store.UnlockedItems())
	m.stats.SetStats(m.store.Stats(), m.store.AvailableWeight(), m.store.ArchivedCount(), unlocked)
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	m.help.Width = m.width
	m.stats.SetCompact(m.width < 80)
	m.stats.Resize(m.width)

	// Title, stats, status and help lines.
	chrome := 8
	if m.width < 80 {
		chrome = 6
	}
	m.list.Resize(m.width, max(3, m.height-chrome))
}
