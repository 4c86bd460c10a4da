package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/ascend/internal/catalog"
	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *engine.GoalStore {
	t.Helper()
	n := 0
	cfg := engine.Config{
		Now: func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return fmt.Sprintf("goal-%d", n)
		},
	}
	store, err := engine.OpenWithConfig(context.Background(), storage.NewMemoryStorage(), catalog.Default(), nil, cfg)
	require.NoError(t, err)
	return store
}

func newTestModel(t *testing.T, store *engine.GoalStore) Model {
	t.Helper()
	cfg := defaultConfig()
	cfg.Width = 100
	cfg.Height = 30
	return newModel(context.Background(), store, cfg)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// update delivers msg without running the returned command.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// act delivers msg, runs the action command it returns, and feeds the
// result back. The follow-up command is returned unexecuted.
func act(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := update(m, msg)
	require.NotNil(t, cmd, "expected an action for %v", msg)
	return update(m, cmd())
}

func seed(t *testing.T, store *engine.GoalStore, title string, weight float64, d model.Difficulty) model.Goal {
	t.Helper()
	g, err := store.CreateGoal(context.Background(), engine.CreateGoalInput{
		Title: title, Description: title + " details", Weight: weight, Difficulty: d,
	})
	require.NoError(t, err)
	return g
}

func TestBoardShowsGoals(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "Learn Go", 40, model.DifficultyHard)
	seed(t, store, "Run 5k", 60, model.DifficultyEasy)

	m := newTestModel(t, store)
	view := m.View()

	assert.Contains(t, view, "Ascend")
	assert.Contains(t, view, "Learn Go")
	assert.Contains(t, view, "Run 5k")
	assert.Contains(t, view, "Level 1")
}

func TestBoardStartsOnFirstGoal(t *testing.T) {
	store := newTestStore(t)
	first := seed(t, store, "First", 40, model.DifficultyMedium)
	seed(t, store, "Second", 60, model.DifficultyMedium)

	m := newTestModel(t, store)
	g, ok := m.list.Selected()
	require.True(t, ok)
	assert.Equal(t, first.ID, g.ID)

	m, _ = update(m, keyRunes("j"))
	m, _ = update(m, keyRunes("d"))
	assert.Equal(t, "Second", m.pendingDelete.Title, "delete targets the highlighted goal")
}

func TestBoardNavigationAndToggle(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "First", 40, model.DifficultyMedium)
	second := seed(t, store, "Second", 60, model.DifficultyMedium)

	m := newTestModel(t, store)
	m, _ = update(m, keyRunes("j"))
	assert.Equal(t, 1, m.list.Cursor())

	m, _ = act(t, m, tea.KeyMsg{Type: tea.KeySpace})

	g, ok := store.Goal(second.ID)
	require.True(t, ok)
	assert.True(t, g.Completed)
	assert.Equal(t, 0.0, g.Weight)
	assert.Contains(t, m.status, "Completed")
	assert.Equal(t, 120, store.Stats().TotalPoints)
}

func TestToggleShowsBannerUntilDismissed(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "Big win", 30, model.DifficultyHard)

	m := newTestModel(t, store)
	m, cmd := act(t, m, tea.KeyMsg{Type: tea.KeySpace})

	require.NotNil(t, m.banner)
	assert.Equal(t, "Iron", m.banner.Name)
	assert.NotNil(t, cmd, "banner dismissal is scheduled")
	assert.Contains(t, m.View(), "New companion unlocked: Iron")

	// A stale timer does not hide a newer banner.
	m, _ = update(m, dismissBannerMsg{seq: m.bannerSeq - 1})
	assert.NotNil(t, m.banner)

	m, _ = update(m, dismissBannerMsg{seq: m.bannerSeq})
	assert.Nil(t, m.banner)
	assert.NotContains(t, m.View(), "New companion unlocked")
}

func TestArchiveFromBoard(t *testing.T) {
	store := newTestStore(t)
	g := seed(t, store, "Done soon", 50, model.DifficultyMedium)

	m := newTestModel(t, store)
	m, _ = update(m, keyRunes("a"))
	assert.Error(t, m.lastError, "open goals cannot be archived")

	m, _ = act(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = act(t, m, keyRunes("a"))

	require.NoError(t, m.lastError)
	archived, ok := store.Goal(g.ID)
	require.True(t, ok)
	assert.True(t, archived.Archived)
	assert.Empty(t, m.list.Goals(), "archived goals are hidden by default")

	m, _ = update(m, keyRunes("A"))
	assert.Len(t, m.list.Goals(), 1)

	m, _ = act(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Error(t, m.lastError, "archived goals cannot be reopened")
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	store := newTestStore(t)
	a := seed(t, store, "Keep", 40, model.DifficultyMedium)
	b := seed(t, store, "Drop", 60, model.DifficultyMedium)

	m := newTestModel(t, store)
	m, _ = update(m, keyRunes("j"))
	m, _ = update(m, keyRunes("d"))
	assert.Equal(t, StateConfirmDelete, m.state)
	assert.Contains(t, m.View(), `Delete "Drop"?`)

	m, _ = update(m, keyRunes("n"))
	assert.Equal(t, StateBoard, m.state)
	_, ok := store.Goal(b.ID)
	assert.True(t, ok, "cancel keeps the goal")

	m, _ = update(m, keyRunes("d"))
	m, _ = act(t, m, keyRunes("y"))
	assert.Equal(t, StateBoard, m.state)
	_, ok = store.Goal(b.ID)
	assert.False(t, ok)

	kept, ok := store.Goal(a.ID)
	require.True(t, ok)
	assert.InDelta(t, 100.0, kept.Weight, 1e-9, "deleted weight flows to the survivor")
	assert.Len(t, m.list.Goals(), 1)
}

func TestNewGoalForm(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "Existing", 90, model.DifficultyEasy)

	m := newTestModel(t, store)
	m, _ = update(m, keyRunes("n"))
	require.Equal(t, StateForm, m.state)
	assert.Contains(t, m.View(), "New goal")

	m, _ = update(m, keyRunes("Write a novel"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, keyRunes("Fifty thousand words"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	// Submitting yields the form message, which yields the create action.
	m, cmd := act(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())

	assert.Equal(t, StateBoard, m.state)
	require.NoError(t, m.lastError)

	goals := store.Goals(false)
	require.Len(t, goals, 2)
	assert.Equal(t, "Write a novel", goals[1].Title)
	assert.Equal(t, model.DifficultyMedium, goals[1].Difficulty)
	assert.InDelta(t, 10.0, goals[1].Weight, 1e-9, "suggested weight is capped by what is free")
}

func TestFormCancel(t *testing.T) {
	store := newTestStore(t)
	m := newTestModel(t, store)

	m, _ = update(m, keyRunes("n"))
	m, _ = act(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, StateBoard, m.state)
	assert.Empty(t, store.Goals(true))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	next, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestResizeCompact(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "Tiny", 10, model.DifficultyEasy)
	m := newTestModel(t, store)

	m, _ = update(m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	assert.Contains(t, view, "Lv 1")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(stripANSI(line))), 120)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
