package tui

import (
	"context"
	"time"

	"github.com/Veraticus/ascend/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// createGoal adds a goal through the store.
func createGoal(ctx context.Context, store *engine.GoalStore, in engine.CreateGoalInput) tea.Cmd {
	return func() tea.Msg {
		goal, err := store.CreateGoal(ctx, in)
		return goalCreatedMsg{goal: goal, err: err}
	}
}

// toggleGoal completes or reopens a goal.
func toggleGoal(ctx context.Context, store *engine.GoalStore, id string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := store.ToggleGoal(ctx, id)
		return goalToggledMsg{outcome: outcome, err: err}
	}
}

// archiveGoal archives a completed goal.
func archiveGoal(ctx context.Context, store *engine.GoalStore, id string) tea.Cmd {
	return func() tea.Msg {
		goal, err := store.ArchiveGoal(ctx, id)
		return goalArchivedMsg{goal: goal, err: err}
	}
}

// deleteGoal removes a goal.
func deleteGoal(ctx context.Context, store *engine.GoalStore, id string) tea.Cmd {
	return func() tea.Msg {
		goal, err := store.DeleteGoal(ctx, id)
		return goalDeletedMsg{goal: goal, err: err}
	}
}

// dismissBannerAfter schedules the banner with seq to be hidden.
func dismissBannerAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return dismissBannerMsg{seq: seq}
	})
}
