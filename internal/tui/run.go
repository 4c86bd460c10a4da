package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/ascend/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the goal board until the user quits or ctx is canceled.
func Run(ctx context.Context, store *engine.GoalStore, opts ...Option) error {
	if store == nil {
		return fmt.Errorf("goal store is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := tea.NewProgram(
		newModel(ctx, store, cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("board error: %w", err)
	}
	return nil
}
