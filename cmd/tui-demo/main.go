// Package main runs the goal board against throwaway in-memory data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/ascend/internal/catalog"
	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/storage"
	"github.com/Veraticus/ascend/internal/tui"
	"github.com/Veraticus/ascend/internal/tui/themes"
)

var demoGoals = []engine.CreateGoalInput{
	{Title: "Morning run", Description: "Run 5k before work", Difficulty: model.DifficultyMedium, Weight: 20},
	{Title: "Read Dune", Description: "Finish the whole book", Difficulty: model.DifficultyEasy, Weight: 15},
	{Title: "Ship side project", Description: "Deploy v1 and tell three people", Difficulty: model.DifficultyHard, Weight: 35},
	{Title: "Learn knife skills", Description: "Julienne without looking", Difficulty: model.DifficultyMedium, Weight: 10},
	{Title: "Declutter garage", Description: "Everything sorted or gone", Difficulty: model.DifficultyEasy, Weight: 20},
}

func main() {
	ctx := context.Background()

	store, err := engine.Open(ctx, storage.NewMemoryStorage(), catalog.Default(), nil)
	if err != nil {
		fail(err)
	}
	for _, in := range demoGoals {
		if _, err := store.CreateGoal(ctx, in); err != nil {
			fail(err)
		}
	}

	theme := themes.Default
	if len(os.Args) > 1 {
		theme = themes.GetTheme(os.Args[1])
	}

	if err := tui.Run(ctx, store, tui.WithTheme(theme), tui.WithSize(120, 40)); err != nil {
		fail(err)
	}
}

func fail(err error) {
	// Use explicit error check to satisfy forbidigo
	_, _ = fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
	os.Exit(1)
}
