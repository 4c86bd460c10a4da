// Package goals builds goal collections for tests. Built collections
// respect the weight budget so they can be saved and loaded like real data.
//
// Example usage:
//
//	seeded := goals.NewBuilder(t).
//		WithGoal("Read", 30, model.DifficultyEasy).
//		WithGoal("Run", 20, model.DifficultyHard).Completed().
//		Build()
//
//	db := testutil.SetupTestDB(t, seeded...)
package goals

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/ascend/internal/ledger"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/progress"
)

// BaseTime is the creation time of the first built goal. Later goals are
// one minute apart.
var BaseTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// Goals is a built goal collection.
type Goals []model.Goal

// Find returns the goal with the given title, or nil if not found.
func (g Goals) Find(title string) *model.Goal {
	for i := range g {
		if g[i].Title == title {
			return &g[i]
		}
	}
	return nil
}

// MustFind returns the goal with the given title or fails the test.
func (g Goals) MustFind(t *testing.T, title string) model.Goal {
	t.Helper()
	goal := g.Find(title)
	if goal == nil {
		t.Fatalf("goal %q not found in test data", title)
	}
	return *goal
}

// Builder provides a fluent interface for constructing test goals.
// Completed and Archived apply to the most recently added goal.
type Builder struct {
	t     *testing.T
	goals Goals
}

// NewBuilder creates a new goal builder for the given test.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithGoal adds an open goal. Points follow the difficulty multiplier.
func (b *Builder) WithGoal(title string, weight float64, difficulty model.Difficulty) *Builder {
	b.t.Helper()
	points, err := progress.PointsFor(weight, difficulty)
	if err != nil {
		b.t.Fatalf("invalid goal %q: %v", title, err)
	}

	n := len(b.goals)
	b.goals = append(b.goals, model.Goal{
		ID:          fmt.Sprintf("goal-%d", n+1),
		Title:       title,
		Description: title + " description",
		Difficulty:  difficulty,
		Weight:      weight,
		Points:      points,
		CreatedAt:   BaseTime.Add(time.Duration(n) * time.Minute),
	})
	return b
}

// Completed marks the last goal completed and releases its weight.
func (b *Builder) Completed() *Builder {
	b.t.Helper()
	g := b.last()
	at := g.CreatedAt.Add(time.Hour)
	g.Completed = true
	g.CompletedAt = &at
	g.Weight = 0
	return b
}

// Archived marks the last goal archived. It must already be completed.
func (b *Builder) Archived() *Builder {
	b.t.Helper()
	g := b.last()
	if !g.Completed {
		b.t.Fatalf("goal %q must be completed before it is archived", g.Title)
	}
	g.Archived = true
	return b
}

// Build returns the goals, failing the test if they overrun the budget.
func (b *Builder) Build() Goals {
	b.t.Helper()
	if !ledger.WithinBudget(b.goals) {
		b.t.Fatalf("test goals use %.2f of the %.0f weight budget", ledger.ActiveWeight(b.goals), ledger.Budget)
	}
	return model.CloneGoals(b.goals)
}

func (b *Builder) last() *model.Goal {
	b.t.Helper()
	if len(b.goals) == 0 {
		b.t.Fatalf("no goal added yet")
	}
	return &b.goals[len(b.goals)-1]
}
