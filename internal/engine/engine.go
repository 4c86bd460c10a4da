// Package engine implements the goal lifecycle: creating, completing,
// archiving and deleting goals while keeping the weight budget, progress
// statistics and unlocks consistent.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/ascend/internal/catalog"
	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/ledger"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/progress"
	"github.com/Veraticus/ascend/internal/service"
	"github.com/Veraticus/ascend/internal/unlock"
	"github.com/google/uuid"
)

// Lifecycle errors. None of them is returned after a partial mutation.
var (
	ErrInvalidGoal     = errors.New("invalid goal")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrNotCompleted    = errors.New("goal is not completed")
	ErrAlreadyArchived = errors.New("goal is archived")
)

// Config holds configuration options for the goal store.
type Config struct {
	Now   Clock
	NewID IDGenerator
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// GoalStore owns the goal collection. Each action reads the current
// snapshot, builds a complete replacement, persists it, and only then makes
// it visible.
type GoalStore struct {
	repo    service.GoalRepository
	sink    service.NotificationSink
	catalog *catalog.Catalog
	now     Clock
	newID   IDGenerator
	goals   []model.Goal
	mu      sync.RWMutex
}

// Open loads the goal collection from repo. sink may be nil.
func Open(ctx context.Context, repo service.GoalRepository, cat *catalog.Catalog, sink service.NotificationSink) (*GoalStore, error) {
	return OpenWithConfig(ctx, repo, cat, sink, DefaultConfig())
}

// OpenWithConfig loads the goal collection with a custom clock and ID source.
func OpenWithConfig(ctx context.Context, repo service.GoalRepository, cat *catalog.Catalog, sink service.NotificationSink, cfg Config) (*GoalStore, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: goal repository", common.ErrMissingConfig)
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	s := &GoalStore{
		repo:    repo,
		sink:    sink,
		catalog: cat,
		now:     cfg.Now,
		newID:   cfg.NewID,
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory snapshot with what the repository holds.
func (s *GoalStore) Reload(ctx context.Context) error {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	if goals == nil {
		goals = []model.Goal{}
	}

	s.mu.Lock()
	s.goals = goals
	s.mu.Unlock()

	slog.Debug("loaded goals", "count", len(goals))
	return nil
}

// CreateGoalInput describes a goal to create.
type CreateGoalInput struct {
	Title       string
	Description string
	Difficulty  model.Difficulty
	Weight      float64
}

// CreateGoal validates input, makes room in the weight budget and appends
// the new goal. Invalid input is rejected before anything changes.
func (s *GoalStore) CreateGoal(ctx context.Context, in CreateGoalInput) (model.Goal, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)

	switch {
	case title == "":
		return model.Goal{}, fmt.Errorf("%w: title is required", ErrInvalidGoal)
	case description == "":
		return model.Goal{}, fmt.Errorf("%w: description is required", ErrInvalidGoal)
	case math.IsNaN(in.Weight) || in.Weight <= 0:
		return model.Goal{}, fmt.Errorf("%w: weight must be greater than 0", ErrInvalidGoal)
	case in.Weight > ledger.Budget:
		return model.Goal{}, fmt.Errorf("%w: weight cannot exceed %.0f", ErrInvalidGoal, ledger.Budget)
	}

	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = model.DefaultDifficulty
	}
	points, err := progress.PointsFor(in.Weight, difficulty)
	if err != nil {
		return model.Goal{}, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rebalanced, weight := ledger.Allocate(s.goals, in.Weight)
	goal := model.Goal{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Difficulty:  difficulty,
		Weight:      weight,
		Points:      points,
		CreatedAt:   s.now(),
	}

	if err := s.commit(ctx, append(rebalanced, goal)); err != nil {
		return model.Goal{}, err
	}

	common.LogInfo("Created goal", common.Fields{
		"id":         goal.ID,
		"weight":     goal.Weight,
		"points":     goal.Points,
		"difficulty": goal.Difficulty,
	})
	return goal, nil
}

// ToggleOutcome describes the effect of toggling a goal.
type ToggleOutcome struct {
	Notification *model.UnlockEvent
	Unlocks      unlock.Unlocks
	Goal         model.Goal
	Before       model.ProgressStats
	After        model.ProgressStats
	Completed    bool
	LeveledUp    bool
}

// ToggleGoal flips a goal between open and completed. Completing releases
// the goal's weight to the pool and may unlock catalog entries; at most one
// notification is sent per call. Reopening keeps the weight at zero.
// Archived goals cannot be toggled.
func (s *GoalStore) ToggleGoal(ctx context.Context, id string) (ToggleOutcome, error) {
	out, err := s.toggle(ctx, id)
	if err != nil {
		return ToggleOutcome{}, err
	}
	if out.Notification != nil && s.sink != nil {
		s.sink.Notify(ctx, *out.Notification)
	}
	return out, nil
}

func (s *GoalStore) toggle(ctx context.Context, id string) (ToggleOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ToggleOutcome{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	if s.goals[idx].Archived {
		return ToggleOutcome{}, fmt.Errorf("%w: %s", ErrAlreadyArchived, id)
	}

	before := progress.Calculate(s.goals)

	next := model.CloneGoals(s.goals)
	next[idx].Completed = !next[idx].Completed
	if next[idx].Completed {
		completedAt := s.now()
		next[idx].CompletedAt = &completedAt
		next = ledger.ReleaseOnCompletion(next)
	} else {
		next[idx].CompletedAt = nil
	}

	if err := s.commit(ctx, next); err != nil {
		return ToggleOutcome{}, err
	}

	after := progress.Calculate(next)
	out := ToggleOutcome{
		Goal:      next[idx],
		Before:    before,
		After:     after,
		Completed: next[idx].Completed,
		LeveledUp: after.CurrentLevel > before.CurrentLevel,
	}

	if after.TotalPoints > before.TotalPoints {
		out.Unlocks = unlock.Diff(before.TotalPoints, after.TotalPoints, s.catalog.Companions(), s.catalog.Items())
		if event, ok := out.Unlocks.Notification(); ok {
			out.Notification = &event
		}
	}

	slog.Info("Toggled goal",
		"id", id,
		"completed", out.Completed,
		"total_points", after.TotalPoints,
		"level", after.CurrentLevel)
	return out, nil
}

// DeleteGoal removes a goal. An active goal's weight is spread evenly over
// the remaining active goals.
func (s *GoalStore) DeleteGoal(ctx context.Context, id string) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}

	deleted := s.goals[idx]
	remaining := make([]model.Goal, 0, len(s.goals)-1)
	remaining = append(remaining, s.goals[:idx]...)
	remaining = append(remaining, s.goals[idx+1:]...)

	if err := s.commit(ctx, ledger.ReclaimOnDelete(remaining, deleted)); err != nil {
		return model.Goal{}, err
	}

	slog.Info("Deleted goal", "id", id, "released_weight", deleted.Weight)
	return deleted, nil
}

// ArchiveGoal archives a completed goal. Its points keep counting toward
// the total; its weight stays released.
func (s *GoalStore) ArchiveGoal(ctx context.Context, id string) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	if s.goals[idx].Archived {
		return model.Goal{}, fmt.Errorf("%w: %s", ErrAlreadyArchived, id)
	}
	if !s.goals[idx].Completed {
		return model.Goal{}, fmt.Errorf("%w: %s", ErrNotCompleted, id)
	}

	next, changed := ledger.ReleaseOnArchive(s.goals, id)
	if !changed {
		return model.Goal{}, fmt.Errorf("%w: %s", ErrNotCompleted, id)
	}
	if err := s.commit(ctx, next); err != nil {
		return model.Goal{}, err
	}

	slog.Info("Archived goal", "id", id)
	return next[idx], nil
}

// commit persists next and then publishes it. The caller holds s.mu.
func (s *GoalStore) commit(ctx context.Context, next []model.Goal) error {
	if err := s.repo.SaveGoals(ctx, next); err != nil {
		return fmt.Errorf("failed to persist goals: %w", err)
	}
	s.goals = next
	if !ledger.WithinBudget(next) {
		slog.Warn("active weights exceed budget", "active_weight", ledger.ActiveWeight(next))
	}
	return nil
}

func (s *GoalStore) indexOf(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}
