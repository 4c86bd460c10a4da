// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/ascend/internal/model"
)

// GoalRepository persists the whole goal collection as one unit.
// LoadGoals returns an empty collection when nothing usable is stored.
type GoalRepository interface {
	LoadGoals(ctx context.Context) ([]model.Goal, error)
	SaveGoals(ctx context.Context, goals []model.Goal) error
}

// Storage is a GoalRepository backed by a closable resource.
type Storage interface {
	GoalRepository
	Migrate(ctx context.Context) error
	Close() error
}

// NotificationSink receives at most one unlock event per action.
// Display and dismissal timing belong to the sink.
type NotificationSink interface {
	Notify(ctx context.Context, event model.UnlockEvent)
}

// NotificationFunc adapts a function to NotificationSink.
type NotificationFunc func(ctx context.Context, event model.UnlockEvent)

// Notify calls f.
func (f NotificationFunc) Notify(ctx context.Context, event model.UnlockEvent) {
	f(ctx, event)
}
