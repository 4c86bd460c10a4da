package storage

import (
	"context"
	"log/slog"

	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/model"
)

// GoalsKey is the key holding the goal collection blob.
const GoalsKey = "goals"

// LoadGoals reads the whole goal collection. An absent or malformed blob
// yields an empty collection.
func (s *SQLiteStorage) LoadGoals(ctx context.Context) ([]model.Goal, error) {
	data, err := s.Get(ctx, GoalsKey)
	if err != nil {
		return nil, err
	}
	return decodeOrReset(data), nil
}

// SaveGoals replaces the stored goal collection.
func (s *SQLiteStorage) SaveGoals(ctx context.Context, goals []model.Goal) error {
	data, err := EncodeGoals(goals)
	if err != nil {
		return err
	}
	if err := s.Put(ctx, GoalsKey, data); err != nil {
		return err
	}

	fields := common.Fields{"count": len(goals), "bytes": len(data)}
	if rev, err := s.Revision(ctx, GoalsKey); err == nil {
		fields["revision"] = rev
	}
	common.LogDebug("Saved goals", fields)
	return nil
}

func decodeOrReset(data []byte) []model.Goal {
	if len(data) == 0 {
		return []model.Goal{}
	}
	goals, err := DecodeGoals(data)
	if err != nil {
		slog.Warn("stored goals are unreadable, starting empty", "error", err)
		return []model.Goal{}
	}
	return goals
}
