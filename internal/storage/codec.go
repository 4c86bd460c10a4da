package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/ascend/internal/model"
)

// EncodeGoals serializes the goal collection into the stored blob format.
func EncodeGoals(goals []model.Goal) ([]byte, error) {
	if goals == nil {
		goals = []model.Goal{}
	}
	if err := validateGoals(goals); err != nil {
		return nil, err
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return nil, fmt.Errorf("failed to encode goals: %w", err)
	}
	return data, nil
}

// DecodeGoals parses a stored blob. Goals written before archiving existed
// decode with Archived false.
func DecodeGoals(data []byte) ([]model.Goal, error) {
	var goals []model.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if err := validateGoals(goals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if goals == nil {
		goals = []model.Goal{}
	}
	return goals, nil
}
