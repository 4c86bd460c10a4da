// Package storage provides the data persistence layer for the ascend application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/ascend/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrInvalidGoal   = errors.New("invalid goal")
	ErrDuplicateGoal = errors.New("duplicate goal id")
	ErrMalformedData = errors.New("malformed stored data")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateGoals checks a whole collection before it is written or after it is read.
func validateGoals(goals []model.Goal) error {
	seen := make(map[string]bool, len(goals))
	for i := range goals {
		if err := validateGoal(&goals[i]); err != nil {
			return fmt.Errorf("goal at index %d: %w", i, err)
		}
		if seen[goals[i].ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateGoal, goals[i].ID)
		}
		seen[goals[i].ID] = true
	}
	return nil
}

// validateGoal validates a single goal.
func validateGoal(g *model.Goal) error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidGoal)
	}
	if math.IsNaN(g.Weight) || math.IsInf(g.Weight, 0) {
		return fmt.Errorf("%w: weight is not a number", ErrInvalidGoal)
	}
	if g.Weight < 0 || g.Weight > 100+1e-6 {
		return fmt.Errorf("%w: weight %v outside [0,100]", ErrInvalidGoal, g.Weight)
	}
	if g.Points < 0 {
		return fmt.Errorf("%w: negative points", ErrInvalidGoal)
	}
	return nil
}
