// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the effort label chosen when a goal is created.
type Difficulty string

// Difficulty constants.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when no difficulty is supplied.
const DefaultDifficulty = DifficultyMedium

// IsValid reports whether d is one of the known difficulty labels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// ParseDifficulty converts user input into a Difficulty.
// An empty string yields DefaultDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultDifficulty, nil
	}
	d := Difficulty(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// Goal is a single tracked objective. Weight is a share, in percentage
// points, of the 100-point budget held by active goals.
type Goal struct {
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Weight      float64    `json:"weight"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	Archived    bool       `json:"archived"`
}

// IsActive reports whether the goal still draws on the weight budget.
func (g Goal) IsActive() bool {
	return !g.Completed && !g.Archived
}

// Status returns a short label for display.
func (g Goal) Status() string {
	switch {
	case g.Archived:
		return "archived"
	case g.Completed:
		return "completed"
	default:
		return "active"
	}
}

// CloneGoals returns a copy of goals that shares no CompletedAt pointers
// with the input.
func CloneGoals(goals []Goal) []Goal {
	if goals == nil {
		return nil
	}
	out := make([]Goal, len(goals))
	for i, g := range goals {
		if g.CompletedAt != nil {
			t := *g.CompletedAt
			g.CompletedAt = &t
		}
		out[i] = g
	}
	return out
}
