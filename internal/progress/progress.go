// Package progress derives aggregate statistics, levels and goal points from
// a goal collection.
package progress

import (
	"fmt"
	"math"

	"github.com/Veraticus/ascend/internal/model"
)

// PointsPerLevel is the number of points between consecutive levels.
const PointsPerLevel = 100

// difficultyMultipliers is the canonical point table applied at goal creation.
var difficultyMultipliers = map[model.Difficulty]float64{
	model.DifficultyEasy:   1.6,
	model.DifficultyMedium: 2.0,
	model.DifficultyHard:   3.0,
}

// Multiplier returns the point multiplier for d.
func Multiplier(d model.Difficulty) (float64, error) {
	m, ok := difficultyMultipliers[d]
	if !ok {
		return 0, fmt.Errorf("invalid difficulty: %q", d)
	}
	return m, nil
}

// PointsFor computes the points a goal is worth, round(weight × multiplier).
// The value is fixed when the goal is created.
func PointsFor(weight float64, d model.Difficulty) (int, error) {
	m, err := Multiplier(d)
	if err != nil {
		return 0, err
	}
	if weight < 0 {
		weight = 0
	}
	return int(math.Round(weight * m)), nil
}

// Level returns the level reached with totalPoints. Levels start at 1.
func Level(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/PointsPerLevel + 1
}

// PointsToNextLevel returns how many points remain until the next level.
func PointsToNextLevel(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return PointsPerLevel - totalPoints%PointsPerLevel
}

// TotalPoints sums points over every completed goal, archived or not.
func TotalPoints(goals []model.Goal) int {
	total := 0
	for _, g := range goals {
		if g.Completed {
			total += g.Points
		}
	}
	return total
}

// Calculate projects goals into ProgressStats.
func Calculate(goals []model.Goal) model.ProgressStats {
	var stats model.ProgressStats
	for _, g := range goals {
		if g.Archived {
			continue
		}
		stats.TotalGoals++
		if g.Completed {
			stats.CompletedGoals++
		}
	}

	if stats.TotalGoals > 0 {
		stats.TotalProgress = float64(stats.CompletedGoals) / float64(stats.TotalGoals) * 100
	}

	stats.TotalPoints = TotalPoints(goals)
	stats.CurrentLevel = Level(stats.TotalPoints)
	stats.PointsToNextLevel = PointsToNextLevel(stats.TotalPoints)
	return stats
}
