// Package ledger maintains the 100-point weight budget shared by active goals.
//
// Every function is copy-on-write: the input slice is never modified and the
// returned slice is a fresh collection. A goal is active when it is neither
// completed nor archived; only active goals draw on the budget.
package ledger

import (
	"math"

	"github.com/Veraticus/ascend/internal/model"
)

// Budget is the total weight available to active goals.
const Budget = 100.0

// Epsilon absorbs floating point drift when comparing weight sums.
const Epsilon = 1e-9

// ActiveWeight sums the weight of every active goal.
func ActiveWeight(goals []model.Goal) float64 {
	var sum float64
	for _, g := range goals {
		if g.IsActive() {
			sum += g.Weight
		}
	}
	return sum
}

// Available returns the unallocated share of the budget, never negative.
func Available(goals []model.Goal) float64 {
	return math.Max(0, Budget-ActiveWeight(goals))
}

// Allocate makes room for a new goal requesting newWeight.
//
// Active goals are scaled by (Budget-newWeight)/ActiveWeight. When the
// request leaves no room, the budget is split evenly across the active goals
// and the new one. The returned weight is what the new goal should carry.
// Completed and archived goals are never touched.
func Allocate(goals []model.Goal, newWeight float64) ([]model.Goal, float64) {
	out := model.CloneGoals(goals)
	remaining := Budget - newWeight

	if remaining <= Epsilon {
		share := Budget / float64(countActive(out)+1)
		for i := range out {
			if out[i].IsActive() {
				out[i].Weight = share
			}
		}
		return out, share
	}

	total := ActiveWeight(out)
	if total <= Epsilon {
		// Nothing to scale.
		return out, newWeight
	}

	scale := remaining / total
	for i := range out {
		if out[i].IsActive() {
			out[i].Weight *= scale
		}
	}
	return out, newWeight
}

// ReleaseOnCompletion zeroes the weight of every completed, non-archived goal.
// Freed weight returns to the pool instead of inflating the remaining goals.
func ReleaseOnCompletion(goals []model.Goal) []model.Goal {
	out := model.CloneGoals(goals)
	for i := range out {
		if out[i].Completed && !out[i].Archived {
			out[i].Weight = 0
		}
	}
	return out
}

// ReleaseOnArchive archives the completed goal with the given id and zeroes
// its weight. It reports false, with an unchanged copy, when the goal is
// missing, not completed, or already archived.
func ReleaseOnArchive(goals []model.Goal, id string) ([]model.Goal, bool) {
	out := model.CloneGoals(goals)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if !out[i].Completed || out[i].Archived {
			return out, false
		}
		out[i].Weight = 0
		out[i].Archived = true
		return out, true
	}
	return out, false
}

// ReclaimOnDelete spreads the weight of a deleted active goal evenly over the
// remaining active goals. Deleting a completed or archived goal, or deleting
// the last active goal, leaves every weight as it was. The deleted goal is
// ignored if it is still present in goals.
func ReclaimOnDelete(goals []model.Goal, deleted model.Goal) []model.Goal {
	out := model.CloneGoals(goals)
	if !deleted.IsActive() {
		return out
	}

	remaining := 0
	for _, g := range out {
		if g.IsActive() && g.ID != deleted.ID {
			remaining++
		}
	}
	if remaining == 0 {
		return out
	}

	perGoal := deleted.Weight / float64(remaining)
	for i := range out {
		if out[i].IsActive() && out[i].ID != deleted.ID {
			out[i].Weight += perGoal
		}
	}
	return out
}

// WithinBudget reports whether the active weights respect the budget.
func WithinBudget(goals []model.Goal) bool {
	return ActiveWeight(goals) <= Budget+Epsilon
}

func countActive(goals []model.Goal) int {
	n := 0
	for _, g := range goals {
		if g.IsActive() {
			n++
		}
	}
	return n
}
