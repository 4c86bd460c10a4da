package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/ledger"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/progress"
	"github.com/Veraticus/ascend/internal/unlock"
)

// Stats returns the current progress statistics.
func (s *GoalStore) Stats() model.ProgressStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return progress.Calculate(s.goals)
}

// AvailableWeight returns the unallocated share of the weight budget.
func (s *GoalStore) AvailableWeight() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.Available(s.goals)
}

// SuggestedWeight returns preferred capped by the available weight. Once
// the budget is full it returns preferred unchanged, since creating a goal
// scales the other active goals down to make room.
func (s *GoalStore) SuggestedWeight(preferred float64) float64 {
	available := s.AvailableWeight()
	if available <= ledger.Epsilon {
		return preferred
	}
	return math.Min(preferred, available)
}

// Companions returns the whole companion catalog with unlock flags derived
// from the current point total.
func (s *GoalStore) Companions() []model.Companion {
	return unlock.ResolveCompanions(s.Stats().TotalPoints, s.catalog.Companions())
}

// Items returns the whole item catalog with unlock flags derived from the
// current point total.
func (s *GoalStore) Items() []model.Item {
	return unlock.ResolveItems(s.Stats().TotalPoints, s.catalog.Items())
}

// UnlockedCompanions returns only the companions unlocked so far.
func (s *GoalStore) UnlockedCompanions() []model.Companion {
	return unlock.OnlyUnlockedCompanions(s.Companions())
}

// UnlockedItems returns only the items unlocked so far.
func (s *GoalStore) UnlockedItems() []model.Item {
	return unlock.OnlyUnlockedItems(s.Items())
}

// Goals returns goals in creation order. Archived goals are included only
// when includeArchived is set.
func (s *GoalStore) Goals(includeArchived bool) []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Goal, 0, len(s.goals))
	for _, g := range model.CloneGoals(s.goals) {
		if g.Archived && !includeArchived {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Goal returns the goal with the given id.
func (s *GoalStore) Goal(id string) (model.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Goal{}, false
	}
	return model.CloneGoals(s.goals[idx : idx+1])[0], true
}

// ArchivedCount returns how many goals are archived.
func (s *GoalStore) ArchivedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, g := range s.goals {
		if g.Archived {
			n++
		}
	}
	return n
}

// ResolveID expands a unique id prefix into a full goal id.
func (s *GoalStore) ResolveID(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty goal id", common.ErrNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []string
	for _, g := range s.goals {
		if g.ID == prefix {
			return g.ID, nil
		}
		if strings.HasPrefix(g.ID, prefix) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: goal %q", common.ErrNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d goals", common.ErrAmbiguous, prefix, len(matches))
	}
}
