// Package unlock maps point totals onto the companion and item catalogs.
package unlock

import "github.com/Veraticus/ascend/internal/model"

// Thresholded is a catalog entry with a required point total.
type Thresholded interface {
	Threshold() int
}

// ResolveCompanions returns a copy of catalog with Unlocked set from
// totalPoints. Order is preserved.
func ResolveCompanions(totalPoints int, catalog []model.Companion) []model.Companion {
	out := make([]model.Companion, len(catalog))
	for i, c := range catalog {
		c.Unlocked = totalPoints >= c.RequiredPoints
		out[i] = c
	}
	return out
}

// ResolveItems returns a copy of catalog with Unlocked set from totalPoints.
// Order is preserved.
func ResolveItems(totalPoints int, catalog []model.Item) []model.Item {
	out := make([]model.Item, len(catalog))
	for i, it := range catalog {
		it.Unlocked = totalPoints >= it.RequiredPoints
		out[i] = it
	}
	return out
}

// Unlocks holds the entries whose thresholds were crossed by a single action.
type Unlocks struct {
	Companions []model.Companion
	Items      []model.Item
}

// Empty reports whether nothing was unlocked.
func (u Unlocks) Empty() bool {
	return len(u.Companions) == 0 && len(u.Items) == 0
}

// Notification picks the one event to surface: the first companion in
// catalog order, else the first item.
func (u Unlocks) Notification() (model.UnlockEvent, bool) {
	if len(u.Companions) > 0 {
		return model.CompanionEvent(u.Companions[0]), true
	}
	if len(u.Items) > 0 {
		return model.ItemEvent(u.Items[0]), true
	}
	return model.UnlockEvent{}, false
}

// Diff returns entries with oldPoints < threshold <= newPoints.
// It is empty unless newPoints > oldPoints.
func Diff(oldPoints, newPoints int, companions []model.Companion, items []model.Item) Unlocks {
	if newPoints <= oldPoints {
		return Unlocks{}
	}
	u := Unlocks{
		Companions: crossed(oldPoints, newPoints, companions),
		Items:      crossed(oldPoints, newPoints, items),
	}
	for i := range u.Companions {
		u.Companions[i].Unlocked = true
	}
	for i := range u.Items {
		u.Items[i].Unlocked = true
	}
	return u
}

func crossed[T Thresholded](oldPoints, newPoints int, entries []T) []T {
	var out []T
	for _, e := range entries {
		if t := e.Threshold(); t > oldPoints && t <= newPoints {
			out = append(out, e)
		}
	}
	return out
}

// OnlyUnlockedCompanions filters a resolved catalog down to unlocked entries.
func OnlyUnlockedCompanions(resolved []model.Companion) []model.Companion {
	var out []model.Companion
	for _, c := range resolved {
		if c.Unlocked {
			out = append(out, c)
		}
	}
	return out
}

// OnlyUnlockedItems filters a resolved catalog down to unlocked entries.
func OnlyUnlockedItems(resolved []model.Item) []model.Item {
	var out []model.Item
	for _, it := range resolved {
		if it.Unlocked {
			out = append(out, it)
		}
	}
	return out
}
