package model

import "fmt"

// Rarity ranks catalog entries. Ordered common < rare < epic < legendary.
type Rarity string

// Rarity constants.
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rank returns the position of r in the rarity ordering, or -1 if r is unknown.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityRare:
		return 1
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	default:
		return -1
	}
}

// IsValid reports whether r is a known rarity.
func (r Rarity) IsValid() bool {
	return r.Rank() >= 0
}

// Less reports whether r orders before other.
func (r Rarity) Less(other Rarity) bool {
	return r.Rank() < other.Rank()
}

// ItemType classifies an item.
type ItemType string

// ItemType constants.
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
)

// IsValid reports whether t is a known item type.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeArmor, ItemTypeAccessory, ItemTypeConsumable:
		return true
	default:
		return false
	}
}

// Companion is a static catalog entry unlocked by total points.
// Unlocked is derived from the current point total and is never persisted.
type Companion struct {
	ID             string   `toml:"id" json:"id"`
	Name           string   `toml:"name" json:"name"`
	Description    string   `toml:"description" json:"description"`
	ImageRef       string   `toml:"image" json:"imageRef"`
	ModelRef       string   `toml:"model,omitempty" json:"modelRef,omitempty"`
	Rarity         Rarity   `toml:"rarity" json:"rarity"`
	Abilities      []string `toml:"abilities,omitempty" json:"abilities,omitempty"`
	RequiredPoints int      `toml:"required_points" json:"requiredPoints"`
	Unlocked       bool     `toml:"-" json:"-"`
}

// Threshold returns the point total needed to unlock the companion.
func (c Companion) Threshold() int { return c.RequiredPoints }

// Item is a static catalog entry unlocked by total points.
// Unlocked is derived from the current point total and is never persisted.
type Item struct {
	ID             string   `toml:"id" json:"id"`
	Name           string   `toml:"name" json:"name"`
	Description    string   `toml:"description" json:"description"`
	ImageRef       string   `toml:"image" json:"imageRef"`
	ModelRef       string   `toml:"model,omitempty" json:"modelRef,omitempty"`
	Rarity         Rarity   `toml:"rarity" json:"rarity"`
	Type           ItemType `toml:"type" json:"type"`
	RequiredPoints int      `toml:"required_points" json:"requiredPoints"`
	Unlocked       bool     `toml:"-" json:"-"`
}

// Threshold returns the point total needed to unlock the item.
func (i Item) Threshold() int { return i.RequiredPoints }

// UnlockKind distinguishes companion and item unlock events.
type UnlockKind string

// UnlockKind constants.
const (
	UnlockKindCompanion UnlockKind = "companion"
	UnlockKindItem      UnlockKind = "item"
)

// UnlockEvent is the single notification produced by an action that crossed
// one or more unlock thresholds.
type UnlockEvent struct {
	Kind        UnlockKind
	ID          string
	Name        string
	Description string
	ImageRef    string
	ModelRef    string
}

// Title renders the headline shown for the event.
func (e UnlockEvent) Title() string {
	switch e.Kind {
	case UnlockKindCompanion:
		return fmt.Sprintf("New companion unlocked: %s", e.Name)
	case UnlockKindItem:
		return fmt.Sprintf("New item unlocked: %s", e.Name)
	default:
		return e.Name
	}
}

// CompanionEvent builds the unlock event for c.
func CompanionEvent(c Companion) UnlockEvent {
	return UnlockEvent{
		Kind:        UnlockKindCompanion,
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageRef:    c.ImageRef,
		ModelRef:    c.ModelRef,
	}
}

// ItemEvent builds the unlock event for i.
func ItemEvent(i Item) UnlockEvent {
	return UnlockEvent{
		Kind:        UnlockKindItem,
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		ImageRef:    i.ImageRef,
		ModelRef:    i.ModelRef,
	}
}
