// Package catalog loads the static companion and item catalogs.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Veraticus/ascend/internal/model"
	"github.com/pelletier/go-toml/v2"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

// ErrInvalidCatalog is returned when a catalog fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog holds the ordered companion and item lists. It is read-only once
// loaded; accessors return copies.
type Catalog struct {
	companions []model.Companion
	items      []model.Item
}

type catalogFile struct {
	Companions []model.Companion `toml:"companion"`
	Items      []model.Item      `toml:"item"`
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a TOML file. An empty path yields Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates TOML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	c := &Catalog{companions: f.Companions, items: f.Items}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// New builds a catalog from in-memory lists, mainly for tests.
func New(companions []model.Companion, items []model.Item) (*Catalog, error) {
	c := &Catalog{
		companions: slices.Clone(companions),
		items:      slices.Clone(items),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks identifiers, thresholds and enumerations.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for i, comp := range c.companions {
		if err := validateEntry("companion", i, comp.ID, comp.Name, comp.RequiredPoints, comp.Rarity, seen); err != nil {
			return err
		}
	}

	seen = make(map[string]bool)
	for i, it := range c.items {
		if err := validateEntry("item", i, it.ID, it.Name, it.RequiredPoints, it.Rarity, seen); err != nil {
			return err
		}
		if !it.Type.IsValid() {
			return fmt.Errorf("%w: item %q has unknown type %q", ErrInvalidCatalog, it.ID, it.Type)
		}
	}
	return nil
}

func validateEntry(kind string, index int, id, name string, points int, rarity model.Rarity, seen map[string]bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s at index %d has no id", ErrInvalidCatalog, kind, index)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidCatalog, kind, id)
	}
	seen[id] = true
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s %q has no name", ErrInvalidCatalog, kind, id)
	}
	if points < 0 {
		return fmt.Errorf("%w: %s %q has negative required points", ErrInvalidCatalog, kind, id)
	}
	if !rarity.IsValid() {
		return fmt.Errorf("%w: %s %q has unknown rarity %q", ErrInvalidCatalog, kind, id, rarity)
	}
	return nil
}

// Companions returns the companion list in catalog order.
func (c *Catalog) Companions() []model.Companion {
	out := make([]model.Companion, len(c.companions))
	for i, comp := range c.companions {
		comp.Abilities = slices.Clone(comp.Abilities)
		comp.Unlocked = false
		out[i] = comp
	}
	return out
}

// Items returns the item list in catalog order.
func (c *Catalog) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	for i, it := range c.items {
		it.Unlocked = false
		out[i] = it
	}
	return out
}

// ByRarity returns companions sorted by rarity then threshold, leaving the
// catalog order untouched.
func ByRarity(companions []model.Companion) []model.Companion {
	out := slices.Clone(companions)
	slices.SortStableFunc(out, func(a, b model.Companion) int {
		if a.Rarity != b.Rarity {
			return a.Rarity.Rank() - b.Rarity.Rank()
		}
		return a.RequiredPoints - b.RequiredPoints
	})
	return out
}
