package item

import (
	"fmt"

	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

// Tags is an item's tag set ("sword", "melee", "ignore in search"...).
type Tags []string

// Has reports whether the tag is present.
func (t Tags) Has(tag string) bool {
	for _, have := range t {
		if have == tag {
			return true
		}
	}
	return false
}

// Item is a single Super Mechs item as loaded from an item pack.
type Item struct {
	ID        int
	Name      string
	Type      Type
	Element   Element
	Transform TransformRange
	Stats     *stats.Bag
	// Divine holds the stat overrides applied at Divine tier, nil for
	// items that never reach it.
	Divine   *stats.Bag
	Tags     Tags
	ImageURL string
	Pack     string
}

func (i *Item) String() string { return i.Name }

// Weight returns the item's weight, 0 when the pack omits it.
func (i *Item) Weight() int {
	if v, ok := i.Stats.Get("weight"); ok {
		return v.Lo
	}
	return 0
}

// Attr exposes the item to the predicate engine. Known names: id, name,
// type, element, rarity (top tier), transform_range, tags, weight, and
// every stat code the item carries (scalars as ints, spreads as values).
func (i *Item) Attr(name string) (any, bool) {
	switch name {
	case "id":
		return i.ID, true
	case "name":
		return i.Name, true
	case "type":
		return i.Type.String(), true
	case "element":
		return i.Element.String(), true
	case "rarity":
		return i.Transform.Max().String(), true
	case "transform_range":
		return i.Transform, true
	case "tags":
		return i.Tags, true
	case "weight":
		return i.Weight(), true
	}

	if v, ok := i.Stats.Get(name); ok {
		if v.Pair {
			return v, true
		}
		return v.Lo, true
	}
	return nil, false
}

// StatsAt returns the stat bag effective at a tier: the Divine overrides
// when the item sits at Divine and has them, the base stats otherwise.
func (i *Item) StatsAt(r Rarity) *stats.Bag {
	if r == Divine && i.Divine != nil && i.Divine.Len() > 0 {
		return i.Divine
	}
	return i.Stats
}

func (i *Item) validate() error {
	if i.Name == "" {
		return fmt.Errorf("item %d has no name", i.ID)
	}
	if i.Stats == nil || i.Stats.Len() == 0 {
		return fmt.Errorf("item %q has no stats", i.Name)
	}
	return nil
}
