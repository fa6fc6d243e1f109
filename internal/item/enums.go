// Package item models Super Mechs items: tiers, elements, slot types,
// transform ranges, and the item pack format they are loaded from.
package item

import (
	"fmt"
	"strings"
)

// Rarity is an item tier. Ordering follows transform progression.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
	Mythical
	Divine
	Perk
)

var rarityNames = [...]string{"COMMON", "RARE", "EPIC", "LEGENDARY", "MYTHICAL", "DIVINE", "PERK"}

// rarityLetters maps the single-letter codes used in transform range strings
// like "L-M".
var rarityLetters = map[string]Rarity{
	"C": Common, "R": Rare, "E": Epic, "L": Legendary,
	"M": Mythical, "D": Divine, "P": Perk,
}

// ParseRarity accepts a full tier name or its single-letter code.
func ParseRarity(s string) (Rarity, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if r, ok := rarityLetters[up]; ok {
		return r, nil
	}
	for i, name := range rarityNames {
		if name == up {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

func (r Rarity) String() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Emoji returns the colored circle the bot uses for the tier.
func (r Rarity) Emoji() string {
	switch r {
	case Common:
		return "⚪"
	case Rare:
		return "🔵"
	case Epic:
		return "🟣"
	case Legendary:
		return "🟠"
	case Mythical:
		return "🟤"
	case Divine:
		return "⚪"
	case Perk:
		return "🟡"
	}
	return "❔"
}

// Color returns the embed accent color for the tier.
func (r Rarity) Color() int {
	switch r {
	case Common:
		return 0xB1B1B1
	case Rare:
		return 0x55ACEE
	case Epic:
		return 0xCC41CC
	case Legendary:
		return 0xE0A23C
	case Mythical:
		return 0xFE6333
	case Divine:
		return 0xFFFFFF
	case Perk:
		return 0xFFFF33
	}
	return 0
}

// Element is an item's damage element.
type Element int

const (
	Physical Element = iota
	Explosive
	Electric
	Combined
	Omni
)

var elementNames = [...]string{"PHYSICAL", "EXPLOSIVE", "ELECTRIC", "COMBINED", "OMNI"}

// elementAliases carries the short in-game forms.
var elementAliases = map[string]Element{
	"PHYS": Physical, "HEAT": Explosive, "ELEC": Electric, "COMB": Combined,
}

// ParseElement accepts a full element name or its short alias.
func ParseElement(s string) (Element, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if e, ok := elementAliases[up]; ok {
		return e, nil
	}
	for i, name := range elementNames {
		if name == up {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// Color returns the embed accent color for the element.
func (e Element) Color() int {
	switch e {
	case Physical:
		return 0xFFB800
	case Explosive:
		return 0xB71010
	case Electric:
		return 0x106ED8
	case Combined:
		return 0x211D1D
	}
	return 0x000000
}

// Type is the slot an item occupies on a mech.
type Type int

const (
	Torso Type = iota
	Legs
	Drone
	SideWeapon
	TopWeapon
	Tele
	Charge
	Hook
	Module
)

var typeNames = [...]string{
	"TORSO", "LEGS", "DRONE", "SIDE_WEAPON", "TOP_WEAPON",
	"TELE", "CHARGE", "HOOK", "MODULE",
}

// ParseType accepts a slot type name as found in item packs.
func ParseType(s string) (Type, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range typeNames {
		if name == up {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Displayable reports whether the item type renders on the mech image.
func (t Type) Displayable() bool {
	switch t {
	case Tele, Charge, Hook, Module:
		return false
	}
	return true
}
