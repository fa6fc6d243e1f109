// Package mech assembles items into a mech loadout and derives its workshop
// stat summary, including overweight penalties and arena buffs.
package mech

import (
	"fmt"
	"strings"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

// GameVars holds the weight rules of the game mode.
type GameVars struct {
	MaxWeight  int
	Overweight int
	// Penalties maps a stat to the loss per kg above MaxWeight.
	Penalties map[string]int
}

// DefaultVars are the standard arena rules: 1000 kg limit, up to 10 kg of
// tolerated overweight at 15 HP per kg.
var DefaultVars = GameVars{
	MaxWeight:  1000,
	Overweight: 10,
	Penalties:  map[string]int{"health": 15},
}

// MaxOverweight is the hard weight cap above which a mech cannot battle.
func (v GameVars) MaxOverweight() int { return v.MaxWeight + v.Overweight }

// SideWeapons and the other slot counts below match the in-game workshop.
const (
	SideWeapons = 4
	TopWeapons  = 2
	Modules     = 8
)

// Mech is a single loadout. The zero value is an empty workshop.
type Mech struct {
	Torso         *item.Item
	Legs          *item.Item
	Drone         *item.Item
	SideWeapon    [SideWeapons]*item.Item
	TopWeapon     [TopWeapons]*item.Item
	Teleporter    *item.Item
	ChargeEngine  *item.Item
	GrapplingHook *item.Item
	Module        [Modules]*item.Item

	Vars GameVars
}

// New creates an empty mech under the default game rules.
func New() *Mech {
	return &Mech{Vars: DefaultVars}
}

// Equip places an item into a slot. The slot index only matters for
// weapons and modules.
func (m *Mech) Equip(it *item.Item, slot int) error {
	switch it.Type {
	case item.Torso:
		m.Torso = it
	case item.Legs:
		m.Legs = it
	case item.Drone:
		m.Drone = it
	case item.SideWeapon:
		if slot < 0 || slot >= SideWeapons {
			return fmt.Errorf("side weapon slot %d out of range", slot)
		}
		m.SideWeapon[slot] = it
	case item.TopWeapon:
		if slot < 0 || slot >= TopWeapons {
			return fmt.Errorf("top weapon slot %d out of range", slot)
		}
		m.TopWeapon[slot] = it
	case item.Tele:
		m.Teleporter = it
	case item.Charge:
		m.ChargeEngine = it
	case item.Hook:
		m.GrapplingHook = it
	case item.Module:
		if slot < 0 || slot >= Modules {
			return fmt.Errorf("module slot %d out of range", slot)
		}
		m.Module[slot] = it
	default:
		return fmt.Errorf("cannot equip item type %v", it.Type)
	}
	return nil
}

// Items yields every equipped item, skipping empty slots.
func (m *Mech) Items() []*item.Item {
	all := []*item.Item{m.Torso, m.Legs, m.Drone}
	for _, w := range m.SideWeapon {
		all = append(all, w)
	}
	for _, w := range m.TopWeapon {
		all = append(all, w)
	}
	all = append(all, m.Teleporter, m.ChargeEngine, m.GrapplingHook)
	for _, mod := range m.Module {
		all = append(all, mod)
	}

	out := all[:0]
	for _, it := range all {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// workshopSummed lists the stats that sum across equipped items.
var workshopSummed = [...]string{
	"weight", "health", "eneCap", "eneReg", "heaCap", "heaCol",
	"phyRes", "expRes", "eleRes", "bulletCap", "rocketCap",
	"walk", "jump",
}

// Stats sums the workshop stats of every equipped item and applies the
// overweight penalty. Key order follows the workshop display.
func (m *Mech) Stats() *stats.Bag {
	sums := make(map[string]int, len(workshopSummed))
	for _, it := range m.Items() {
		for _, key := range workshopSummed {
			if v, ok := it.Stats.Get(key); ok {
				sums[key] += v.Lo
			}
		}
	}

	if over := sums["weight"] - m.Vars.MaxWeight; over > 0 {
		for stat, perKg := range m.Vars.Penalties {
			sums[stat] -= over * perKg
		}
	}

	bag := stats.NewBag()
	for _, key := range workshopSummed {
		if v, ok := sums[key]; ok && (v != 0 || key == "weight") {
			bag.Set(key, stats.Scalar(v))
		}
	}
	return bag
}

// BuffedStats applies an arena buff profile across the summed stats.
// Health is buffed here: the workshop summary always shows arena totals.
func (m *Mech) BuffedStats(a *buffs.ArenaBuffs) (*stats.Bag, error) {
	return stats.Buffed(a, m.Stats(), true)
}

// IsValid reports whether the mech can enter battle: torso, legs, at least
// one weapon, and weight within the hard cap.
func (m *Mech) IsValid() bool {
	if m.Torso == nil || m.Legs == nil {
		return false
	}
	armed := false
	for _, w := range m.SideWeapon {
		armed = armed || w != nil
	}
	for _, w := range m.TopWeapon {
		armed = armed || w != nil
	}
	if !armed {
		return false
	}
	bag := m.Stats()
	weight, _ := bag.Get("weight")
	return weight.Lo <= m.Vars.MaxOverweight()
}

// WeightUsage returns the marker the workshop shows next to the weight line.
func (m *Mech) WeightUsage() string {
	bag := m.Stats()
	weight, _ := bag.Get("weight")
	w := weight.Lo
	switch {
	case w > m.Vars.MaxOverweight():
		return "⛔"
	case w > m.Vars.MaxWeight:
		return "❕"
	case w == m.Vars.MaxWeight:
		return "👌"
	case w >= m.Vars.MaxWeight*99/100:
		return "🆗"
	case w >= 0:
		return "⚙️"
	default:
		return "🗿"
	}
}

// Sprint renders the stat summary, one line per stat, using the registry
// for names and icons. A nil buff profile renders unbuffed stats.
func (m *Mech) Sprint(reg *stats.Registry, a *buffs.ArenaBuffs) (string, error) {
	bag := m.Stats()
	if a != nil {
		var err error
		bag, err = stats.Buffed(a, bag, true)
		if err != nil {
			return "", err
		}
	}

	var b strings.Builder
	for _, key := range bag.Keys() {
		v, _ := bag.Get(key)
		def, ok := reg.Lookup(key)
		if !ok {
			def = stats.Def{Name: key}
		}
		fmt.Fprintf(&b, "%s %s %s", def.Emoji, v, def.Name)
		if key == "weight" {
			b.WriteString(" " + m.WeightUsage())
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
