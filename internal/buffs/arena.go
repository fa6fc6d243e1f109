package buffs

import (
	"fmt"
	"strings"
)

// ArenaBuffs tracks a player's buff level for every buffable stat.
// Instances are built once per player profile and read concurrently after
// that; mutation happens only during construction.
type ArenaBuffs struct {
	levels map[string]int
}

// NewArenaBuffs creates a profile with every buff at level 0.
func NewArenaBuffs() *ArenaBuffs {
	levels := make(map[string]int, len(BuffableStats))
	for _, stat := range BuffableStats {
		levels[stat] = 0
	}
	return &ArenaBuffs{levels: levels}
}

// ArenaBuffsAt creates a profile from explicit levels. Stats absent from the
// map stay at level 0. Levels outside the stat's curve are rejected.
func ArenaBuffsAt(levels map[string]int) (*ArenaBuffs, error) {
	a := NewArenaBuffs()
	for stat, lvl := range levels {
		if lvl < 0 || lvl > MaxLevel(stat) {
			return nil, fmt.Errorf("%w: %d for %s", ErrLevelOutOfRange, lvl, stat)
		}
		if _, ok := a.levels[stat]; ok {
			a.levels[stat] = lvl
		}
	}
	return a, nil
}

// Max is the fully upgraded profile: every stat at the top of its curve.
// It is built once at startup and shared read-only by comparison and
// display code.
var Max = maxed()

func maxed() *ArenaBuffs {
	a := NewArenaBuffs()
	for _, stat := range BuffableStats {
		a.levels[stat] = MaxLevel(stat)
	}
	return a
}

// Level returns the profile's level for a stat, 0 for unknown stats.
func (a *ArenaBuffs) Level(stat string) int {
	return a.levels[stat]
}

// IsAtZero reports whether every buff is still at level 0.
func (a *ArenaBuffs) IsAtZero() bool {
	for _, lvl := range a.levels {
		if lvl != 0 {
			return false
		}
	}
	return true
}

// TotalBuff buffs a base value according to the profile's level for the stat.
// Unknown stats pass through unchanged.
func (a *ArenaBuffs) TotalBuff(stat string, base int) (int, error) {
	return TotalBuff(stat, a.levels[stat], base)
}

// TotalBuffDelta buffs a base value and also returns the difference between
// the buffed total and the base, used to render "+N" annotations.
func (a *ArenaBuffs) TotalBuffDelta(stat string, base int) (buffed, delta int, err error) {
	buffed, err = a.TotalBuff(stat, base)
	if err != nil {
		return 0, 0, err
	}
	return buffed, buffed - base, nil
}

// StringFor renders the profile's buff for a stat ("+220", "-11%", "+30%").
func (a *ArenaBuffs) StringFor(stat string) (string, error) {
	return String(stat, a.levels[stat])
}

func (a *ArenaBuffs) String() string {
	var b strings.Builder
	b.WriteString("<ArenaBuffs ")
	for i, stat := range BuffableStats {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", stat, a.levels[stat])
	}
	b.WriteString(">")
	return b.String()
}
