// Package buffs implements the arena buff system: level-dependent stat
// transformations a player unlocks through arena shop upgrades. Every
// buffable stat follows one of four rules: an absolute health increase,
// a doubled percent for resistances, a negated percent for backfire, or
// a plain percent for everything else.
package buffs

import (
	"errors"
	"fmt"
	"math"
)

// percentCurve holds the percent bonus per buff level for percent-based stats.
var percentCurve = [...]int{0, 1, 3, 5, 7, 9, 11, 13, 15, 17, 20}

// healthCurve holds the flat HP bonus per buff level. Health has one more
// level than the percent stats.
var healthCurve = [...]int{0, 10, 30, 60, 90, 120, 150, 180, 220, 260, 300, 350}

// BuffableStats lists every stat the arena shop can upgrade, in display order.
var BuffableStats = [...]string{
	"eneCap", "eneReg", "eneDmg", "heaCap", "heaCol", "heaDmg", "phyDmg",
	"expDmg", "eleDmg", "phyRes", "expRes", "eleRes", "health", "backfire",
}

var (
	// ErrAbsoluteStat is returned when a percent is requested for health,
	// which buffs by a flat amount.
	ErrAbsoluteStat = errors.New("stat has an absolute increase, not a percent")

	// ErrLevelOutOfRange is returned for a buff level outside the curve.
	ErrLevelOutOfRange = errors.New("buff level out of range")
)

// statClass determines which buff rule applies to a stat.
type statClass int

const (
	classUnknown statClass = iota
	classStandard
	classResistance
	classBackfire
	classHealth
)

// classOf maps a stat name to its buff rule. All the special cases live here.
func classOf(stat string) statClass {
	switch stat {
	case "health":
		return classHealth
	case "backfire":
		return classBackfire
	case "phyRes", "expRes", "eleRes":
		return classResistance
	case "eneCap", "eneReg", "eneDmg", "heaCap", "heaCol", "heaDmg",
		"phyDmg", "expDmg", "eleDmg":
		return classStandard
	default:
		return classUnknown
	}
}

// MaxLevel returns the highest valid buff level for a stat.
// Health climbs one level further than the percent-based stats.
func MaxLevel(stat string) int {
	if classOf(stat) == classHealth {
		return len(healthCurve) - 1
	}
	return len(percentCurve) - 1
}

// Percent returns the percent bonus a stat gains at the given level.
// Requesting a percent for health is a caller bug: health buffs by a flat
// amount and has no percent form.
func Percent(stat string, level int) (int, error) {
	if level < 0 || level >= len(percentCurve) {
		return 0, fmt.Errorf("%w: %d for %s", ErrLevelOutOfRange, level, stat)
	}

	switch classOf(stat) {
	case classHealth:
		return 0, fmt.Errorf("%w: %s", ErrAbsoluteStat, stat)

	case classBackfire:
		// Backfire is a penalty stat; its "buff" reduces the penalty.
		return -percentCurve[level], nil

	case classResistance:
		return percentCurve[level] * 2, nil

	default:
		return percentCurve[level], nil
	}
}

// HealthDelta returns the flat HP bonus at the given level.
func HealthDelta(level int) (int, error) {
	if level < 0 || level >= len(healthCurve) {
		return 0, fmt.Errorf("%w: %d for health", ErrLevelOutOfRange, level)
	}
	return healthCurve[level], nil
}

// TotalBuff applies the buff for a stat at a level to a base value.
// Stats outside the buffable set pass through unchanged; that is how
// non-upgradable stats like weight or range flow through display code.
// Percent buffs round half to even, matching the game client.
func TotalBuff(stat string, level int, base int) (int, error) {
	switch classOf(stat) {
	case classUnknown:
		return base, nil

	case classHealth:
		delta, err := HealthDelta(level)
		if err != nil {
			return 0, err
		}
		return base + delta, nil

	default:
		pct, err := Percent(stat, level)
		if err != nil {
			return 0, err
		}
		return int(math.RoundToEven(float64(base) * (1 + float64(pct)/100))), nil
	}
}

// String renders the buff at a level the way the game presents it:
// "+N" for health, a signed percent for everything else.
func String(stat string, level int) (string, error) {
	if classOf(stat) == classHealth {
		delta, err := HealthDelta(level)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("+%d", delta), nil
	}

	pct, err := Percent(stat, level)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%+d%%", pct), nil
}

// Levels renders every level of a stat's buff as strings, level 0 first.
func Levels(stat string) ([]string, error) {
	out := make([]string, 0, MaxLevel(stat)+1)
	for lvl := 0; lvl <= MaxLevel(stat); lvl++ {
		s, err := String(stat, lvl)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
