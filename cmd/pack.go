/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

// loadPack opens the cached item pack selected by the --pack flag.
func loadPack() (*item.Pack, error) {
	key := viper.GetString("pack")
	path := fmt.Sprintf("%s/%s.json", dataDir(), key)
	pack, err := item.LoadPack(path)
	if err != nil {
		return nil, fmt.Errorf("no usable item pack %q (run `supermechs fetch` first): %w", key, err)
	}
	return pack, nil
}

// loadRegistry loads stat definitions, preferring the data directory over
// the embedded defaults.
func loadRegistry() (*stats.Registry, error) {
	return stats.LoadRegistry([]string{dataDir()})
}

// renderCard renders an item stat card over the given stat bag. With a buff
// profile, buffable stats show their buffed value and the "+N" delta; health
// stays unbuffed the way the game's stat screens show it.
func renderCard(it *item.Item, bag *stats.Bag, reg *stats.Registry, arena *buffs.ArenaBuffs) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s • %v %v\n", it.Name, it.Element, it.Type)
	fmt.Fprintf(&b, "Transform range: %v\n\n", it.Transform)

	for _, key := range bag.Keys() {
		v, _ := bag.Get(key)
		def, ok := reg.Lookup(key)
		if !ok {
			def = stats.Def{Name: key}
		}

		line, err := renderStatLine(key, v, def, arena)
		if err != nil {
			return "", err
		}
		b.WriteString(line + "\n")
	}
	return b.String(), nil
}

func renderStatLine(key string, v stats.Value, def stats.Def, arena *buffs.ArenaBuffs) (string, error) {
	if arena == nil || key == "health" {
		return fmt.Sprintf("%s %s %s", def.Emoji, v, def.Name), nil
	}

	if !v.Pair {
		buffed, delta, err := arena.TotalBuffDelta(key, v.Lo)
		if err != nil {
			return "", err
		}
		if delta == 0 {
			return fmt.Sprintf("%s %d %s", def.Emoji, buffed, def.Name), nil
		}
		return fmt.Sprintf("%s %d (%+d) %s", def.Emoji, buffed, delta, def.Name), nil
	}

	lo, dlo, err := arena.TotalBuffDelta(key, v.Lo)
	if err != nil {
		return "", err
	}
	hi, dhi, err := arena.TotalBuffDelta(key, v.Hi)
	if err != nil {
		return "", err
	}
	if dlo == 0 && dhi == 0 {
		return fmt.Sprintf("%s %d-%d %s", def.Emoji, lo, hi, def.Name), nil
	}
	return fmt.Sprintf("%s %d-%d (%+d/%+d) %s", def.Emoji, lo, hi, dlo, dhi, def.Name), nil
}