/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

var compareCmd = &cobra.Command{
	Use:   "compare <item> <item>",
	Short: "Compare the stats of two items side by side",
	Long: `Resolves two items and prints their stats next to each other, in workshop
order. Stats only one of the items has show a dash on the other side.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		withBuffs, _ := cmd.Flags().GetBool("buffs")

		pack, err := loadPack()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		reg, err := loadRegistry()
		if err != nil {
			fmt.Printf("Error loading stat definitions: %v\n", err)
			os.Exit(1)
		}

		items := make([]*item.Item, 2)
		for i, query := range args {
			matches, err := pack.Resolve(query, 1)
			if err != nil || len(matches) == 0 {
				fmt.Printf("No item matches %q\n", query)
				os.Exit(1)
			}
			items[i] = matches[0]
		}

		var arena *buffs.ArenaBuffs
		if withBuffs {
			arena = buffs.Max
		}

		out, err := renderComparison(items[0], items[1], reg, arena)
		if err != nil {
			fmt.Printf("Error comparing items: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

// renderComparison lines both items up over the union of their stats,
// ordered the way the workshop lists stats.
func renderComparison(a, b *item.Item, reg *stats.Registry, arena *buffs.ArenaBuffs) (string, error) {
	out := fmt.Sprintf("%s  vs  %s\n", a.Name, b.Name)
	out += fmt.Sprintf("%v %v  vs  %v %v\n\n", a.Element, a.Type, b.Element, b.Type)

	for _, key := range statUnion(a, b, reg) {
		def, ok := reg.Lookup(key)
		if !ok {
			def = stats.Def{Name: key}
		}

		left, err := comparisonCell(a, key, arena)
		if err != nil {
			return "", err
		}
		right, err := comparisonCell(b, key, arena)
		if err != nil {
			return "", err
		}
		out += fmt.Sprintf("%s %-12s %10s | %-10s\n", def.Emoji, def.Name, left, right)
	}
	return out, nil
}

func comparisonCell(it *item.Item, key string, arena *buffs.ArenaBuffs) (string, error) {
	v, ok := it.Stats.Get(key)
	if !ok {
		return "-", nil
	}
	if arena == nil || key == "health" {
		return v.String(), nil
	}

	lo, err := arena.TotalBuff(key, v.Lo)
	if err != nil {
		return "", err
	}
	if !v.Pair {
		return fmt.Sprintf("%d", lo), nil
	}
	hi, err := arena.TotalBuff(key, v.Hi)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d", lo, hi), nil
}

// statUnion returns the stat keys either item carries, in registry order,
// with keys unknown to the registry appended in first-seen order.
func statUnion(a, b *item.Item, reg *stats.Registry) []string {
	present := make(map[string]bool)
	var extras []string
	for _, it := range []*item.Item{a, b} {
		for _, key := range it.Stats.Keys() {
			if present[key] {
				continue
			}
			present[key] = true
			if _, ok := reg.Lookup(key); !ok {
				extras = append(extras, key)
			}
		}
	}

	var keys []string
	for _, key := range reg.Order() {
		if present[key] {
			keys = append(keys, key)
		}
	}
	return append(keys, extras...)
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Bool("buffs", false, "Compare under maxed arena buffs")
}