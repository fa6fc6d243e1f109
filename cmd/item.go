/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/lookup"
)

var itemCmd = &cobra.Command{
	Use:   "item <name>",
	Short: "Look up an item and show its stat card",
	Long: `Resolves an item by name, abbreviation (e.g. "HHC" for Heronmark Heat
Cannon) or fuzzy match, then prints its stat card. With --buffs the card
shows stats under fully maxed arena buffs, with the gain over the base
value in parentheses.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")

		withBuffs, _ := cmd.Flags().GetBool("buffs")
		maxLevel, _ := cmd.Flags().GetBool("max-level")
		limit, _ := cmd.Flags().GetInt("limit")

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

		matches, err := pack.Resolve(query, limit)
		if errors.Is(err, lookup.ErrTooManyMatches) {
			fmt.Printf("%q is ambiguous; raise --limit or be more specific\n", query)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("Error resolving %q: %v\n", query, err)
			os.Exit(1)
		}
		if len(matches) == 0 {
			fmt.Printf("No item matches %q\n", query)
			os.Exit(1)
		}

		if len(matches) > 1 {
			fmt.Printf("%q matches %d items:\n", query, len(matches))
			for _, it := range matches {
				fmt.Printf("  %v %s\n", it.Type, it.Name)
			}
			fmt.Println("\nShowing the best match.")
			fmt.Println()
		}

		var arena *buffs.ArenaBuffs
		if withBuffs {
			arena = buffs.Max
		}

		best := matches[0]
		bag := best.Stats
		if maxLevel {
			bag = best.StatsAt(item.Divine)
		}

		card, err := renderCard(best, bag, reg, arena)
		if err != nil {
			fmt.Printf("Error rendering %q: %v\n", best.Name, err)
			os.Exit(1)
		}
		fmt.Print(card)
	},
}

func init() {
	rootCmd.AddCommand(itemCmd)

	itemCmd.Flags().Bool("buffs", false, "Apply maxed arena buffs to the stat card")
	itemCmd.Flags().Bool("max-level", false, "Show the item's top-tier stats (Divine overrides when it has them)")
	itemCmd.Flags().Int("limit", lookup.DefaultLimit, "Maximum number of matches to consider")
}