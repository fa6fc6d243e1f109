/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/parser"
	"github.com/Enegg/SuperMechs-bot/internal/query"
	"github.com/Enegg/SuperMechs-bot/internal/rules"
)

var searchCmd = &cobra.Command{
	Use:   "search <filter>",
	Short: "Filter the item catalog with a small query language",
	Long: `Filters items with comparisons joined by & (and) and | (or):

  supermechs search 'type = TORSO & weight <= 400'
  supermechs search 'rarity = L | rarity = M'
  supermechs search 'name ~ "Heat" & element = EXPLOSIVE'

Fields: id, name, type, element, rarity, transform_range, tags, weight,
plus any stat key (eneCap, phyDmg, ...). The ~ operator does substring
match on strings and membership on tags.

With --formula the argument is a CEL expression instead:

  supermechs search --formula 'stats.eneCap >= 200 && element == "ELECTRIC"'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		formula, _ := cmd.Flags().GetBool("formula")

		pack, err := loadPack()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		var matches []*item.Item
		if formula {
			matches, err = searchFormula(input, pack.Items)
		} else {
			matches, err = searchFilter(input, pack.Items)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if len(matches) == 0 {
			fmt.Println("No items match.")
			return
		}
		for _, it := range matches {
			fmt.Printf("%v %-10v %-8v %s\n", it.Transform.Max().Emoji(), it.Element, it.Type, it.Name)
		}
		fmt.Printf("\n%d of %d items\n", len(matches), len(pack.Items))
	},
}

func searchFilter(input string, items []*item.Item) ([]*item.Item, error) {
	pred, err := parser.ParseAndCompile(input)
	if err != nil {
		return nil, err
	}

	mgr := query.NewManager(items...)
	matches, err := mgr.FindAll(pred)
	if err != nil {
		return nil, fmt.Errorf("filter failed: %w", err)
	}
	return matches, nil
}

func searchFormula(input string, items []*item.Item) ([]*item.Item, error) {
	ev, err := rules.NewEvaluator()
	if err != nil {
		return nil, err
	}
	return ev.FilterItems(input, items)
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Bool("formula", false, "Treat the argument as a CEL formula")
}