/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
)

var buffsCmd = &cobra.Command{
	Use:   "buffs [stat]",
	Short: "Show the arena buff curve for every stat, or one stat",
	Long: `Prints the per-level buff values for the arena shop stats. Health climbs
a flat HP curve with one extra level; resistances gain double the percent
curve; backfire's buff reduces the penalty.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := loadRegistry()
		if err != nil {
			fmt.Printf("Error loading stat definitions: %v\n", err)
			os.Exit(1)
		}

		which := buffs.BuffableStats[:]
		if len(args) == 1 {
			stat := args[0]
			found := false
			for _, s := range which {
				if s == stat {
					found = true
					break
				}
			}
			if !found {
				fmt.Printf("%q is not a buffable stat. Buffable: %s\n",
					stat, strings.Join(which, ", "))
				os.Exit(1)
			}
			which = []string{stat}
		}

		for _, stat := range which {
			name := stat
			if def, ok := reg.Lookup(stat); ok {
				name = def.Name
			}

			levels, err := buffs.Levels(stat)
			if err != nil {
				fmt.Printf("Error rendering buff curve for %s: %v\n", stat, err)
				os.Exit(1)
			}
			fmt.Printf("%-18s %s\n", name, strings.Join(levels, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(buffsCmd)
}