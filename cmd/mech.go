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
	"github.com/Enegg/SuperMechs-bot/internal/mech"
)

var mechCmd = &cobra.Command{
	Use:   "mech <item>...",
	Short: "Assemble a mech from items and show its workshop summary",
	Long: `Resolves each argument to an item, equips it into its natural slot, and
prints the summed workshop stats. Weapons and modules fill their slots in
argument order; a second torso replaces the first.

  supermechs mech "Zarkares" "Iron Boots" "Heronmark" "Spartan Carnage"`,
	Args: cobra.MinimumNArgs(1),
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

		m := mech.New()
		slots := map[item.Type]int{}
		for _, query := range args {
			matches, err := pack.Resolve(query, 1)
			if err != nil || len(matches) == 0 {
				fmt.Printf("No item matches %q\n", query)
				os.Exit(1)
			}
			it := matches[0]

			if err := m.Equip(it, slots[it.Type]); err != nil {
				fmt.Printf("Cannot equip %q: %v\n", it.Name, err)
				os.Exit(1)
			}
			slots[it.Type]++
			fmt.Printf("Equipped %v %s\n", it.Type, it.Name)
		}
		fmt.Println()

		var arena *buffs.ArenaBuffs
		if withBuffs {
			arena = buffs.Max
		}

		summary, err := m.Sprint(reg, arena)
		if err != nil {
			fmt.Printf("Error summarizing mech: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(summary)

		if !m.IsValid() {
			fmt.Println("\nThis mech cannot battle yet (needs torso, legs, a weapon, and legal weight).")
		}
	},
}

func init() {
	rootCmd.AddCommand(mechCmd)

	mechCmd.Flags().Bool("buffs", false, "Apply maxed arena buffs to the summary")
}