/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "supermechs",
	Short: "Super Mechs item lookup and mech workshop toolkit",
	Long: `supermechs is the command-line core of the Super Mechs bot: it loads
item packs, resolves item names from abbreviations and fuzzy input, applies
arena buffs to stats, and filters the item catalog with small predicate
expressions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.supermechs.yaml)")
	rootCmd.PersistentFlags().String("data_dir", "", "Directory holding cached item packs and stat definitions")
	rootCmd.PersistentFlags().String("pack", "default", "Key of the item pack to load")

	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data_dir"))
	viper.BindPFlag("pack", rootCmd.PersistentFlags().Lookup("pack"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".supermechs")
	}

	viper.SetEnvPrefix("supermechs")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dataDir resolves the data directory from flags, config, then a ./data
// fallback next to the working directory.
func dataDir() string {
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "data"
	}
	return filepath.Join(wd, "data")
}
