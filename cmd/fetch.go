/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Enegg/SuperMechs-bot/internal/fetch"
	"github.com/Enegg/SuperMechs-bot/internal/item"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download an item pack into the local data directory",
	Long: `Downloads an item pack document and caches it locally so every other
command can run offline. Without a URL the canonical community pack is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := fetch.DefaultPackURL
		if len(args) == 1 {
			url = args[0]
		}

		force, _ := cmd.Flags().GetBool("force")
		key := viper.GetString("pack")

		client := fetch.NewClient(dataDir(), force)

		fmt.Printf("Fetching item pack %q into %s\n", key, dataDir())

		path, err := client.FetchPack(context.Background(), url, key, func(total int64) io.Writer {
			return progressbar.DefaultBytes(total, "Downloading pack")
		})
		if err != nil {
			fmt.Printf("Error fetching pack: %v\n", err)
			os.Exit(1)
		}

		pack, err := item.LoadPack(path)
		if err != nil {
			fmt.Printf("Downloaded pack failed to decode: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Pack %q ready: %d items\n", pack.Config.Name, len(pack.Items))
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().Bool("force", false, "Force redownload of an existing pack")
}