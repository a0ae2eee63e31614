package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tptassets/spritegen/catalog"
)

var (
	flagType   string
	flagSearch string
	flagLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalogued sprites",
	Long: `Shows the sprites recorded in the catalog, most recently updated first.

Examples:
  spritegen list
  spritegen list --type ruin --limit 5
  spritegen list --search Poison --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagType, "type", "", "Only show this asset type (debuff_icon, ruin)")
	listCmd.Flags().StringVar(&flagSearch, "search", "", "Only show names containing this text")
	listCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of sprites (0 = all)")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	assets, err := store.Assets(catalog.Filter{
		Type:   flagType,
		Search: flagSearch,
		Limit:  flagLimit,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		if assets == nil {
			assets = []catalog.Asset{}
		}
		return printJSON(assets)
	}

	if len(assets) == 0 {
		fmt.Println("No sprites catalogued yet.")
		fmt.Println()
		fmt.Println("Run 'spritegen debuff' or 'spritegen ruin' to generate one.")
		return nil
	}

	// Calculate column widths
	nameLen := len("Name")
	for _, a := range assets {
		nameLen = max(nameLen, len(a.Name))
	}

	fmt.Printf("  %-36s  %-11s  %-*s  %-16s  %s\n", "ID", "Type", nameLen, "Name", "Updated", "File")
	fmt.Printf("  %-36s  %-11s  %-*s  %-16s  %s\n", "--", "----", nameLen, "----", "-------", "----")
	for _, a := range assets {
		file := a.FilePath
		if file == "" {
			file = "-"
		}
		fmt.Printf("  %-36s  %-11s  %-*s  %-16s  %s\n", a.ID, a.AssetType, nameLen, a.Name, formatTime(a.UpdatedAt), file)
	}
	return nil
}
