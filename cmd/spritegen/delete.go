package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tptassets/spritegen/catalog"
)

var flagPurge bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a sprite from the catalog",
	Long: `Delete the catalog entry with the given ID. With --purge the sprite file
recorded for the entry is removed as well.

Examples:
  spritegen delete 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  spritegen delete 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --purge`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&flagPurge, "purge", false, "Also remove the sprite file")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, err := catalog.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	var file string
	if flagPurge {
		a, err := store.Asset(id)
		if err != nil {
			return fmt.Errorf("sprite %s: %w", id, err)
		}
		file = a.FilePath
	}

	if err := store.DeleteAsset(id); err != nil {
		return fmt.Errorf("sprite %s: %w", id, err)
	}
	logger.Info("sprite deleted", "id", id)

	if file != "" {
		if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("unable to remove %s: %w", file, err)
		}
		logger.Info("sprite file removed", "path", file)
	}
	return nil
}
