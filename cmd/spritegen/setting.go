package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tptassets/spritegen/catalog"
)

var settingCmd = &cobra.Command{
	Use:   "setting <key> [value]",
	Short: "Read or write a setting",
	Long: `Settings are free form key/value pairs kept in the catalog database.
With one argument the current value is printed, with two it is replaced.

Examples:
  spritegen setting last_generated
  spritegen setting theme dark`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSetting,
}

func runSetting(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	key := args[0]
	if len(args) == 2 {
		if err := store.SaveSetting(key, args[1]); err != nil {
			return err
		}
		logger.Debug("setting saved", "key", key)
		return nil
	}

	value, ok, err := store.Setting(key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("setting %q is not set", key)
	}
	fmt.Println(value)
	return nil
}
