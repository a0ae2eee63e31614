// spritegen draws debuff icons and ruin sprites and keeps a catalog of them.
//
// Usage:
//
//	spritegen debuff [type]         - Generate a 24x24 debuff icon
//	spritegen ruin [type]           - Generate a 32x32 ruin sprite
//	spritegen atlas                 - Pack every variant into one sheet
//	spritegen batch <jobs.yaml>     - Generate many sprites concurrently
//	spritegen list                  - List the catalogued sprites
//	spritegen delete <id>           - Remove a sprite from the catalog
//	spritegen setting <key> [value] - Read or write a catalog setting
//
// Global flags:
//
//	--config <path>  - Configuration file
//	--out <path>     - Output file or directory, "-" for stdout
//	--seed <value>   - RNG seed for reproducible sprites
//	--db <path>      - Catalog database path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tptassets/spritegen/config"
)

var (
	// Global flags
	flagConfig    string
	flagOut       string
	flagSeed      int64
	flagScale     int
	flagGrayscale bool
	flagFrame     string
	flagDBPath    string
	flagNoCatalog bool
	flagJSON      bool
	flagLogLevel  string
)

var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spritegen",
	Short: "Generate parametric pixel sprites",
	Long: `spritegen draws small PNG sprites from a handful of parameters:
status effect icons for game HUDs and ruined structures for maps.

Available commands:
  debuff   - Generate a debuff icon (poison, slow, weakness, confusion, fear)
  ruin     - Generate a ruin sprite (wall, pillar, statue, foundation)
  atlas    - Pack every variant into a sprite sheet
  batch    - Generate the sprites listed in a YAML job file
  list     - Show the catalogued sprites
  delete   - Remove a catalogued sprite
  setting  - Read or write a setting

Examples:
  spritegen debuff poison --severity severe
  spritegen ruin pillar --material marble --overgrown --scale 4
  spritegen ruin statue --out - > statue.png
  spritegen atlas --out sheet.png
  spritegen list --type ruin`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a configuration file")
	pf.StringVarP(&flagOut, "out", "o", "", "Output file or directory (\"-\" writes to stdout)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagScale, "scale", 1, "Nearest neighbor upscale factor")
	pf.BoolVar(&flagGrayscale, "grayscale", false, "Render the disabled (grayscale) state")
	pf.StringVar(&flagFrame, "frame", "", "Frame overlay: built-in name or SVG file")
	pf.StringVar(&flagDBPath, "db", "", "Path to the catalog database")
	pf.BoolVar(&flagNoCatalog, "no-catalog", false, "Do not record generated sprites")
	pf.BoolVar(&flagJSON, "json", false, "Print JSON instead of text")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(debuffCmd)
	rootCmd.AddCommand(ruinCmd)
	rootCmd.AddCommand(atlasCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(settingCmd)
}

// setup loads the configuration, applies the flags set on the command line
// and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(flagConfig); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output = flagOut
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("scale") {
		cfg.Export.Scale = flagScale
	}
	if flags.Changed("grayscale") {
		cfg.Export.Grayscale = flagGrayscale
	}
	if flags.Changed("frame") {
		cfg.Frame = flagFrame
	}
	if flags.Changed("db") {
		cfg.Database = flagDBPath
	}
	if flagNoCatalog {
		cfg.Catalog = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spritegen",
		Level:           level,
	})
	logger.Debug("configuration loaded", "output", cfg.Output, "seed", cfg.Seed, "catalog", cfg.Catalog)

	return nil
}
