package main

import (
	"github.com/spf13/cobra"

	"github.com/tptassets/spritegen"
)

var (
	flagAge       string
	flagCondition string
	flagMaterial  string
	flagOvergrown bool
)

var ruinCmd = &cobra.Command{
	Use:   "ruin [type]",
	Short: "Generate a 32x32 ruin sprite",
	Long: `Draw a ruined structure. The type is one of wall, pillar, statue or
foundation and defaults to wall. Unknown types are drawn as a wall.

The material sets the palette (stone, marble, sandstone, granite, wood), the
condition the amount of cracks (pristine, weathered, crumbling, collapsed) and
overgrown adds vegetation.

Examples:
  spritegen ruin
  spritegen ruin pillar --material marble --condition collapsed
  spritegen ruin foundation --overgrown --scale 4 --out map/foundation.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuin,
}

func init() {
	f := ruinCmd.Flags()
	f.StringVar(&flagAge, "age", spritegen.DefaultAge, "Age recorded in the metadata")
	f.StringVar(&flagCondition, "condition", spritegen.DefaultCondition, "Structural condition")
	f.StringVar(&flagMaterial, "material", spritegen.DefaultMaterial, "Building material")
	f.BoolVar(&flagOvergrown, "overgrown", false, "Cover the ruin with vegetation")
}

func runRuin(cmd *cobra.Command, args []string) error {
	opts, err := generatorOptions(cfg)
	if err != nil {
		return err
	}

	rc := spritegen.RuinConfig{
		Age:       flagAge,
		Condition: flagCondition,
		Material:  flagMaterial,
		Overgrown: flagOvergrown,
	}
	if len(args) > 0 {
		rc.RuinType = spritegen.RuinType(args[0])
	}

	desc, err := spritegen.NewRuinGenerator(opts).Generate(rc)
	if err != nil {
		return err
	}
	return emit("ruin", desc)
}
