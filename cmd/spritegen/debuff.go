package main

import (
	"github.com/spf13/cobra"

	"github.com/tptassets/spritegen"
)

var (
	flagSeverity string
	flagDuration int
	flagCurable  bool
)

var debuffCmd = &cobra.Command{
	Use:   "debuff [type]",
	Short: "Generate a 24x24 debuff icon",
	Long: `Draw a status effect icon. The type is one of poison, slow, weakness,
confusion or fear and defaults to poison. Unknown types are drawn as poison.

Severity, duration and curable are recorded in the sprite metadata.

Examples:
  spritegen debuff
  spritegen debuff fear --severity severe --duration 30
  spritegen debuff slow --curable=false --out icons/slow.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDebuff,
}

func init() {
	f := debuffCmd.Flags()
	f.StringVar(&flagSeverity, "severity", spritegen.DefaultSeverity, "Severity recorded in the metadata")
	f.IntVar(&flagDuration, "duration", spritegen.DefaultDuration, "Duration recorded in the metadata")
	f.BoolVar(&flagCurable, "curable", spritegen.DefaultCurable, "Whether the effect can be cured")
}

func runDebuff(cmd *cobra.Command, args []string) error {
	opts, err := generatorOptions(cfg)
	if err != nil {
		return err
	}

	dc := spritegen.DebuffConfig{
		Severity: flagSeverity,
		Duration: flagDuration,
	}
	if len(args) > 0 {
		dc.DebuffType = spritegen.DebuffType(args[0])
	}
	if cmd.Flags().Changed("curable") {
		dc.Curable = &flagCurable
	}

	desc, err := spritegen.NewDebuffIconGenerator(opts).Generate(dc)
	if err != nil {
		return err
	}
	return emit("debuff_icon", desc)
}
