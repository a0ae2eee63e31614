package main

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/tptassets/spritegen"
)

var (
	flagColumns int
	flagKind    string
)

var atlasCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Pack every sprite variant into one sheet",
	Long: `Generate every debuff icon and ruin sprite with the default parameters and
pack them row by row on a transparent sheet. A JSON manifest with the cell of
each sprite is written next to the sheet.

Examples:
  spritegen atlas
  spritegen atlas --kind ruin --columns 2 --scale 2 --out ruins.png
  spritegen atlas --grayscale --out - > disabled.png`,
	Args: cobra.NoArgs,
	RunE: runAtlas,
}

func init() {
	atlasCmd.Flags().IntVar(&flagColumns, "columns", 5, "Number of sprites per row")
	atlasCmd.Flags().StringVar(&flagKind, "kind", "all", "Sprites to include: all, debuff or ruin")
}

// manifest describes the content of an atlas sheet.
type manifest struct {
	Image  string           `json:"image"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Cells  []spritegen.Cell `json:"cells"`
}

func runAtlas(cmd *cobra.Command, args []string) error {
	opts, err := generatorOptions(cfg)
	if err != nil {
		return err
	}

	descs, err := allVariants(opts, flagKind)
	if err != nil {
		return err
	}
	sheet, cells, err := spritegen.Atlas(descs, flagColumns, cfg.ExportOptions())
	if err != nil {
		return err
	}
	logger.Debug("atlas packed", "sprites", len(cells), "width", sheet.Bounds().Dx(), "height", sheet.Bounds().Dy())

	if cfg.Output == pipeName {
		w, err := stdout()
		if err != nil {
			return err
		}
		return imaging.Encode(w, sheet, imaging.PNG)
	}

	path := cfg.Output
	if filepath.Ext(path) == "" {
		path = filepath.Join(path, "atlas.png")
	}
	if err := writeAtlas(path, sheet, cells); err != nil {
		return err
	}
	logger.Info("atlas saved", "path", path, "sprites", len(cells))

	if flagJSON {
		return printJSON(cells)
	}
	fmt.Println(path)
	return nil
}

// allVariants generates every variant of the requested kind with default parameters.
func allVariants(opts spritegen.Options, kind string) ([]*spritegen.SpriteDescriptor, error) {
	var descs []*spritegen.SpriteDescriptor

	if kind == "all" || kind == "debuff" {
		gen := spritegen.NewDebuffIconGenerator(opts)
		for _, t := range spritegen.DebuffTypes {
			d, err := gen.Generate(spritegen.DebuffConfig{DebuffType: t})
			if err != nil {
				return nil, err
			}
			descs = append(descs, d)
		}
	}
	if kind == "all" || kind == "ruin" {
		gen := spritegen.NewRuinGenerator(opts)
		for _, t := range spritegen.RuinTypes {
			d, err := gen.Generate(spritegen.RuinConfig{RuinType: t})
			if err != nil {
				return nil, err
			}
			descs = append(descs, d)
		}
	}
	if len(descs) == 0 {
		return nil, fmt.Errorf("unknown sprite kind %q", kind)
	}
	return descs, nil
}

// writeAtlas saves the sheet and its manifest, which shares the base name of the sheet.
func writeAtlas(path string, sheet *image.NRGBA, cells []spritegen.Cell) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create the output directory: %w", err)
	}
	if err := imaging.Save(sheet, path); err != nil {
		return fmt.Errorf("unable to save the atlas: %w", err)
	}

	data, err := json.MarshalIndent(manifest{
		Image:  filepath.Base(path),
		Width:  sheet.Bounds().Dx(),
		Height: sheet.Bounds().Dy(),
		Cells:  cells,
	}, "", "  ")
	if err != nil {
		return err
	}
	manifestPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("unable to save the atlas manifest: %w", err)
	}
	return nil
}
