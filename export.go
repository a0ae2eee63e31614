package spritegen

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/tptassets/spritegen/utils"
)

// ExportOptions controls how a sprite is written by Export.
type ExportOptions struct {
	// Scale enlarges the sprite by an integer factor using nearest neighbor sampling.
	// Values below 2 keep the original size.
	Scale int
	// Grayscale renders the disabled state of the sprite.
	Grayscale bool
}

// Cell is the placement of one sprite inside an atlas.
type Cell struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Transform applies the export options to the decoded sprite.
func (o ExportOptions) Transform(img *image.NRGBA) *image.NRGBA {
	if o.Grayscale {
		img = Grayscale(img)
	}
	if o.Scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*o.Scale, b.Dy()*o.Scale, imaging.NearestNeighbor)
	}
	return img
}

// Export writes the sprite to path, encoded according to the file extension
// (png, jpg, gif, tif or bmp). Without any transformation a png target
// receives the original payload byte for byte.
func Export(d *SpriteDescriptor, path string, opts ExportOptions) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported export format: %w", err)
	}
	if format == imaging.PNG && opts.Scale < 2 && !opts.Grayscale {
		return d.SaveToFile(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := EncodeTo(f, d, format, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EncodeTo decodes the sprite, applies the options and encodes it to w.
func EncodeTo(w io.Writer, d *SpriteDescriptor, format imaging.Format, opts ExportOptions) error {
	img, err := d.Image()
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, opts.Transform(img), format); err != nil {
		return fmt.Errorf("could not encode the sprite: %w", err)
	}
	return nil
}

// Atlas packs the sprites row by row on a transparent sheet with the given
// number of columns. Every cell has the size of the largest sprite.
func Atlas(descs []*SpriteDescriptor, columns int, opts ExportOptions) (*image.NRGBA, []Cell, error) {
	if len(descs) == 0 {
		return nil, nil, errors.New("atlas: no sprites")
	}
	if columns <= 0 {
		columns = len(descs)
	}

	imgs := make([]*image.NRGBA, len(descs))
	var cellW, cellH int
	for i, d := range descs {
		img, err := d.Image()
		if err != nil {
			return nil, nil, fmt.Errorf("atlas: sprite %s: %w", d.ID, err)
		}
		img = opts.Transform(img)
		imgs[i] = img
		cellW = utils.Max(cellW, img.Bounds().Dx())
		cellH = utils.Max(cellH, img.Bounds().Dy())
	}

	columns = utils.Min(columns, len(descs))
	rows := (len(descs) + columns - 1) / columns
	sheet := imaging.New(columns*cellW, rows*cellH, color.Transparent)

	cells := make([]Cell, len(descs))
	for i, img := range imgs {
		x, y := (i%columns)*cellW, (i/columns)*cellH
		sheet = imaging.Paste(sheet, img, image.Pt(x, y))
		cells[i] = Cell{
			ID:     descs[i].ID,
			Name:   descs[i].Name,
			Type:   descs[i].Type,
			X:      x,
			Y:      y,
			Width:  img.Bounds().Dx(),
			Height: img.Bounds().Dy(),
		}
	}
	return sheet, cells, nil
}
