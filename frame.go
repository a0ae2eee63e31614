package spritegen

import (
	"embed"
	"fmt"
	"image"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/tptassets/spritegen/imop"
)

//go:embed frames/*.svg
var frameFiles embed.FS

// Frame returns the SVG document of a built-in frame, e.g. "border" or "badge".
func Frame(name string) ([]byte, error) {
	data, err := frameFiles.ReadFile(path.Join("frames", name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("unknown frame %q", name)
	}
	return data, nil
}

// FrameNames lists the built-in frames.
func FrameNames() []string {
	entries, _ := frameFiles.ReadDir("frames")

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}

// applyFrame rasterizes the SVG frame to the size of dst and draws it over the sprite.
func applyFrame(dst *image.NRGBA, r io.Reader) error {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return fmt.Errorf("could not parse the frame: %w", err)
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	icon.SetTarget(0, 0, float64(w), float64(h))

	layer := NewBuffer(w, h)
	scanner := rasterx.NewScannerGV(w, h, layer, layer.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	op := imop.InitOp()
	op.Set(imop.SrcOver)
	op.Draw(dst, layer)

	return nil
}
