// Package imop implements the composition operations used when a rendered
// layer is merged into a sprite buffer.
//
// The sprite pipeline relies on Copy to transfer the rendered vector canvas
// into the destination buffer without any blending. SrcOver and DstOver are the
// two Porter-Duff operators needed for frame overlays and exports.
package imop

import (
	"image"
	"image/color"

	"github.com/tptassets/spritegen/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
)

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp initializes a new Composite with Copy as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: Copy,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
		},
	}
}

// Set activates one of the supported composition operations.
// Unsupported operations are ignored.
func (op *Composite) Set(cop string) {
	for _, o := range op.ops {
		if o == cop {
			op.current = cop
			return
		}
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src onto dst in place, over the intersection of both bounds.
// Pixels are addressed from the min point of each image, so buffers of equal
// size are matched pixel for pixel.
func (op *Composite) Draw(dst, src *image.NRGBA) {
	dx := utils.Min(src.Bounds().Dx(), dst.Bounds().Dx())
	dy := utils.Min(src.Bounds().Dy(), dst.Bounds().Dy())

	for y := 0; y < dy; y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)

		if op.current == Copy {
			copy(dst.Pix[di:di+dx*4], src.Pix[si:si+dx*4])
			continue
		}
		for x := 0; x < dx; x++ {
			s := color.NRGBA{R: src.Pix[si], G: src.Pix[si+1], B: src.Pix[si+2], A: src.Pix[si+3]}
			d := color.NRGBA{R: dst.Pix[di], G: dst.Pix[di+1], B: dst.Pix[di+2], A: dst.Pix[di+3]}

			var c color.NRGBA
			switch op.current {
			case SrcOver:
				c = over(s, d)
			case DstOver:
				c = over(d, s)
			}
			dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2], dst.Pix[di+3] = c.R, c.G, c.B, c.A

			si += 4
			di += 4
		}
	}
}

// over places the fg color over the bg color with straight (non-premultiplied) alpha.
func over(fg, bg color.NRGBA) color.NRGBA {
	if fg.A == 0xff || bg.A == 0 {
		return fg
	}
	if fg.A == 0 {
		return bg
	}

	fa := float64(fg.A) / 255
	ba := float64(bg.A) / 255
	oa := fa + ba*(1-fa)

	mix := func(f, b uint8) uint8 {
		v := (float64(f)*fa + float64(b)*ba*(1-fa)) / oa
		return uint8(utils.Clamp(v+0.5, 0, 255))
	}

	return color.NRGBA{
		R: mix(fg.R, bg.R),
		G: mix(fg.G, bg.G),
		B: mix(fg.B, bg.B),
		A: uint8(utils.Clamp(oa*255+0.5, 0, 255)),
	}
}
