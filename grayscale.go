package spritegen

import (
	"image"
)

// Grayscale converts the sprite to grayscale, keeping the alpha channel intact.
// It is used to render the disabled state of an icon.
func Grayscale(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	for y := 0; y < dy; y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		for x := 0; x < dx; x++ {
			r, g, b := src.Pix[si], src.Pix[si+1], src.Pix[si+2]
			lum := uint8((float32(r)*0.299 + float32(g)*0.587 + float32(b)*0.114) + 0.5)

			dst.Pix[di] = lum
			dst.Pix[di+1] = lum
			dst.Pix[di+2] = lum
			dst.Pix[di+3] = src.Pix[si+3]

			si += 4
			di += 4
		}
	}
	return dst
}
