package spritegen

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_NewBufferIsTransparent(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(DebuffIconWidth, DebuffIconHeight)
	assert.Equal(image.Rect(0, 0, 24, 24), buf.Bounds())
	for _, v := range buf.Pix {
		assert.Zero(v)
	}
}

func TestImage_EncodeDecodeIsLossless(t *testing.T) {
	assert := assert.New(t)

	src := makeNRGBAImage(image.Rect(0, 0, 16, 16), palette.Plan9)
	data, err := encodeImg(src)
	assert.NoError(err)

	raw, err := base64.StdEncoding.DecodeString(data)
	assert.NoError(err)
	assert.True(bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")))

	dst, err := decodeImg(data)
	assert.NoError(err)
	assert.Equal(src.Bounds(), dst.Bounds())
	assert.Equal(src.Pix, dst.Pix)
}

func TestImage_DecodeToNRGBA(t *testing.T) {
	rect := image.Rect(0, 0, 15, 15)
	testCases := []struct {
		name string
		img  image.Image
	}{
		{
			name: "NRGBA",
			img:  makeNRGBAImage(rect, palette.Plan9),
		},
		{
			name: "Gray",
			img:  fillDrawImage(image.NewGray(rect), palette.Plan9),
		},
		{
			name: "Paletted",
			img:  fillDrawImage(image.NewPaletted(rect, palette.WebSafe), palette.WebSafe),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := png.Encode(&buf, tc.img); err != nil {
				t.Fatalf("could not encode the test image: %v", err)
			}
			got, err := decodeImg(base64.StdEncoding.EncodeToString(buf.Bytes()))
			if err != nil {
				t.Fatalf("could not decode the test image: %v", err)
			}

			r := tc.img.Bounds()
			for y := r.Min.Y; y < r.Max.Y; y++ {
				row := got.Pix[y*got.Stride : y*got.Stride+r.Dx()*4]
				if want := readRow(tc.img, y); !compareBytes(row, want, 1) {
					t.Errorf("decoded row (y=%d): got %v want %v", y, row, want)
				}
			}
		})
	}
}

func TestImage_DecodeRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	_, err := decodeImg("not base64!")
	assert.Error(err)

	_, err = decodeImg(base64.StdEncoding.EncodeToString([]byte("not a png")))
	assert.Error(err)
}

func TestImage_CompositeCopiesCanvas(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(8, 8)
	c.SetFillStyle(color.NRGBA{R: 200, G: 10, B: 10, A: 128})
	c.FillRect(0, 0, 8, 8)

	dst := NewBuffer(8, 8)
	dst.SetNRGBA(3, 3, color.NRGBA{B: 255, A: 255})
	composite(dst, c)

	assert.Equal(c.Image().Pix, dst.Pix)
}

func makeNRGBAImage(rect image.Rectangle, colors []color.Color) *image.NRGBA {
	img := image.NewNRGBA(rect)
	fillDrawImage(img, colors)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(i / 4 % 256)
	}
	return img
}

func fillDrawImage(img draw.Image, colors []color.Color) draw.Image {
	rect := img.Bounds()
	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Set(x, y, colors[i%len(colors)])
			i++
		}
	}
	return img
}

func readRow(img image.Image, y int) []uint8 {
	row := make([]byte, img.Bounds().Dx()*4)
	i := 0
	for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
		i += 4
	}
	return row
}

func compareBytes(a, b []uint8, delta int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if int(a[i])-int(b[i]) > delta || int(b[i])-int(a[i]) > delta {
			return false
		}
	}
	return true
}
