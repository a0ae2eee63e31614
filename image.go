package spritegen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/tptassets/spritegen/imop"
)

// NewBuffer allocates a fully transparent RGBA buffer of the given size.
func NewBuffer(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// composite copies every pixel of the rendered canvas verbatim into dst.
func composite(dst *image.NRGBA, c *Canvas) {
	op := imop.InitOp()
	op.Set(imop.Copy)
	op.Draw(dst, c.Image())
}

// encodeImg encodes the buffer as PNG and returns its base64 representation.
func encodeImg(img *image.NRGBA) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("could not encode the sprite: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeImg decodes a base64 PNG payload into an *image.NRGBA.
func decodeImg(data string) (*image.NRGBA, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode the sprite payload: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("could not decode the sprite image: %w", err)
	}
	return imaging.Clone(img), nil
}
