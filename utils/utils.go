// Package utils holds small helpers shared by the sprite generators:
// generic numeric helpers and hex color conversion.
package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA converts a hex color string to color.NRGBA.
// The leading '#' is optional and 3, 6 or 8 digit forms are accepted.
// Malformed input yields opaque black.
func HexToRGBA(hex string) color.NRGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}

// ParseHex parses a hex color string such as "#1b5e20", "1b5e20", "#fff" or "#1b5e2080".
func ParseHex(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	if len(s) == 6 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// RGBAToHex formats c as a lower case "rrggbb" string, with "aa" appended when
// withAlpha is set. The '#' marker is added only if hash is true.
func RGBAToHex(c color.NRGBA, hash, withAlpha bool) string {
	var prefix string
	if hash {
		prefix = "#"
	}
	if withAlpha {
		return fmt.Sprintf("%s%02x%02x%02x%02x", prefix, c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("%s%02x%02x%02x", prefix, c.R, c.G, c.B)
}

// AdjustBrightness adds delta to each RGB channel of the hex color,
// clamping every channel to [0, 255]. The result keeps the input's format:
// the '#' marker is preserved or omitted, and an alpha byte is carried over.
// Short "#rgb" input is returned in the six digit form.
func AdjustBrightness(hex string, delta int) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	shift := func(v uint8) uint8 {
		return uint8(Clamp(int(v)+delta, 0, 255))
	}
	c.R, c.G, c.B = shift(c.R), shift(c.G), shift(c.B)

	s := strings.TrimPrefix(hex, "#")
	return RGBAToHex(c, strings.HasPrefix(hex, "#"), len(s) == 8)
}
