package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldParseHexColors(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#1b5e20", color.NRGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}},
		{"1b5e20", color.NRGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#00000080", color.NRGBA{A: 0x80}},
	}
	for _, tc := range testCases {
		c, err := ParseHex(tc.in)
		assert.NoError(err, tc.in)
		assert.Equal(tc.want, c, tc.in)
	}

	_, err := ParseHex("#12345")
	assert.Error(err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(err)
	assert.Equal(color.NRGBA{A: 0xff}, HexToRGBA("not a color"))
}

func TestUtils_AdjustBrightness(t *testing.T) {
	testCases := []struct {
		name  string
		hex   string
		delta int
		want  string
	}{
		{"lighten with marker", "#102030", 16, "#203040"},
		{"darken without marker", "102030", -16, "001020"},
		{"clamp high", "#f0f0f0", 40, "#ffffff"},
		{"clamp low", "#0a0a0a", -40, "#000000"},
		{"keep alpha", "#10203080", 1, "#11213180"},
		{"short form", "#fff", -255, "#000000"},
		{"zero delta", "#7a7a7a", 0, "#7a7a7a"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdjustBrightness(tc.hex, tc.delta))
		})
	}
}

func TestUtils_AdjustBrightnessKeepsInvalidInput(t *testing.T) {
	assert.Equal(t, "bogus", AdjustBrightness("bogus", 10))
}

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 3))
	assert.Equal(3, Max(2, 3))
	assert.Equal(1.5, Abs(-1.5))
	assert.Equal(255, Clamp(300, 0, 255))
	assert.Equal(0, Clamp(-5, 0, 255))
	assert.Equal(42, Clamp(42, 0, 255))
}
