package spritegen

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvas_FillRect(t *testing.T) {
	assert := assert.New(t)
	c := NewCanvas(10, 10)
	red := color.NRGBA{R: 255, A: 255}

	c.SetFillStyle(red)
	c.FillRect(2, 2, 4, 4)

	assert.Equal(red, c.Image().NRGBAAt(3, 3))
	assert.Zero(c.Image().NRGBAAt(7, 7).A)
	assert.Zero(c.Image().NRGBAAt(1, 1).A)
}

func TestCanvas_FillPathAndEllipse(t *testing.T) {
	assert := assert.New(t)
	c := NewCanvas(20, 20)
	blue := color.NRGBA{B: 255, A: 255}

	c.SetFillStyle(blue)
	c.BeginPath()
	c.Ellipse(10, 10, 6, 3)
	c.Fill()

	assert.Equal(blue, c.Image().NRGBAAt(10, 10))
	assert.Equal(blue, c.Image().NRGBAAt(14, 10))
	assert.Zero(c.Image().NRGBAAt(10, 15).A)
	assert.Zero(c.Image().NRGBAAt(1, 10).A)
}

func TestCanvas_ArcMakesAFullCircle(t *testing.T) {
	assert := assert.New(t)
	c := NewCanvas(20, 20)
	green := color.NRGBA{G: 255, A: 255}

	c.SetFillStyle(green)
	c.BeginPath()
	c.Arc(10, 10, 5, 0, tau, false)
	c.ClosePath()
	c.Fill()

	assert.Equal(green, c.Image().NRGBAAt(10, 10))
	assert.Equal(green, c.Image().NRGBAAt(6, 10))
	assert.Equal(green, c.Image().NRGBAAt(10, 6))
	assert.Zero(c.Image().NRGBAAt(2, 2).A)
}

func TestCanvas_StrokeAndDash(t *testing.T) {
	assert := assert.New(t)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	solid := NewCanvas(20, 10)
	solid.SetStrokeStyle(white)
	solid.SetLineWidth(2)
	solid.BeginPath()
	solid.MoveTo(0, 5)
	solid.LineTo(20, 5)
	solid.Stroke()

	dashed := NewCanvas(20, 10)
	dashed.SetStrokeStyle(white)
	dashed.SetLineWidth(2)
	dashed.SetLineDash(4, 4)
	dashed.BeginPath()
	dashed.MoveTo(0, 5)
	dashed.LineTo(20, 5)
	dashed.Stroke()

	var solidSum, dashedSum int
	for x := 0; x < 20; x++ {
		solidSum += int(solid.Image().NRGBAAt(x, 4).A)
		dashedSum += int(dashed.Image().NRGBAAt(x, 4).A)
	}
	assert.Greater(solidSum, dashedSum)
	assert.Greater(dashedSum, 0)
	assert.Zero(solid.Image().NRGBAAt(10, 8).A)
}

func TestCanvas_QuadraticAndBezierCurves(t *testing.T) {
	c := NewCanvas(20, 20)
	c.SetFillStyle(color.NRGBA{R: 200, A: 255})
	c.BeginPath()
	c.MoveTo(2, 18)
	c.QuadraticCurveTo(10, 0, 18, 18)
	c.ClosePath()
	c.Fill()
	assert.NotZero(t, c.Image().NRGBAAt(10, 14).A)

	c = NewCanvas(20, 20)
	c.SetFillStyle(color.NRGBA{R: 200, A: 255})
	c.BeginPath()
	c.MoveTo(2, 18)
	c.BezierCurveTo(2, 2, 18, 2, 18, 18)
	c.ClosePath()
	c.Fill()
	assert.NotZero(t, c.Image().NRGBAAt(10, 12).A)
	assert.Zero(t, c.Image().NRGBAAt(10, 1).A)
}

func TestCanvas_ArcSweep(t *testing.T) {
	testCases := []struct {
		name   string
		a0, a1 float64
		ccw    bool
		want   float64
	}{
		{"quarter clockwise", 0, math.Pi / 2, false, math.Pi / 2},
		{"full clockwise", 0, tau, false, tau},
		{"beyond full clockwise", 0, 3 * math.Pi, false, tau},
		{"wrapped clockwise", math.Pi, 0, false, math.Pi},
		{"quarter counter clockwise", math.Pi / 2, 0, true, -math.Pi / 2},
		{"full counter clockwise", tau, 0, true, -tau},
		{"wrapped counter clockwise", 0, math.Pi / 2, true, -3 * math.Pi / 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, arcSweep(tc.a0, tc.a1, tc.ccw), 1e-9)
		})
	}
}

func TestCanvas_TransparentStylesPaintNothing(t *testing.T) {
	c := NewCanvas(8, 8)
	c.SetFillStyle(color.NRGBA{})
	c.FillRect(0, 0, 8, 8)
	for _, v := range c.Image().Pix {
		assert.Zero(t, v)
	}
}
