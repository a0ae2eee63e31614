package spritegen

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// LineCap is the shape used at the open ends of stroked paths.
type LineCap int

const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

const (
	tau = 2 * math.Pi

	// miterLimit matches the default of the HTML canvas.
	miterLimit = 10
)

type point struct {
	x, y float64
}

// Canvas is an immediate mode 2D vector context backed by rasterx.
// Paths are recorded with MoveTo/LineTo/curve calls and painted source-over
// onto an NRGBA image with Fill or Stroke.
type Canvas struct {
	W, H float64

	img    *image.NRGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher

	path   rasterx.Path
	open   bool
	hasCur bool
	cur    point
	start  point

	fill      color.NRGBA
	stroke    color.NRGBA
	lineWidth float64
	lineCap   LineCap
	dash      []float64
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())

	return &Canvas{
		W:         float64(width),
		H:         float64(height),
		img:       img,
		filler:    rasterx.NewFiller(width, height, scanner),
		dasher:    rasterx.NewDasher(width, height, scanner),
		fill:      color.NRGBA{A: 0xff},
		stroke:    color.NRGBA{A: 0xff},
		lineWidth: 1,
	}
}

// Image returns the rendered pixels.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// SetFillStyle sets the color used by Fill, FillRect and FillCircle.
func (c *Canvas) SetFillStyle(col color.Color) {
	c.fill = color.NRGBAModel.Convert(col).(color.NRGBA)
}

// SetStrokeStyle sets the color used by Stroke and StrokeRect.
func (c *Canvas) SetStrokeStyle(col color.Color) {
	c.stroke = color.NRGBAModel.Convert(col).(color.NRGBA)
}

// SetLineWidth sets the stroke width in pixels. Non-positive values are ignored.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.lineWidth = w
	}
}

// SetLineCap sets the cap style of stroked line ends.
func (c *Canvas) SetLineCap(lc LineCap) {
	c.lineCap = lc
}

// SetLineDash sets the dash pattern of subsequent strokes. An empty pattern draws solid lines.
func (c *Canvas) SetLineDash(segments ...float64) {
	c.dash = append(c.dash[:0], segments...)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.open = false
	c.hasCur = false
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path.Start(rasterx.ToFixedP(x, y))
	c.cur = point{x, y}
	c.start = c.cur
	c.open = true
	c.hasCur = true
}

// LineTo adds a straight segment from the current point to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	if !c.reopen() {
		c.MoveTo(x, y)
		return
	}
	c.path.Line(rasterx.ToFixedP(x, y))
	c.cur = point{x, y}
}

// QuadraticCurveTo adds a quadratic Bézier segment with control point (cpx, cpy).
func (c *Canvas) QuadraticCurveTo(cpx, cpy, x, y float64) {
	if !c.reopen() {
		c.MoveTo(cpx, cpy)
	}
	c.path.QuadBezier(rasterx.ToFixedP(cpx, cpy), rasterx.ToFixedP(x, y))
	c.cur = point{x, y}
}

// BezierCurveTo adds a cubic Bézier segment with control points (cp1x, cp1y) and (cp2x, cp2y).
func (c *Canvas) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !c.reopen() {
		c.MoveTo(cp1x, cp1y)
	}
	c.path.CubeBezier(
		rasterx.ToFixedP(cp1x, cp1y),
		rasterx.ToFixedP(cp2x, cp2y),
		rasterx.ToFixedP(x, y),
	)
	c.cur = point{x, y}
}

// Arc adds a circular arc centered on (cx, cy) from angle a0 to a1 (radians).
// The arc is connected to the current point with a straight line, like the
// HTML canvas arc. A clockwise sweep of 2π or more draws the full circle.
func (c *Canvas) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	c.ellipticArc(cx, cy, r, r, a0, arcSweep(a0, a1, ccw))
}

// Ellipse adds a full, closed axis aligned ellipse as a new subpath.
func (c *Canvas) Ellipse(cx, cy, rx, ry float64) {
	c.MoveTo(cx+rx, cy)
	c.ellipticArc(cx, cy, rx, ry, 0, tau)
	c.ClosePath()
}

// Rect adds a closed rectangle as a new subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// ClosePath closes the current subpath back to its starting point.
func (c *Canvas) ClosePath() {
	if !c.open {
		return
	}
	c.path.Stop(true)
	c.open = false
	c.cur = c.start
}

// Fill paints the interior of the current path with the fill style.
func (c *Canvas) Fill() {
	c.fillPath(c.path, c.fill)
}

// Stroke outlines the current path with the stroke style.
func (c *Canvas) Stroke() {
	c.strokePath(c.path, c.stroke)
}

// FillRect paints a rectangle without touching the current path.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.fillPath(rectPath(x, y, w, h), c.fill)
}

// StrokeRect outlines a rectangle without touching the current path.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.strokePath(rectPath(x, y, w, h), c.stroke)
}

// FillCircle paints a disc without touching the current path.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	var p rasterx.Path
	rasterx.AddCircle(cx, cy, r, &p)
	c.fillPath(p, c.fill)
}

func rectPath(x, y, w, h float64) rasterx.Path {
	var p rasterx.Path
	p.Start(rasterx.ToFixedP(x, y))
	p.Line(rasterx.ToFixedP(x+w, y))
	p.Line(rasterx.ToFixedP(x+w, y+h))
	p.Line(rasterx.ToFixedP(x, y+h))
	p.Stop(true)
	return p
}

// reopen makes sure a subpath is open, restarting at the current point after a
// ClosePath. It reports false when the path has no current point at all.
func (c *Canvas) reopen() bool {
	if c.open {
		return true
	}
	if !c.hasCur {
		return false
	}
	c.MoveTo(c.cur.x, c.cur.y)
	return true
}

func (c *Canvas) fillPath(p rasterx.Path, col color.NRGBA) {
	if len(p) == 0 || col.A == 0 {
		return
	}
	c.filler.Clear()
	p.AddTo(c.filler)
	c.filler.SetColor(col)
	c.filler.Draw()
}

func (c *Canvas) strokePath(p rasterx.Path, col color.NRGBA) {
	if len(p) == 0 || col.A == 0 {
		return
	}
	var capFn rasterx.CapFunc = rasterx.ButtCap
	switch c.lineCap {
	case RoundCap:
		capFn = rasterx.RoundCap
	case SquareCap:
		capFn = rasterx.SquareCap
	}

	var dash []float64
	if len(c.dash) > 0 {
		dash = c.dash
	}

	c.dasher.Clear()
	c.dasher.SetStroke(
		fixed.Int26_6(c.lineWidth*64),
		fixed.Int26_6(miterLimit*64),
		capFn, capFn,
		rasterx.RoundGap,
		rasterx.Miter,
		dash, 0,
	)
	p.AddTo(c.dasher)
	c.dasher.SetColor(col)
	c.dasher.Draw()
}

// ellipticArc appends an arc of the given sweep, approximated with one cubic
// Bézier per quarter turn.
func (c *Canvas) ellipticArc(cx, cy, rx, ry, a0, sweep float64) {
	sx, sy := cx+rx*math.Cos(a0), cy+ry*math.Sin(a0)
	if c.reopen() {
		if math.Hypot(sx-c.cur.x, sy-c.cur.y) > 1e-9 {
			c.LineTo(sx, sy)
		}
	} else {
		c.MoveTo(sx, sy)
	}
	if sweep == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	theta := a0
	for i := 0; i < n; i++ {
		sin0, cos0 := math.Sincos(theta)
		sin1, cos1 := math.Sincos(theta + step)

		x0, y0 := cx+rx*cos0, cy+ry*sin0
		x1, y1 := cx+rx*cos1, cy+ry*sin1

		c.BezierCurveTo(
			x0-k*rx*sin0, y0+k*ry*cos0,
			x1+k*rx*sin1, y1-k*ry*cos1,
			x1, y1,
		)
		theta += step
	}
}

// arcSweep converts start and end angles to a signed sweep following the HTML canvas rules.
func arcSweep(a0, a1 float64, ccw bool) float64 {
	if !ccw {
		if a1-a0 >= tau {
			return tau
		}
		s := math.Mod(a1-a0, tau)
		if s < 0 {
			s += tau
		}
		return s
	}
	if a0-a1 >= tau {
		return -tau
	}
	s := math.Mod(a0-a1, tau)
	if s < 0 {
		s += tau
	}
	return -s
}
