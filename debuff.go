package spritegen

import (
	"image"
	"image/color"
	"math"

	"github.com/tptassets/spritegen/utils"
)

// DebuffType identifies the status effect drawn on a debuff icon.
type DebuffType string

// The supported debuff icons. Poison is the default variant.
const (
	Poison    DebuffType = "poison"
	Slow      DebuffType = "slow"
	Weakness  DebuffType = "weakness"
	Confusion DebuffType = "confusion"
	Fear      DebuffType = "fear"
)

// Debuff icon dimensions, independent of the configuration.
const (
	DebuffIconWidth  = 24
	DebuffIconHeight = 24
)

// Metadata defaults of the debuff icons.
const (
	DefaultSeverity = "moderate"
	DefaultDuration = 10
	DefaultCurable  = true
)

// DebuffTypes lists the debuff variants in dispatch order.
var DebuffTypes = []DebuffType{Poison, Slow, Weakness, Confusion, Fear}

// DebuffConfig describes the debuff icon to generate.
// Only DebuffType influences the drawing, the other fields are echoed into the metadata.
type DebuffConfig struct {
	DebuffType DebuffType `json:"debuffType" yaml:"debuffType"`
	Severity   string     `json:"severity,omitempty" yaml:"severity,omitempty"`
	Duration   int        `json:"duration,omitempty" yaml:"duration,omitempty"`
	Curable    *bool      `json:"curable,omitempty" yaml:"curable,omitempty"`
}

// DebuffIconGenerator produces 24×24 status effect icons.
type DebuffIconGenerator struct {
	Options
}

// NewDebuffIconGenerator creates a generator with the provided options.
func NewDebuffIconGenerator(opts Options) *DebuffIconGenerator {
	return &DebuffIconGenerator{Options: opts}
}

type debuffRecipe func(c *Canvas, rnd randFn)

var debuffRecipes = map[DebuffType]debuffRecipe{
	Poison:    drawPoison,
	Slow:      drawSlow,
	Weakness:  drawWeakness,
	Confusion: drawConfusion,
	Fear:      drawFear,
}

// Generate draws the icon selected by cfg.DebuffType and wraps it into a descriptor.
// Unknown types are drawn as the poison icon.
func (g *DebuffIconGenerator) Generate(cfg DebuffConfig) (*SpriteDescriptor, error) {
	img, err := g.Render(cfg)
	if err != nil {
		return nil, err
	}

	tag := string(cfg.DebuffType)
	if tag == "" {
		tag = string(Poison)
	}

	md := Metadata{
		Severity: cfg.Severity,
		Duration: cfg.Duration,
		Curable:  cfg.Curable,
	}
	if md.Severity == "" {
		md.Severity = DefaultSeverity
	}
	if md.Duration == 0 {
		md.Duration = DefaultDuration
	}
	if md.Curable == nil {
		md.Curable = boolPtr(DefaultCurable)
	} else {
		md.Curable = boolPtr(*cfg.Curable)
	}

	return g.assemble(tag, capitalize(tag)+" Debuff Icon", img, cfg, md)
}

// Render draws the icon into a new buffer without encoding it.
func (g *DebuffIconGenerator) Render(cfg DebuffConfig) (*image.NRGBA, error) {
	recipe, ok := debuffRecipes[cfg.DebuffType]
	if !ok {
		g.debug("unknown debuff type, using default", "type", cfg.DebuffType, "default", Poison)
		recipe = debuffRecipes[Poison]
	}
	rnd := g.random()

	return g.render(DebuffIconWidth, DebuffIconHeight, func(c *Canvas) {
		recipe(c, rnd)
	})
}

func hex(s string) color.NRGBA {
	return utils.HexToRGBA(s)
}

// alpha returns c with its opacity scaled to a in [0, 1].
func alpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(utils.Clamp(a, 0, 1)*float64(c.A) + 0.5)
	return c
}

// drawBadge paints the round icon background: base disc, rim and highlight.
func drawBadge(c *Canvas, base, rim string) {
	cx, cy := c.W/2, c.H/2
	r := c.W/2 - 1

	c.SetFillStyle(hex(base))
	c.FillCircle(cx, cy, r)

	c.BeginPath()
	c.Arc(cx, cy, r-0.5, 0, tau, false)
	c.ClosePath()
	c.SetStrokeStyle(hex(rim))
	c.SetLineWidth(1)
	c.Stroke()

	c.BeginPath()
	c.Ellipse(cx-r*0.3, cy-r*0.45, r*0.45, r*0.25)
	c.SetFillStyle(alpha(hex("#ffffff"), 0.25))
	c.Fill()
}

func drawPoison(c *Canvas, rnd randFn) {
	drawBadge(c, "#2e7d32", "#1b5e20")

	// glass body
	c.BeginPath()
	c.MoveTo(10.5, 7.5)
	c.LineTo(10.5, 10)
	c.BezierCurveTo(7, 11, 6.5, 17.5, 9, 18.5)
	c.LineTo(15, 18.5)
	c.BezierCurveTo(17.5, 17.5, 17, 11, 13.5, 10)
	c.LineTo(13.5, 7.5)
	c.ClosePath()
	c.SetFillStyle(alpha(hex("#e8f5e9"), 0.45))
	c.Fill()
	c.SetStrokeStyle(hex("#c8e6c9"))
	c.SetLineWidth(0.8)
	c.Stroke()

	// liquid
	c.BeginPath()
	c.MoveTo(8.1, 14)
	c.QuadraticCurveTo(12, 12.5, 15.9, 14)
	c.QuadraticCurveTo(16.4, 17.4, 14.8, 18)
	c.LineTo(9.2, 18)
	c.QuadraticCurveTo(7.6, 17.4, 8.1, 14)
	c.ClosePath()
	c.SetFillStyle(hex("#76ff03"))
	c.Fill()

	// cork
	c.SetFillStyle(hex("#8d6e63"))
	c.FillRect(10, 5, 4, 2.5)

	// bubbles rise through the liquid
	c.SetFillStyle(hex("#ccff90"))
	for i := 0; i < 4; i++ {
		x := 12 + (rnd()-0.5)*5
		y := 14.5 + rnd()*3
		c.FillCircle(x, y, 0.5+rnd()*0.6)
	}

	// drip on the flask side
	c.BeginPath()
	c.MoveTo(17, 12)
	c.QuadraticCurveTo(18.4, 14, 17.6, 14.8)
	c.QuadraticCurveTo(16.6, 14.8, 17, 12)
	c.ClosePath()
	c.SetFillStyle(hex("#b2ff59"))
	c.Fill()
}

func drawSlow(c *Canvas, _ randFn) {
	drawBadge(c, "#1565c0", "#0d47a1")

	// glass
	c.BeginPath()
	c.MoveTo(8.5, 6)
	c.LineTo(15.5, 6)
	c.QuadraticCurveTo(15.5, 10, 12.7, 12)
	c.QuadraticCurveTo(15.5, 14, 15.5, 18)
	c.LineTo(8.5, 18)
	c.QuadraticCurveTo(8.5, 14, 11.3, 12)
	c.QuadraticCurveTo(8.5, 10, 8.5, 6)
	c.ClosePath()
	c.SetFillStyle(alpha(hex("#e3f2fd"), 0.35))
	c.Fill()
	c.SetStrokeStyle(hex("#bbdefb"))
	c.SetLineWidth(0.8)
	c.Stroke()

	// sand, top and bottom
	c.SetFillStyle(hex("#ffe082"))
	c.BeginPath()
	c.MoveTo(9.6, 8.5)
	c.LineTo(14.4, 8.5)
	c.LineTo(12, 11.4)
	c.ClosePath()
	c.Fill()

	c.BeginPath()
	c.MoveTo(9, 17.6)
	c.QuadraticCurveTo(12, 13.8, 15, 17.6)
	c.ClosePath()
	c.Fill()

	c.BeginPath()
	c.MoveTo(12, 11.4)
	c.LineTo(12, 16)
	c.SetStrokeStyle(hex("#ffe082"))
	c.SetLineWidth(0.6)
	c.Stroke()

	// frame
	c.SetStrokeStyle(hex("#8d6e63"))
	c.SetLineWidth(1.5)
	c.SetLineCap(RoundCap)
	c.BeginPath()
	c.MoveTo(7, 5.5)
	c.LineTo(17, 5.5)
	c.MoveTo(7, 18.5)
	c.LineTo(17, 18.5)
	c.Stroke()
	c.SetLineCap(ButtCap)
}

func drawWeakness(c *Canvas, _ randFn) {
	drawBadge(c, "#5d4037", "#3e2723")

	steel := hex("#cfd8dc")
	edge := hex("#90a4ae")

	// upper blade fragment
	c.BeginPath()
	c.MoveTo(16.5, 4.5)
	c.LineTo(18, 6)
	c.LineTo(13, 11)
	c.LineTo(11.5, 9.5)
	c.ClosePath()
	c.SetFillStyle(steel)
	c.Fill()
	c.SetStrokeStyle(edge)
	c.SetLineWidth(0.5)
	c.Stroke()

	// lower blade fragment, knocked out of line
	c.BeginPath()
	c.MoveTo(10.5, 11.5)
	c.LineTo(12, 13)
	c.LineTo(9, 16)
	c.LineTo(7.5, 14.5)
	c.ClosePath()
	c.SetFillStyle(steel)
	c.Fill()
	c.Stroke()

	// fracture
	c.BeginPath()
	c.MoveTo(11.2, 10.2)
	c.LineTo(12, 11)
	c.LineTo(11.3, 11.6)
	c.LineTo(12.2, 12.4)
	c.SetStrokeStyle(alpha(hex("#ffffff"), 0.8))
	c.SetLineWidth(0.5)
	c.Stroke()

	// guard
	c.SetLineCap(RoundCap)
	c.BeginPath()
	c.MoveTo(5.5, 14.5)
	c.LineTo(9.5, 18.5)
	c.SetStrokeStyle(hex("#ffca28"))
	c.SetLineWidth(1.8)
	c.Stroke()

	// grip
	c.BeginPath()
	c.MoveTo(7, 17)
	c.LineTo(4.8, 19.2)
	c.SetStrokeStyle(hex("#6d4c41"))
	c.SetLineWidth(1.6)
	c.Stroke()
	c.SetLineCap(ButtCap)

	// pommel
	c.SetFillStyle(hex("#ffca28"))
	c.FillCircle(4.4, 19.6, 1)
}

func drawConfusion(c *Canvas, _ randFn) {
	drawBadge(c, "#6a1b9a", "#4a148c")

	// spiral
	const (
		cx, cy = 10.5, 13
		turns  = 2.25
		steps  = 48
	)
	c.BeginPath()
	for i := 0; i <= steps; i++ {
		theta := float64(i) / steps * turns * tau
		r := 0.4 + theta*0.45
		x, y := cx+r*math.Cos(theta), cy+r*math.Sin(theta)
		if i == 0 {
			c.MoveTo(x, y)
			continue
		}
		c.LineTo(x, y)
	}
	c.SetStrokeStyle(hex("#e1bee7"))
	c.SetLineWidth(1.1)
	c.SetLineCap(RoundCap)
	c.Stroke()

	// question mark glyph
	c.BeginPath()
	c.MoveTo(15, 5.6)
	c.QuadraticCurveTo(15, 3.6, 17, 3.6)
	c.QuadraticCurveTo(19, 3.6, 19, 5.6)
	c.QuadraticCurveTo(19, 7.1, 17, 7.7)
	c.LineTo(17, 8.6)
	c.SetStrokeStyle(hex("#fff176"))
	c.SetLineWidth(1.2)
	c.Stroke()
	c.SetLineCap(ButtCap)

	c.SetFillStyle(hex("#fff176"))
	c.FillCircle(17, 10.2, 0.7)
}

func drawFear(c *Canvas, _ randFn) {
	drawBadge(c, "#212121", "#000000")

	bone := hex("#eceff1")
	hollow := hex("#212121")

	// cranium and jaw
	c.SetFillStyle(bone)
	c.BeginPath()
	c.Ellipse(12, 10.5, 6, 5.5)
	c.Fill()

	c.BeginPath()
	c.MoveTo(8.5, 13.5)
	c.LineTo(15.5, 13.5)
	c.LineTo(15.5, 16.5)
	c.QuadraticCurveTo(15.5, 17.5, 14.5, 17.5)
	c.LineTo(9.5, 17.5)
	c.QuadraticCurveTo(8.5, 17.5, 8.5, 16.5)
	c.ClosePath()
	c.Fill()

	// eye sockets with a red glint
	c.SetFillStyle(hollow)
	c.FillCircle(9.7, 10.6, 1.7)
	c.FillCircle(14.3, 10.6, 1.7)
	c.SetFillStyle(hex("#ff1744"))
	c.FillCircle(9.9, 10.8, 0.5)
	c.FillCircle(14.1, 10.8, 0.5)

	// nose
	c.BeginPath()
	c.MoveTo(12, 12.3)
	c.LineTo(11.2, 13.9)
	c.LineTo(12.8, 13.9)
	c.ClosePath()
	c.SetFillStyle(hollow)
	c.Fill()

	// teeth
	c.BeginPath()
	for _, x := range []float64{10.2, 11.4, 12.6, 13.8} {
		c.MoveTo(x, 15.2)
		c.LineTo(x, 17.5)
	}
	c.SetStrokeStyle(hollow)
	c.SetLineWidth(0.5)
	c.Stroke()
}
