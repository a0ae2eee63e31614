package spritegen

import (
	"image"

	"github.com/tptassets/spritegen/utils"
)

// RuinType identifies the structure drawn on a ruin sprite.
type RuinType string

// The supported ruin sprites. Wall is the default variant.
const (
	Wall       RuinType = "wall"
	Pillar     RuinType = "pillar"
	Statue     RuinType = "statue"
	Foundation RuinType = "foundation"
)

// Ruin sprite dimensions, independent of the configuration.
const (
	RuinWidth  = 32
	RuinHeight = 32
)

// Metadata defaults of the ruin sprites.
const (
	DefaultAge       = "ancient"
	DefaultCondition = "crumbling"
	DefaultMaterial  = "stone"
)

// RuinTypes lists the ruin variants in dispatch order.
var RuinTypes = []RuinType{Wall, Pillar, Statue, Foundation}

// RuinConfig describes the ruin sprite to generate.
type RuinConfig struct {
	RuinType  RuinType `json:"ruinType" yaml:"ruinType"`
	Age       string   `json:"age,omitempty" yaml:"age,omitempty"`
	Condition string   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Material  string   `json:"material,omitempty" yaml:"material,omitempty"`
	Overgrown bool     `json:"overgrown,omitempty" yaml:"overgrown,omitempty"`
}

// RuinGenerator produces 32×32 ruined structure sprites.
type RuinGenerator struct {
	Options
}

// NewRuinGenerator creates a generator with the provided options.
func NewRuinGenerator(opts Options) *RuinGenerator {
	return &RuinGenerator{Options: opts}
}

// materials maps a material name to the base color of the masonry.
var materials = map[string]string{
	"stone":     "#7a7a7a",
	"marble":    "#d8d4cc",
	"sandstone": "#c2a272",
	"granite":   "#5e5a57",
	"wood":      "#7b5a3c",
}

// cracks maps the condition to the number of cracks drawn.
var cracks = map[string]int{
	"pristine":  1,
	"weathered": 2,
	"crumbling": 3,
	"collapsed": 5,
}

// ruinStyle carries the config derived drawing parameters.
type ruinStyle struct {
	base      string
	cracks    int
	overgrown bool
}

func styleOf(cfg RuinConfig) ruinStyle {
	base, ok := materials[cfg.Material]
	if !ok {
		base = materials[DefaultMaterial]
	}
	n, ok := cracks[cfg.Condition]
	if !ok {
		n = cracks[DefaultCondition]
	}
	return ruinStyle{base: base, cracks: n, overgrown: cfg.Overgrown}
}

type ruinRecipe func(c *Canvas, s ruinStyle, rnd randFn)

var ruinRecipes = map[RuinType]ruinRecipe{
	Wall:       drawWall,
	Pillar:     drawPillar,
	Statue:     drawStatue,
	Foundation: drawFoundation,
}

// Generate draws the sprite selected by cfg.RuinType and wraps it into a descriptor.
// Unknown types are drawn as the wall sprite.
func (g *RuinGenerator) Generate(cfg RuinConfig) (*SpriteDescriptor, error) {
	img, err := g.Render(cfg)
	if err != nil {
		return nil, err
	}

	tag := string(cfg.RuinType)
	if tag == "" {
		tag = string(Wall)
	}

	md := Metadata{
		Age:       cfg.Age,
		Condition: cfg.Condition,
		Material:  cfg.Material,
		Overgrown: boolPtr(cfg.Overgrown),
	}
	if md.Age == "" {
		md.Age = DefaultAge
	}
	if md.Condition == "" {
		md.Condition = DefaultCondition
	}
	if md.Material == "" {
		md.Material = DefaultMaterial
	}

	return g.assemble(tag, capitalize(tag)+" Ruin", img, cfg, md)
}

// Render draws the sprite into a new buffer without encoding it.
func (g *RuinGenerator) Render(cfg RuinConfig) (*image.NRGBA, error) {
	recipe, ok := ruinRecipes[cfg.RuinType]
	if !ok {
		g.debug("unknown ruin type, using default", "type", cfg.RuinType, "default", Wall)
		recipe = ruinRecipes[Wall]
	}
	style := styleOf(cfg)
	rnd := g.random()

	return g.render(RuinWidth, RuinHeight, func(c *Canvas) {
		recipe(c, style, rnd)
	})
}

// shade returns the base color shifted by delta.
func (s ruinStyle) shade(delta int) string {
	return utils.AdjustBrightness(s.base, delta)
}

// jitter returns a random integer in [-n, n).
func jitter(rnd randFn, n int) int {
	return int(rnd()*float64(2*n)) - n
}

// drawGroundShadow paints the soft shadow every ruin stands on.
func drawGroundShadow(c *Canvas, rx float64) {
	c.BeginPath()
	c.Ellipse(c.W/2, c.H-3, rx, 2)
	c.SetFillStyle(alpha(hex("#000000"), 0.25))
	c.Fill()
}

// drawCracks draws n zig-zag cracks rising from the lower part of the given area.
func drawCracks(c *Canvas, s ruinStyle, rnd randFn, x, y, w, h float64) {
	c.SetStrokeStyle(hex(s.shade(-55)))
	c.SetLineWidth(0.7)
	c.SetLineCap(RoundCap)
	for i := 0; i < s.cracks; i++ {
		px := x + rnd()*w
		py := y + h - rnd()*h*0.4
		c.BeginPath()
		c.MoveTo(px, py)
		for seg := 0; seg < 3; seg++ {
			px = utils.Clamp(px+(rnd()-0.5)*4, x, x+w)
			py = utils.Max(py-(1.5+rnd()*2.5), y)
			c.LineTo(px, py)
		}
		c.Stroke()
	}
	c.SetLineCap(ButtCap)
}

// drawVegetation scatters moss and leaf dots along the ground line.
func drawVegetation(c *Canvas, rnd randFn, count int) {
	greens := []string{"#4caf50", "#388e3c", "#66bb6a", "#2e7d32"}
	for i := 0; i < count; i++ {
		x := 2 + rnd()*(c.W-4)
		y := c.H - 7 + rnd()*5
		c.SetFillStyle(hex(greens[int(rnd()*float64(len(greens)))%len(greens)]))
		c.FillCircle(x, y, 0.6+rnd()*0.9)
	}
}

// drawDebris scatters small broken blocks around the base of a structure.
func drawDebris(c *Canvas, s ruinStyle, rnd randFn, count int) {
	for i := 0; i < count; i++ {
		x := 3 + rnd()*(c.W-8)
		y := c.H - 5 + rnd()*2.5
		size := 1 + rnd()*2
		c.SetFillStyle(hex(s.shade(jitter(rnd, 20))))
		c.FillRect(x, y, size, size*0.8)
	}
}

func drawWall(c *Canvas, s ruinStyle, rnd randFn) {
	const (
		left, right = 2.0, 30.0
		bottom      = 29.0
		rowH        = 4.0
		brickW      = 8.0
		colW        = 4.0
		maxRows     = 5
	)
	drawGroundShadow(c, 14)

	// broken top: every 4px column keeps between 2 and 5 courses
	cols := int((right - left) / colW)
	heights := make([]int, cols)
	for i := range heights {
		heights[i] = 2 + int(rnd()*float64(maxRows-1))
	}

	mortar := hex(s.shade(-40))
	for row := 0; row < maxRows; row++ {
		y := bottom - float64(row+1)*rowH
		offset := float64(row%2) * colW
		for x := left - offset; x < right; x += brickW {
			x0 := utils.Max(x, left)
			x1 := utils.Min(x+brickW, right)
			if x1-x0 <= 0 {
				continue
			}
			first := int((x0 - left) / colW)
			last := int((x1 - left - 0.01) / colW)
			standing := true
			for col := first; col <= last && col < cols; col++ {
				if row >= heights[col] {
					standing = false
				}
			}
			if !standing {
				continue
			}
			c.SetFillStyle(hex(s.shade(jitter(rnd, 15))))
			c.FillRect(x0, y, x1-x0, rowH)
			c.SetStrokeStyle(mortar)
			c.SetLineWidth(0.5)
			c.StrokeRect(x0+0.25, y+0.25, x1-x0-0.5, rowH-0.5)
		}
	}

	drawCracks(c, s, rnd, left+1, bottom-2*rowH, right-left-2, 2*rowH)
	drawDebris(c, s, rnd, 3)

	if s.overgrown {
		drawVegetation(c, rnd, 10)
	}
}

func drawPillar(c *Canvas, s ruinStyle, rnd randFn) {
	drawGroundShadow(c, 12)

	// base slab
	c.SetFillStyle(hex(s.shade(-15)))
	c.FillRect(8, 25, 16, 4)
	c.SetFillStyle(hex(s.shade(10)))
	c.FillRect(8, 25, 16, 1)

	// shaft with broken top
	c.BeginPath()
	c.MoveTo(11, 25)
	c.LineTo(11, 9)
	c.LineTo(12.5, 6)
	c.LineTo(14, 8.5)
	c.LineTo(16, 5)
	c.LineTo(18, 7.5)
	c.LineTo(19.5, 6.5)
	c.LineTo(21, 9)
	c.LineTo(21, 25)
	c.ClosePath()
	c.SetFillStyle(hex(s.base))
	c.Fill()

	// fluting
	c.BeginPath()
	for _, x := range []float64{13, 15, 17, 19} {
		c.MoveTo(x, 10)
		c.LineTo(x, 24.5)
	}
	c.SetStrokeStyle(hex(s.shade(-25)))
	c.SetLineWidth(0.6)
	c.Stroke()

	// light side
	c.SetFillStyle(alpha(hex("#ffffff"), 0.15))
	c.FillRect(11, 9, 1.5, 16)

	drawCracks(c, s, rnd, 11.5, 10, 9, 14)
	drawDebris(c, s, rnd, 4+s.cracks)

	if s.overgrown {
		c.BeginPath()
		c.MoveTo(12, 25)
		c.BezierCurveTo(16, 21, 10, 16, 15, 12)
		c.SetStrokeStyle(hex("#388e3c"))
		c.SetLineWidth(0.8)
		c.Stroke()
		drawVegetation(c, rnd, 8)
	}
}

func drawStatue(c *Canvas, s ruinStyle, rnd randFn) {
	drawGroundShadow(c, 11)

	// pedestal
	c.SetFillStyle(hex(s.shade(-20)))
	c.FillRect(9, 24, 14, 5)
	c.SetFillStyle(hex(s.shade(-5)))
	c.FillRect(8, 22, 16, 2)

	body := hex(s.base)

	// robe
	c.BeginPath()
	c.MoveTo(12, 22)
	c.LineTo(13, 14)
	c.QuadraticCurveTo(16, 11.5, 19, 14)
	c.LineTo(20, 22)
	c.ClosePath()
	c.SetFillStyle(body)
	c.Fill()

	// shoulders
	c.BeginPath()
	c.MoveTo(12.5, 15)
	c.BezierCurveTo(12.5, 11, 19.5, 11, 19.5, 15)
	c.ClosePath()
	c.Fill()

	// head, split off on one side
	c.BeginPath()
	c.MoveTo(16, 8.5)
	c.Arc(16, 8.5, 2.5, 0.35*tau, 1.05*tau, false)
	c.ClosePath()
	c.Fill()

	// broken arm stump
	c.BeginPath()
	c.MoveTo(19, 14)
	c.LineTo(22, 16)
	c.SetStrokeStyle(body)
	c.SetLineWidth(2)
	c.Stroke()

	// robe folds
	c.BeginPath()
	c.MoveTo(15, 15)
	c.QuadraticCurveTo(14.5, 18.5, 15, 21.5)
	c.MoveTo(17.5, 15)
	c.QuadraticCurveTo(18, 18.5, 17.5, 21.5)
	c.SetStrokeStyle(hex(s.shade(-30)))
	c.SetLineWidth(0.5)
	c.Stroke()

	// fallen fragments
	c.SetFillStyle(body)
	for i := 0; i < 2+s.cracks; i++ {
		x := 3 + rnd()*24
		y := 27 + rnd()*3
		c.BeginPath()
		c.MoveTo(x, y)
		c.LineTo(x+1+rnd()*1.5, y-rnd()*1.5)
		c.LineTo(x+2+rnd(), y+0.5+rnd())
		c.ClosePath()
		c.Fill()
	}

	if s.overgrown {
		drawVegetation(c, rnd, 8)
	}
}

func drawFoundation(c *Canvas, s ruinStyle, rnd randFn) {
	// floor
	c.SetFillStyle(alpha(hex(s.shade(-10)), 0.35))
	c.FillRect(5, 7, 22, 18)

	// dashed outline of the former walls
	c.SetLineDash(3, 2)
	c.SetStrokeStyle(hex(s.shade(-35)))
	c.SetLineWidth(1)
	c.StrokeRect(4, 6, 24, 20)
	c.BeginPath()
	c.MoveTo(16, 6)
	c.LineTo(16, 26)
	c.Stroke()
	c.SetLineDash()

	// corner stones
	c.SetFillStyle(hex(s.base))
	for _, p := range [][2]float64{{2.5, 4.5}, {25.5, 4.5}, {2.5, 22.5}, {25.5, 22.5}} {
		c.FillRect(p[0], p[1], 4, 4)
	}
	c.SetFillStyle(hex(s.shade(15)))
	for _, p := range [][2]float64{{2.5, 4.5}, {25.5, 4.5}, {2.5, 22.5}, {25.5, 22.5}} {
		c.FillRect(p[0], p[1], 4, 1)
	}

	// remaining wall courses
	c.SetFillStyle(hex(s.shade(-5)))
	c.FillRect(7, 5, 7, 2)
	c.FillRect(18, 25, 6, 2)
	c.FillRect(3, 12, 2, 6)

	if s.overgrown {
		drawVegetation(c, rnd, 12)
	}
}
