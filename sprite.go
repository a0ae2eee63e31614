package spritegen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Version is stamped into the metadata of every generated descriptor.
const Version = "1.0"

// FormatPNG is the only sprite encoding produced by the generators.
const FormatPNG = "png"

// Options holds the collaborators shared by the sprite generators.
// The zero value is ready to use: unseeded randomness, wall clock time,
// no frame overlay and no logging.
type Options struct {
	// Rand is the source of the cosmetic jitter. A seeded source makes the
	// output reproducible. It must not be shared between goroutines.
	Rand *rand.Rand
	// Now returns the generation timestamp.
	Now func() time.Time
	// Frame is an optional SVG document drawn over every sprite.
	Frame []byte
	// Logger receives debug information about the generation. Nil disables logging.
	Logger *log.Logger
}

// Sprite is the encoded raster of a generated asset.
type Sprite struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   string `json:"data"`
	Format string `json:"format"`
}

// Metadata echoes the cosmetic configuration fields, with defaults applied,
// together with the generation timestamp and version.
type Metadata struct {
	Severity  string    `json:"severity,omitempty"`
	Duration  int       `json:"duration,omitempty"`
	Curable   *bool     `json:"curable,omitempty"`
	Age       string    `json:"age,omitempty"`
	Condition string    `json:"condition,omitempty"`
	Material  string    `json:"material,omitempty"`
	Overgrown *bool     `json:"overgrown,omitempty"`
	Generated time.Time `json:"generated"`
	Version   string    `json:"version"`
}

// SpriteDescriptor pairs the sprite bytes with the generation metadata.
type SpriteDescriptor struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Sprite   Sprite   `json:"sprite"`
	Config   any      `json:"config"`
	Metadata Metadata `json:"metadata"`
}

// randFn yields uniformly distributed values in [0, 1).
type randFn func() float64

func (o Options) random() randFn {
	if o.Rand != nil {
		return o.Rand.Float64
	}
	return rand.Float64
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) debug(msg string, keyvals ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, keyvals...)
	}
}

// render allocates the destination buffer, runs the draw routine on a fresh
// canvas, copies the result into the buffer and applies the optional frame.
func (o Options) render(width, height int, draw func(c *Canvas)) (*image.NRGBA, error) {
	buf := NewBuffer(width, height)
	c := NewCanvas(width, height)
	draw(c)
	composite(buf, c)

	if len(o.Frame) > 0 {
		if err := applyFrame(buf, bytes.NewReader(o.Frame)); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// assemble encodes the buffer and wraps it into a new descriptor.
func (o Options) assemble(tag, name string, img *image.NRGBA, cfg any, md Metadata) (*SpriteDescriptor, error) {
	data, err := encodeImg(img)
	if err != nil {
		return nil, err
	}
	md.Generated = o.now()
	md.Version = Version

	desc := &SpriteDescriptor{
		ID:   uuid.NewString(),
		Name: name,
		Type: tag,
		Sprite: Sprite{
			Width:  img.Bounds().Dx(),
			Height: img.Bounds().Dy(),
			Data:   data,
			Format: FormatPNG,
		},
		Config:   cfg,
		Metadata: md,
	}
	o.debug("sprite generated", "id", desc.ID, "type", tag, "bytes", len(data))

	return desc, nil
}

// Image decodes the sprite payload of the descriptor.
func (d *SpriteDescriptor) Image() (*image.NRGBA, error) {
	return decodeImg(d.Sprite.Data)
}

// PNG returns the raw PNG bytes of the sprite.
func (d *SpriteDescriptor) PNG() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(d.Sprite.Data)
	if err != nil {
		return nil, fmt.Errorf("could not decode the sprite payload: %w", err)
	}
	return raw, nil
}

// SaveToFile writes the decoded PNG payload verbatim to path.
// Missing directories are not created and existing files are overwritten.
func (d *SpriteDescriptor) SaveToFile(path string) error {
	raw, err := d.PNG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("could not write the sprite file: %w", err)
	}
	return nil
}

// capitalize upper cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func boolPtr(b bool) *bool {
	return &b
}
