package tui

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/cardswipe/pkg/geom"
)

// Framebuffer is the pixel grid shown with half-block characters: one pixel
// per column and two per row.
type Framebuffer struct {
	Width, Height int
	BG            color.RGBA

	// PixelW and PixelH give the size of one framebuffer pixel in the
	// virtual pixels used by the engine.
	PixelW, PixelH float64

	img *image.RGBA
}

// NewFramebuffer creates a framebuffer of w x h pixels.
func NewFramebuffer(w, h int, pixelW, pixelH float64) *Framebuffer {
	fb := &Framebuffer{BG: color.RGBA{A: 255}, PixelW: pixelW, PixelH: pixelH}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the pixel storage.
func (fb *Framebuffer) Resize(w, h int) {
	fb.Width, fb.Height = w, h
	fb.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Clear fills the framebuffer with the background color.
func (fb *Framebuffer) Clear() {
	for i := 0; i < len(fb.img.Pix); i += 4 {
		fb.img.Pix[i] = fb.BG.R
		fb.img.Pix[i+1] = fb.BG.G
		fb.img.Pix[i+2] = fb.BG.B
		fb.img.Pix[i+3] = 255
	}
}

// SetPixel writes one pixel, ignoring out of range coordinates.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.img.SetRGBA(x, y, c)
}

// ToImage returns the backing image. It is reused across frames.
func (fb *Framebuffer) ToImage() *image.RGBA {
	return fb.img
}

// SavePNG writes the current frame to path.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb.img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// Virtual maps the center of framebuffer pixel (x, y) to engine pixels.
func (fb *Framebuffer) Virtual(x, y int) geom.Vector {
	return geom.V((float64(x)+0.5)*fb.PixelW, (float64(y)+0.5)*fb.PixelH)
}

const borderPx = 6

// DrawCard fills a size.X x size.Y card whose rest position is centered on
// center, moved by t. Both are in engine pixels. The outer border is drawn
// darker.
func (fb *Framebuffer) DrawCard(center, size geom.Vector, t geom.Transform, fill color.RGBA) {
	inv, ok := t.Matrix().Invert()
	if !ok {
		return
	}
	half := size.Scale(0.5)
	edge := shade(fill, 0.7)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			local := inv.Apply(fb.Virtual(x, y).Sub(center))
			dx := half.X - abs(local.X)
			dy := half.Y - abs(local.Y)
			if dx < 0 || dy < 0 {
				continue
			}
			if dx < borderPx || dy < borderPx {
				fb.img.SetRGBA(x, y, edge)
				continue
			}
			fb.img.SetRGBA(x, y, fill)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

// ParseHexColor parses #rgb or #rrggbb.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
