package tui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/cardswipe/pkg/geom"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
)

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(100, 100, 1, 1)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.SetPixel(x, y, color.RGBA{uint8(x * 2), uint8(y * 2), 128, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("File not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("File is empty")
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(50, 50, 1, 1)
	fb.SetPixel(10, 20, red)
	fb.SetPixel(30, 40, green)
	fb.SetPixel(-1, 60, green)

	img := fb.ToImage()
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Errorf("Image dimensions wrong: got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got := img.RGBAAt(10, 20); got != red {
		t.Errorf("Red pixel wrong: got %v", got)
	}
	if got := img.RGBAAt(30, 40); got != green {
		t.Errorf("Green pixel wrong: got %v", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 4, 1, 1)
	fb.BG = color.RGBA{1, 2, 3, 255}
	fb.SetPixel(1, 1, red)
	fb.Clear()
	if got := fb.ToImage().RGBAAt(1, 1); got != fb.BG {
		t.Errorf("Clear left %v, want %v", got, fb.BG)
	}
}

func countFilled(fb *Framebuffer) (w, h int) {
	img := fb.ToImage()
	for y := 0; y < fb.Height; y++ {
		n := 0
		for x := 0; x < fb.Width; x++ {
			if img.RGBAAt(x, y).A == 255 {
				n++
			}
		}
		w = max(w, n)
	}
	for x := 0; x < fb.Width; x++ {
		n := 0
		for y := 0; y < fb.Height; y++ {
			if img.RGBAAt(x, y).A == 255 {
				n++
			}
		}
		h = max(h, n)
	}
	return w, h
}

func TestDrawCard(t *testing.T) {
	fb := NewFramebuffer(100, 100, 1, 1)
	center := geom.V(50, 50)
	size := geom.V(40, 20)

	fb.DrawCard(center, size, geom.Neutral(), red)
	if w, h := countFilled(fb); w != 40 || h != 20 {
		t.Errorf("neutral card covers %dx%d, want 40x20", w, h)
	}
	if got := fb.ToImage().RGBAAt(50, 50); got != red {
		t.Errorf("center pixel %v, want fill", got)
	}
	if got := fb.ToImage().RGBAAt(31, 50); got == red {
		t.Error("border pixel should be shaded")
	}

	fb.Resize(100, 100)
	fb.DrawCard(center, size, geom.Transform{RotationDeg: 90}, red)
	if w, h := countFilled(fb); w != 20 || h != 40 {
		t.Errorf("rotated card covers %dx%d, want 20x40", w, h)
	}

	fb.Resize(100, 100)
	fb.DrawCard(center, size, geom.Transform{TranslateX: 200}, red)
	if w, _ := countFilled(fb); w != 0 {
		t.Errorf("card moved off screen still covers %d pixels", w)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff0000", red, true},
		{"#0f0", green, true},
		{"#eaffff", color.RGBA{0xea, 0xff, 0xff, 255}, true},
		{"teal", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHexColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
