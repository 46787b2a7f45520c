package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"github.com/taigrr/cardswipe/pkg/deck"
	"github.com/taigrr/cardswipe/pkg/gesture"
)

// button is a clickable label on the bottom row.
type button struct {
	label  string
	dir    gesture.Direction
	x0, x1 int
}

var buttonLabels = []struct {
	label string
	dir   gesture.Direction
}{
	{"[← nope]", gesture.Left},
	{"[↑ cart]", gesture.Up},
	{"[→ like]", gesture.Right},
}

const buttonGap = 3

// HUD renders the counters, the last outcome and the swipe buttons.
type HUD struct {
	Show bool

	fps       float64
	fpsFrames int
	fpsTime   time.Time
	status    string
	buttons   []button
	width     int
}

// NewHUD creates a visible HUD.
func NewHUD() *HUD {
	return &HUD{Show: true, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// SetStatus sets the message shown above the buttons.
func (h *HUD) SetStatus(msg string) {
	h.status = msg
}

// Status returns the current message.
func (h *HUD) Status() string {
	return h.status
}

// layout centers the buttons on a row of width w.
func (h *HUD) layout(w int) {
	if h.width == w && h.buttons != nil {
		return
	}
	h.width = w
	total := buttonGap * (len(buttonLabels) - 1)
	for _, b := range buttonLabels {
		total += utf8.RuneCountInString(b.label)
	}
	x := max(0, (w-total)/2)
	h.buttons = h.buttons[:0]
	for _, b := range buttonLabels {
		n := utf8.RuneCountInString(b.label)
		h.buttons = append(h.buttons, button{label: b.label, dir: b.dir, x0: x, x1: x + n})
		x += n + buttonGap
	}
}

// ButtonAt returns the direction of the button under cell (col, row) on a
// w x hgt screen.
func (h *HUD) ButtonAt(col, row, w, hgt int) (gesture.Direction, bool) {
	if !h.Show || row != hgt-1 {
		return 0, false
	}
	h.layout(w)
	for _, b := range h.buttons {
		if col >= b.x0 && col < b.x1 {
			return b.dir, true
		}
	}
	return 0, false
}

// Draw renders the HUD overlay to the terminal using ansipixels.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels, d *deck.Deck) {
	if !h.Show {
		return
	}
	b := d.Basket()

	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, h.fps)
	if n := d.Remaining(); n > 0 {
		ap.WriteCentered(0, "%d of %d left", n, d.Len())
	} else {
		ap.WriteCentered(0, "%sNo more products, r to deal again%s", tcolor.BrightYellow.Foreground(), tcolor.Reset)
	}
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"♥ %d  cart %d"+tcolor.Reset, len(b.Liked()), len(b.Cart()))

	if h.status != "" {
		ap.WriteCentered(ap.H-2, "%s", h.status)
	}
	h.layout(ap.W)
	labels := make([]string, len(h.buttons))
	for i, btn := range h.buttons {
		labels[i] = btn.label
	}
	ap.WriteAt(h.buttons[0].x0, ap.H-1, "%s", strings.Join(labels, strings.Repeat(" ", buttonGap)))
	ap.WriteRight(ap.H-1, "%sr reset  q quit%s", tcolor.Yellow.Foreground(), tcolor.Reset)
}
