// Package tui is the terminal front end: a deck of product cards drawn with
// half-block pixels and swiped with the mouse.
package tui

import (
	"fmt"
	"image/color"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/taigrr/cardswipe/pkg/anim"
	"github.com/taigrr/cardswipe/pkg/card"
	"github.com/taigrr/cardswipe/pkg/deck"
	"github.com/taigrr/cardswipe/pkg/geom"
	"github.com/taigrr/cardswipe/pkg/gesture"
)

// Options configures the front end.
type Options struct {
	FPS float64
	// CellWidth and CellHeight are the size of a terminal cell in engine
	// pixels.
	CellWidth, CellHeight float64
	CardColor             string
	Settings              anim.Settings
	FlickOnSwipe          bool
	Prevent               []gesture.Direction
	Products              []deck.Product
	// OnOutcome is called after a card left the screen and the basket was
	// updated.
	OnOutcome func(deck.Product, deck.Outcome)
}

// App holds the deck and everything needed to draw it. It is driven from a
// single goroutine: input, ticks and rendering all happen on the frame loop.
type App struct {
	opts     Options
	sched    *anim.Scheduler
	deck     *deck.Deck
	surfaces []*Surface
	stack    []stackSlot
	fb       *Framebuffer
	hud      *HUD
	fill     color.RGBA

	cols, rows int
	viewport   geom.Vector
}

// NewApp builds the deck for a cols x rows terminal.
func NewApp(opts Options, cols, rows int, now time.Time) (*App, error) {
	fill, err := ParseHexColor(opts.CardColor)
	if err != nil {
		return nil, err
	}
	a := &App{
		opts:  opts,
		sched: anim.NewScheduler(now),
		hud:   NewHUD(),
		fill:  fill,
		fb:    NewFramebuffer(cols, rows*2, opts.CellWidth, opts.CellHeight/2),
	}
	a.setSize(cols, rows)
	a.surfaces = make([]*Surface, len(opts.Products))
	a.stack = make([]stackSlot, len(opts.Products))
	factory := func(_ deck.Product, i int) anim.Surface {
		s := NewSurface(a.sched.Now, a.viewport)
		a.surfaces[i] = s
		a.stack[i] = newStackSlot(opts.FPS, stackDepth(i, 0))
		return s
	}
	a.deck, err = deck.New(a.sched, opts.Products, deck.NewBasket(), factory,
		deck.WithCardOptions(
			card.WithSettings(opts.Settings),
			card.WithFlickOnSwipe(opts.FlickOnSwipe),
			card.WithPreventSwipe(opts.Prevent...),
			card.WithStyle("card", opts.CardColor),
		),
		deck.WithOnOutcome(a.outcome),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) outcome(p deck.Product, o deck.Outcome) {
	a.hud.SetStatus(fmt.Sprintf("%s: %s", p.Name, o))
	if a.opts.OnOutcome != nil {
		a.opts.OnOutcome(p, o)
	}
}

func (a *App) setSize(cols, rows int) {
	a.cols, a.rows = cols, rows
	a.viewport = geom.V(float64(cols)*a.opts.CellWidth, float64(rows)*a.opts.CellHeight)
}

// Deck returns the deck being shown.
func (a *App) Deck() *deck.Deck {
	return a.deck
}

// HUD returns the overlay.
func (a *App) HUD() *HUD {
	return a.hud
}

// Scheduler returns the animation clock.
func (a *App) Scheduler() *anim.Scheduler {
	return a.sched
}

// Surface returns the surface of card i.
func (a *App) Surface(i int) *Surface {
	return a.surfaces[i]
}

// Resize adapts the framebuffer and the card viewports to a new terminal size.
func (a *App) Resize(cols, rows int) {
	a.setSize(cols, rows)
	a.fb.Resize(cols, rows*2)
	for _, s := range a.surfaces {
		s.SetViewport(a.viewport)
	}
}

// toPixels maps a terminal cell to the engine pixel at its center.
func (a *App) toPixels(col, row int) geom.Vector {
	return geom.V((float64(col)+0.5)*a.opts.CellWidth, (float64(row)+0.5)*a.opts.CellHeight)
}

// cardCenter is the rest position of card i in engine pixels.
func (a *App) cardCenter(i int) geom.Vector {
	return a.viewport.Scale(0.5).Add(geom.V(0, a.stack[i].Position))
}

// over reports whether engine pixel p lies on card i when placed at tr.
func (a *App) over(i int, p geom.Vector, tr geom.Transform) bool {
	inv, ok := tr.Matrix().Invert()
	if !ok {
		return false
	}
	local := inv.Apply(p.Sub(a.cardCenter(i)))
	half := a.cardSize().Scale(0.5)
	return abs(local.X) <= half.X && abs(local.Y) <= half.Y
}

// dragging returns the index of the card being dragged.
func (a *App) dragging() (int, bool) {
	for i := range a.deck.Len() {
		if a.deck.Card(i).State() == gesture.Dragging {
			return i, true
		}
	}
	return -1, false
}

// Press handles a left click: a HUD button swipes the top card, a click on
// the top card starts a drag and anything else is ignored.
func (a *App) Press(col, row int, t time.Time) bool {
	if dir, ok := a.hud.ButtonAt(col, row, a.cols, a.rows); ok {
		a.Swipe(dir)
		return true
	}
	i, ok := a.deck.Top()
	if !ok || !a.over(i, a.toPixels(col, row), a.surfaces[i].Transform()) {
		return false
	}
	return a.Pointer(gesture.PointerDown, col, row, t)
}

// Move handles a drag sample. Moving off the card, as it was placed by the
// previous sample, ends the drag like a release.
func (a *App) Move(col, row int, t time.Time) bool {
	i, ok := a.dragging()
	if !ok {
		return false
	}
	if !a.over(i, a.toPixels(col, row), a.surfaces[i].Target()) {
		log.LogVf("pointer left card %d at %d,%d", i, col, row)
		return a.Pointer(gesture.PointerLeave, col, row, t)
	}
	return a.Pointer(gesture.PointerMove, col, row, t)
}

// Release handles the mouse button going up.
func (a *App) Release(col, row int, t time.Time) bool {
	return a.Pointer(gesture.PointerUp, col, row, t)
}

// Pointer forwards a mouse event at cell (col, row) to the deck.
func (a *App) Pointer(kind gesture.PointerKind, col, row int, t time.Time) bool {
	return a.deck.HandlePointer(gesture.PointerEvent{
		Kind:   kind,
		Source: gesture.Mouse,
		Pos:    a.toPixels(col, row),
		Time:   t,
	})
}

// Swipe swipes the top card programmatically.
func (a *App) Swipe(dir gesture.Direction) {
	if _, err := a.deck.SwipeTop(dir); err != nil {
		log.LogVf("swipe %s: %v", dir, err)
		a.hud.SetStatus(err.Error())
	}
}

// Reset deals a fresh deck, keeping the basket.
func (a *App) Reset() {
	if err := a.deck.Reset(); err != nil {
		log.Errf("reset: %v", err)
		a.hud.SetStatus(err.Error())
		return
	}
	a.hud.SetStatus("")
}

// Key processes a chunk of keyboard input and reports whether to quit.
// Escape sequences other than a lone Esc are ignored.
func (a *App) Key(data []byte) bool {
	if len(data) > 1 && data[0] == 27 {
		return false
	}
	for _, b := range data {
		switch b {
		case 'q', 'Q', 3, 4: // Ctrl-C, Ctrl-D
			return true
		case 27:
			return true
		case 'r', 'R':
			a.Reset()
		case '?':
			a.hud.Show = !a.hud.Show
		}
	}
	return false
}

// Tick advances the animation clock, firing due animation steps, and moves
// the pile one frame toward its slots.
func (a *App) Tick(now time.Time) int {
	fired := a.sched.Advance(now)
	top, _ := a.deck.Top()
	for i := range a.stack {
		a.stack[i].Update(stackDepth(i, top))
	}
	return fired
}

// cardSize fits a 3:4 card in the viewport.
func (a *App) cardSize() geom.Vector {
	h := a.viewport.Y * 0.6
	w := h * 0.75
	if limit := a.viewport.X * 0.8; w > limit {
		w = limit
		h = w / 0.75
	}
	return geom.V(w, h)
}

// Render draws the visible cards bottom to top and returns the frame.
func (a *App) Render() *Framebuffer {
	a.fb.Clear()
	size := a.cardSize()
	top, _ := a.deck.Top()
	for i := len(a.surfaces) - 1; i >= 0; i-- {
		s := a.surfaces[i]
		if s == nil || s.Hidden() {
			continue
		}
		fill := a.fill
		if c, err := ParseHexColor(a.deck.Card(i).Style()); err == nil {
			fill = c
		}
		if depth := stackDepth(i, top); depth > 0 {
			fill = shade(fill, 1-0.12*float64(depth))
		}
		a.fb.DrawCard(a.cardCenter(i), size, s.Transform(), fill)
	}
	return a.fb
}

// label returns the text for the top card and the cell its first line
// starts at. The text follows the card translation but not its rotation.
func (a *App) label() (lines []string, col, row int, ok bool) {
	i, ok := a.deck.Top()
	if !ok {
		return nil, 0, 0, false
	}
	p := a.deck.Product(i)
	pos := a.viewport.Scale(0.5).Add(a.surfaces[i].Transform().Translation())
	lines = []string{p.Brand, p.Name, p.PriceLine()}
	col = int(pos.X / a.opts.CellWidth)
	row = int(pos.Y/a.opts.CellHeight) - len(lines)/2
	return lines, col, row, true
}

func (a *App) drawLabel(ap *ansipixels.AnsiPixels) {
	lines, col, row, ok := a.label()
	if !ok {
		return
	}
	for i, l := range lines {
		x := col - len([]rune(l))/2
		y := row + i
		if x < 0 || y < 1 || y >= ap.H-2 {
			continue
		}
		ap.WriteAtStr(x, y, l)
	}
}

// Run opens the terminal and runs the frame loop until the user quits.
func Run(opts Options) error {
	ap := ansipixels.NewAnsiPixels(opts.FPS)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.MouseTrackingOn()
	ap.HideCursor()

	if ap.W <= 0 || ap.H <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
	}
	app, err := NewApp(opts, ap.W, ap.H, time.Now())
	if err != nil {
		return err
	}
	app.fb.BG = color.RGBA{ap.Background.R, ap.Background.G, ap.Background.B, 255}

	ap.OnMouse = func() {
		now := time.Now()
		switch {
		case ap.LeftClick():
			app.Press(ap.Mx, ap.My, now)
		case ap.LeftDrag():
			app.Move(ap.Mx, ap.My, now)
		case ap.MouseRelease():
			app.Release(ap.Mx, ap.My, now)
		}
	}
	ap.OnResize = func() error {
		app.Resize(ap.W, ap.H)
		return nil
	}

	err = ap.FPSTicks(func() bool {
		if len(ap.Data) > 0 && app.Key(ap.Data) {
			return false
		}
		app.Tick(time.Now())
		fb := app.Render()
		ap.StartSyncMode()
		ap.ClearScreen()
		if err := ap.ShowScaledImage(fb.ToImage()); err != nil {
			log.Errf("show image: %v", err)
			return false
		}
		app.drawLabel(ap)
		app.hud.UpdateFPS()
		app.hud.Draw(ap, app.deck)
		ap.EndSyncMode()
		return true
	})
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}
