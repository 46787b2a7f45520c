// Package card is the public face of the swipe engine. A Card wires a
// pointer tracker, the gesture classifier and the animator to one surface and
// reports outcomes through two callbacks.
package card

import (
	"errors"
	"fmt"

	"fortio.org/log"
	"github.com/google/uuid"
	"github.com/taigrr/cardswipe/pkg/anim"
	"github.com/taigrr/cardswipe/pkg/geom"
	"github.com/taigrr/cardswipe/pkg/gesture"
)

var (
	ErrMissingSurface = errors.New("card has no mounted surface")
	ErrAlreadyMounted = errors.New("card already has a mounted surface")
	ErrCardGone       = errors.New("card already left the view")
	ErrBusy           = errors.New("card is flinging out")
)

// SwipePower is the speed, in px/s, of a programmatic swipe.
const SwipePower = 1000.0

// SwipeJitter bounds the random perpendicular speed of a programmatic swipe.
const SwipeJitter = 100.0

// Handle identifies a mounted surface.
type Handle struct {
	ID uuid.UUID
}

// String returns the handle id.
func (h Handle) String() string {
	return h.ID.String()
}

// Card is a swipeable card. All methods must be called from the goroutine
// that advances the scheduler.
type Card struct {
	sched    *anim.Scheduler
	animator *anim.Animator
	tracker  *gesture.Tracker
	settings anim.Settings
	policy   gesture.Policy
	rand     anim.Rand

	onSwipe          func(gesture.Direction)
	onCardLeftScreen func(gesture.Direction)
	className, style string

	surface anim.Surface
	handle  Handle
	pending *anim.Completion
}

// New creates an unmounted card animated by sched.
func New(sched *anim.Scheduler, opts ...Option) *Card {
	c := &Card{
		sched:    sched,
		settings: anim.DefaultSettings(),
		policy:   gesture.DefaultPolicy(),
		rand:     anim.DefaultRand(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.animator = anim.NewAnimator(sched, c.settings, c.rand)
	c.tracker = gesture.NewTracker(c.settings.MaxTilt, dragHandler{c})
	return c
}

// Mount binds the card to a surface and returns its handle.
func (c *Card) Mount(s anim.Surface) (Handle, error) {
	if s == nil {
		return Handle{}, ErrMissingSurface
	}
	if c.surface != nil {
		return Handle{}, fmt.Errorf("mount %s: %w", c.handle, ErrAlreadyMounted)
	}
	c.surface = s
	c.handle = Handle{ID: uuid.New()}
	log.Debugf("card %s mounted", c.handle)
	return c.handle, nil
}

// Unmount detaches the surface and stops any pending animation.
func (c *Card) Unmount() {
	if c.surface == nil {
		return
	}
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	c.tracker = gesture.NewTracker(c.settings.MaxTilt, dragHandler{c})
	log.Debugf("card %s unmounted", c.handle)
	c.surface = nil
	c.handle = Handle{}
}

// Handle returns the handle of the mounted surface, if any.
func (c *Card) Handle() (Handle, bool) {
	return c.handle, c.surface != nil
}

// Surface returns the mounted surface or nil.
func (c *Card) Surface() anim.Surface {
	return c.surface
}

// State returns the drag state.
func (c *Card) State() gesture.State {
	return c.tracker.State()
}

// Policy returns the classification policy.
func (c *Card) Policy() gesture.Policy {
	return c.policy
}

// ClassName returns the class passthrough.
func (c *Card) ClassName() string { return c.className }

// Style returns the style passthrough.
func (c *Card) Style() string { return c.style }

// HandlePointer feeds one input event to the card and reports whether it was
// consumed.
func (c *Card) HandlePointer(ev gesture.PointerEvent) bool {
	if c.surface == nil {
		return false
	}
	return c.tracker.Handle(ev)
}

// Swipe flings the card out in dir exactly as a user swipe would: the swipe
// callback fires before it returns and the left-screen callback fires when
// the returned completion finishes.
func (c *Card) Swipe(dir gesture.Direction) (*anim.Completion, error) {
	if c.surface == nil {
		return nil, ErrMissingSurface
	}
	switch c.tracker.State() {
	case gesture.Gone:
		return nil, ErrCardGone
	case gesture.FlingingOut:
		return nil, ErrBusy
	case gesture.Dragging:
		c.tracker.Abort()
	case gesture.SnappingBack:
		c.cancelPending()
	}
	speed := c.swipeSpeed(dir)
	c.emitSwipe(dir)
	return c.flingOut(speed, dir, true)
}

func (c *Card) swipeSpeed(dir gesture.Direction) geom.Speed {
	jitter := (c.rand.Float64() - 0.5) * SwipeJitter
	switch dir {
	case gesture.Left:
		return geom.Speed{X: -SwipePower, Y: jitter}
	case gesture.Up:
		return geom.Speed{X: jitter, Y: SwipePower}
	case gesture.Down:
		return geom.Speed{X: jitter, Y: -SwipePower}
	default:
		return geom.Speed{X: SwipePower, Y: jitter}
	}
}

func (c *Card) emitSwipe(dir gesture.Direction) {
	log.Infof("card %s swiped %s", c.handle, dir)
	if c.onSwipe != nil {
		c.onSwipe(dir)
	}
}

func (c *Card) cancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
}

func (c *Card) flingOut(speed geom.Speed, dir gesture.Direction, easeIn bool) (*anim.Completion, error) {
	comp, err := c.animator.FlingOut(c.surface, speed, easeIn)
	if err != nil {
		return nil, fmt.Errorf("card %s: %w", c.handle, err)
	}
	if err := c.tracker.Transition(gesture.FlingingOut); err != nil {
		comp.Cancel()
		return nil, err
	}
	c.pending = comp
	surface := c.surface
	comp.Then(func() {
		c.pending = nil
		surface.Hide()
		_ = c.tracker.Transition(gesture.Gone)
		log.Infof("card %s left the screen %s", c.handle, dir)
		if c.onCardLeftScreen != nil {
			c.onCardLeftScreen(dir)
		}
	})
	return comp, nil
}

func (c *Card) snapBack() {
	if err := c.tracker.Transition(gesture.SnappingBack); err != nil {
		log.Errf("card %s: %v", c.handle, err)
		return
	}
	comp := c.animator.SnapBack(c.surface)
	c.pending = comp
	comp.Then(func() {
		c.pending = nil
		_ = c.tracker.Transition(gesture.Idle)
	})
}

// dragHandler keeps the tracker callbacks off the public API.
type dragHandler struct {
	c *Card
}

func (h dragHandler) DragStarted() {
	h.c.cancelPending()
	h.c.surface.SetTransition(anim.Transition{Duration: h.c.settings.SettleDuration, Easing: anim.Linear})
}

func (h dragHandler) Dragged(t geom.Transform) {
	h.c.surface.SetTransform(t, anim.Transition{Duration: h.c.settings.SettleDuration, Easing: anim.Linear})
}

func (h dragHandler) Released(speed geom.Speed) {
	c := h.c
	d := gesture.Decide(speed, c.policy)
	if d.Swiped {
		c.emitSwipe(d.Direction)
	}
	if d.Fling {
		_, err := c.flingOut(speed, d.Direction, false)
		if err == nil {
			return
		}
		log.Warnf("fling failed, snapping back: %v", err)
	}
	c.snapBack()
}
