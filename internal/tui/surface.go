package tui

import (
	"time"

	"github.com/taigrr/cardswipe/pkg/anim"
	"github.com/taigrr/cardswipe/pkg/geom"
)

// Surface is an on-screen card. It interpolates between the transform shown
// when a write happened and the written target, following the active
// transition, on the scheduler clock.
type Surface struct {
	now      func() time.Time
	viewport geom.Vector

	from, to geom.Transform
	start    time.Time
	tr       anim.Transition
	hidden   bool
}

// NewSurface creates a visible surface at rest. now is usually the Now method
// of the scheduler driving the card.
func NewSurface(now func() time.Time, viewport geom.Vector) *Surface {
	return &Surface{now: now, viewport: viewport, start: now()}
}

// At returns the transform shown at time t.
func (s *Surface) At(t time.Time) geom.Transform {
	return s.from.Lerp(s.to, s.tr.Progress(t.Sub(s.start)))
}

// Transform returns the transform currently shown.
func (s *Surface) Transform() geom.Transform {
	return s.At(s.now())
}

// Target returns the last written transform.
func (s *Surface) Target() geom.Transform {
	return s.to
}

// SetTransform starts a transition from the current position toward t.
func (s *Surface) SetTransform(t geom.Transform, tr anim.Transition) {
	now := s.now()
	s.from = s.At(now)
	s.to = t
	s.start = now
	s.tr = tr
}

// SetTransition restarts the in-flight move from where it currently is using
// tr, keeping the target.
func (s *Surface) SetTransition(tr anim.Transition) {
	s.SetTransform(s.to, tr)
}

// Transition returns the active transition.
func (s *Surface) Transition() anim.Transition {
	return s.tr
}

// Viewport returns the area the card has to clear, in pixels.
func (s *Surface) Viewport() geom.Vector {
	return s.viewport
}

// SetViewport updates the area after a terminal resize.
func (s *Surface) SetViewport(v geom.Vector) {
	s.viewport = v
}

// Hide removes the card from view.
func (s *Surface) Hide() {
	s.hidden = true
}

// Hidden reports whether Hide was called.
func (s *Surface) Hidden() bool {
	return s.hidden
}
