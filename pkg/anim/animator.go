// Package anim drives the two exit animations of a card, fling-out and
// snap-back, on a cooperative scheduler.
package anim

import (
	"fmt"
	"time"

	"fortio.org/log"
	"github.com/taigrr/cardswipe/pkg/geom"
)

// Surface is the visual element a card moves. Implementations own the
// transform state and render transitions between written transforms.
type Surface interface {
	// Transform returns the transform currently shown.
	Transform() geom.Transform
	// SetTransform starts a transition toward t.
	SetTransform(t geom.Transform, tr Transition)
	// SetTransition changes the transition used by later writes.
	SetTransition(tr Transition)
	// Viewport returns the size of the area the card has to clear.
	Viewport() geom.Vector
	// Hide removes the surface from view.
	Hide()
}

// Animator runs fling-out and snap-back animations.
type Animator struct {
	sched    *Scheduler
	settings Settings
	rand     Rand
}

// NewAnimator creates an animator. A nil rnd uses DefaultRand.
func NewAnimator(sched *Scheduler, settings Settings, rnd Rand) *Animator {
	if rnd == nil {
		rnd = DefaultRand()
	}
	return &Animator{sched: sched, settings: settings, rand: rnd}
}

// Settings returns the animator tuning.
func (a *Animator) Settings() Settings {
	return a.settings
}

// FlingDuration is the time a card moving at speed needs to cover the
// viewport diagonal. Faster flings leave sooner.
func FlingDuration(speed geom.Speed, viewport geom.Vector) (time.Duration, error) {
	v := speed.Len()
	if v == 0 {
		return 0, fmt.Errorf("fling: %w", geom.ErrDegenerateVelocity)
	}
	secs := viewport.Len() / v
	return time.Duration(secs * float64(time.Second)), nil
}

// FlingOut sends the surface out of the viewport along speed. The returned
// completion resolves once the computed duration has elapsed; hiding the
// surface is left to the caller.
func (a *Animator) FlingOut(s Surface, speed geom.Speed, easeIn bool) (*Completion, error) {
	dur, err := FlingDuration(speed, s.Viewport())
	if err != nil {
		return nil, err
	}
	cur := s.Transform()
	secs := dur.Seconds()
	target := geom.Transform{
		TranslateX:  cur.TranslateX + speed.X*secs,
		TranslateY:  cur.TranslateY - speed.Y*secs,
		RotationDeg: a.flingRotation(cur.RotationDeg),
	}
	easing := EaseOut
	if easeIn {
		easing = Ease
	}
	tr := Transition{Duration: dur, Easing: easing}
	log.Debugf("fling %v over %v (%s)", target, dur, tr)
	s.SetTransform(target, tr)

	var timer *Timer
	c := newCompletion(func() { timer.Stop() })
	timer = a.sched.After(dur, c.resolve)
	return c, nil
}

// flingRotation keeps spinning the way the drag already tilted the card.
func (a *Animator) flingRotation(current float64) float64 {
	power := a.settings.RotationPower
	r := a.rand.Float64()
	switch {
	case current == 0:
		return (r - 0.5) * power
	case current > 0:
		return current + r*(power/2)
	default:
		return current + (r-1)*(power/2)
	}
}

// SnapBack returns the surface to neutral with a small recoil past it. Both
// writes use Ease so the recoil target is the furthest the card travels. The
// completion resolves after SnapBackDuration; cancelling it stops the
// remaining steps.
func (a *Animator) SnapBack(s Surface) *Completion {
	d := a.settings.SnapBackDuration
	tr := Transition{Duration: d, Easing: Ease}
	s.SetTransform(s.Transform().Scale(-a.settings.BouncePower), tr)

	var reset, settle *Timer
	c := newCompletion(func() {
		reset.Stop()
		settle.Stop()
	})
	reset = a.sched.After(d*3/4, func() {
		s.SetTransform(geom.Neutral(), tr)
	})
	settle = a.sched.After(d, func() {
		s.SetTransition(Transition{Duration: a.settings.SettleDuration, Easing: Linear})
		c.resolve()
	})
	return c
}
