package anim

import (
	"fmt"
	"time"
)

// Easing is a timing curve mapping animation progress to interpolation
// progress, both in [0, 1].
type Easing uint8

const (
	Linear Easing = iota
	Ease
	EaseOut
)

// String returns the CSS-style name of the curve.
func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case Ease:
		return "ease"
	case EaseOut:
		return "ease-out"
	default:
		return "unknown"
	}
}

// At evaluates the curve at progress p. Every curve returns exactly 0 at
// p <= 0 and exactly 1 at p >= 1.
func (e Easing) At(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	switch e {
	case Ease:
		return cubicBezier(0.25, 0.1, 0.25, 1, p)
	case EaseOut:
		return cubicBezier(0, 0, 0.58, 1, p)
	default:
		return p
	}
}

// Transition is how a surface moves toward a newly written transform.
type Transition struct {
	Duration time.Duration
	Easing   Easing
}

// String formats the transition like a CSS transition shorthand.
func (t Transition) String() string {
	return fmt.Sprintf("%s %gs", t.Easing, t.Duration.Seconds())
}

// Progress returns the eased progress after elapsed time.
func (t Transition) Progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 {
		return 1
	}
	return t.Easing.At(float64(elapsed) / float64(t.Duration))
}

// cubicBezier evaluates a CSS cubic-bezier(x1, y1, x2, y2) at x.
func cubicBezier(x1, y1, x2, y2, x float64) float64 {
	bez := func(a, b, t float64) float64 {
		mt := 1 - t
		return 3*mt*mt*t*a + 3*mt*t*t*b + t*t*t
	}
	lo, hi := 0.0, 1.0
	t := x
	for range 40 {
		got := bez(x1, x2, t)
		if got < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bez(y1, y2, t)
}
