package geom

import (
	"errors"
	"time"
)

// ErrDegenerateVelocity is returned when a velocity cannot be derived, either
// because two samples share a timestamp or because a fling has no speed.
var ErrDegenerateVelocity = errors.New("degenerate velocity")

// Speed is a velocity in pixels per second. Y is positive upward.
type Speed = Vector

// Location is a position sample. Values are never mutated after creation.
type Location struct {
	Vector
	Time time.Time
}

// At creates a Location sample.
func At(pos Vector, t time.Time) Location {
	return Location{Vector: pos, Time: t}
}

// EstimateVelocity derives the velocity between two samples. The Y axis is
// inverted relative to the screen: moving toward the top of the screen gives a
// positive Y speed. Coalesced samples (dt <= 0) yield a zero Speed together
// with ErrDegenerateVelocity so callers never see NaN or Inf.
func EstimateVelocity(prev, next Location) (Speed, error) {
	dt := next.Time.Sub(prev.Time).Seconds()
	if dt <= 0 {
		return Speed{}, ErrDegenerateVelocity
	}
	dx := next.X - prev.X
	dy := prev.Y - next.Y
	return Speed{X: dx / dt, Y: dy / dt}, nil
}
