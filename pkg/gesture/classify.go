package gesture

import "github.com/taigrr/cardswipe/pkg/geom"

// DefaultThreshold is the release speed, in px/s on either axis, a gesture
// has to exceed to count as a swipe.
const DefaultThreshold = 300.0

// Policy controls what happens once a gesture is classified.
type Policy struct {
	Threshold    float64
	FlickOnSwipe bool
	Prevent      DirectionSet
}

// DefaultPolicy returns the policy a card starts with.
func DefaultPolicy() Policy {
	return Policy{Threshold: DefaultThreshold, FlickOnSwipe: true}
}

// Decision is the outcome of a released gesture. Swiped means the swipe was
// detected and should be reported; Fling means the card should also leave.
type Decision struct {
	Direction Direction
	Swiped    bool
	Fling     bool
}

// Classify returns the direction of speed and whether it clears threshold.
// It is pure: the same input always yields the same result.
func Classify(speed geom.Speed, threshold float64) (Direction, bool) {
	return DirectionOf(speed), speed.MaxAbs() > threshold
}

// Decide applies p to a release speed.
func Decide(speed geom.Speed, p Policy) Decision {
	dir, swiped := Classify(speed, p.Threshold)
	return Decision{
		Direction: dir,
		Swiped:    swiped,
		Fling:     swiped && p.FlickOnSwipe && !p.Prevent.Contains(dir),
	}
}
