package anim

import (
	"math/rand/v2"
	"time"

	"github.com/taigrr/cardswipe/pkg/gesture"
)

// Settings tunes the gesture and animation heuristics.
type Settings struct {
	// SnapBackDuration is the total length of the elastic return.
	SnapBackDuration time.Duration
	// SettleDuration is the near-instant transition used while dragging and
	// after a snap-back completes.
	SettleDuration time.Duration
	MaxTilt        float64
	BouncePower    float64
	SwipeThreshold float64
	// RotationPower bounds the random spin added by a fling, in degrees.
	RotationPower float64
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		SnapBackDuration: 300 * time.Millisecond,
		SettleDuration:   10 * time.Millisecond,
		MaxTilt:          gesture.DefaultMaxTilt,
		BouncePower:      0.2,
		SwipeThreshold:   gesture.DefaultThreshold,
		RotationPower:    200,
	}
}

// Rand is the random source used for fling rotation and swipe jitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type stdRand struct{}

func (stdRand) Float64() float64 { return rand.Float64() }

// DefaultRand returns the auto-seeded process random source.
func DefaultRand() Rand {
	return stdRand{}
}
