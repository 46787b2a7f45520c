package card

import (
	"github.com/taigrr/cardswipe/pkg/anim"
	"github.com/taigrr/cardswipe/pkg/gesture"
)

// Option configures a Card.
type Option func(*Card)

// WithFlickOnSwipe controls whether a detected swipe also flings the card
// out. When false, swipes are still reported through the swipe callback.
func WithFlickOnSwipe(enabled bool) Option {
	return func(c *Card) { c.policy.FlickOnSwipe = enabled }
}

// WithPreventSwipe keeps the card in place for the given directions.
func WithPreventSwipe(dirs ...gesture.Direction) Option {
	return func(c *Card) { c.policy.Prevent = gesture.NewDirectionSet(dirs...) }
}

// WithOnSwipe sets the callback fired once per classified swipe, before any
// animation starts.
func WithOnSwipe(fn func(gesture.Direction)) Option {
	return func(c *Card) { c.onSwipe = fn }
}

// WithOnCardLeftScreen sets the callback fired when the card has left the
// view. It never fires for a snap-back.
func WithOnCardLeftScreen(fn func(gesture.Direction)) Option {
	return func(c *Card) { c.onCardLeftScreen = fn }
}

// WithSettings overrides the gesture and animation tuning.
func WithSettings(s anim.Settings) Option {
	return func(c *Card) {
		c.settings = s
		c.policy.Threshold = s.SwipeThreshold
	}
}

// WithRand sets the random source for fling spin and swipe jitter.
func WithRand(r anim.Rand) Option {
	return func(c *Card) { c.rand = r }
}

// WithStyle attaches presentation hints that the card passes through to its
// surface untouched.
func WithStyle(className, style string) Option {
	return func(c *Card) {
		c.className = className
		c.style = style
	}
}
