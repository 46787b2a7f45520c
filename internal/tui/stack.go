package tui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	stackOffset   = 10
	stackMaxDepth = 3
)

// stackSlot is the vertical offset of a card in the pile. When the card
// above leaves, the offset springs toward the new slot.
type stackSlot struct {
	Position float64
	velocity float64
	spring   harmonica.Spring
}

// newStackSlot creates a slot resting at depth.
func newStackSlot(fps float64, depth int) stackSlot {
	if fps <= 0 {
		fps = 60
	}
	return stackSlot{
		Position: depthOffset(depth),
		// Critically damped: the card slides up without bouncing past its slot.
		spring: harmonica.NewSpring(harmonica.FPS(int(math.Round(fps))), 6.0, 1.0),
	}
}

// Update moves the slot one frame toward depth.
func (s *stackSlot) Update(depth int) {
	s.Position, s.velocity = s.spring.Update(s.Position, s.velocity, depthOffset(depth))
}

func depthOffset(depth int) float64 {
	return float64(depth * stackOffset)
}

// stackDepth is how far card i sits below top, capped.
func stackDepth(i, top int) int {
	return min(max(i-top, 0), stackMaxDepth)
}
