// Package gesture turns raw pointer input into swipe gestures: it tracks one
// drag session per card and classifies release velocities into directions.
package gesture

import (
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/cardswipe/pkg/geom"
)

// Direction is the classified direction of a swipe.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Right, Left, Up, Down}

// String returns the lower-case direction name used in callbacks and config.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection parses a direction name, ignoring case and surrounding space.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// DirectionOf picks the dominant axis of speed. Ties go to the vertical axis.
func DirectionOf(speed geom.Speed) Direction {
	if math.Abs(speed.X) > math.Abs(speed.Y) {
		if speed.X > 0 {
			return Right
		}
		return Left
	}
	if speed.Y > 0 {
		return Up
	}
	return Down
}

// DirectionSet is a small set of directions.
type DirectionSet uint8

// NewDirectionSet builds a set from dirs.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

// ParseDirectionSet parses a list of direction names.
func ParseDirectionSet(names []string) (DirectionSet, error) {
	var s DirectionSet
	for _, n := range names {
		d, err := ParseDirection(n)
		if err != nil {
			return 0, err
		}
		s |= 1 << d
	}
	return s, nil
}

// Contains reports whether d is in the set.
func (s DirectionSet) Contains(d Direction) bool {
	return s&(1<<d) != 0
}

// List returns the members in declaration order.
func (s DirectionSet) List() []Direction {
	var out []Direction
	for _, d := range Directions {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}
