// Package geom holds the 2D value types shared by the swipe engine: vectors,
// timestamped locations, velocities and the card transform record.
package geom

import "math"

// Vector is a 2D quantity. Positions and sizes are in pixels, velocities in
// pixels per second.
type Vector struct {
	X, Y float64
}

// V creates a new Vector.
func V(x, y float64) Vector {
	return Vector{x, y}
}

// Zero returns the zero vector.
func Zero() Vector {
	return Vector{}
}

// Add returns the vector sum a + b.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vector) Scale(s float64) Vector {
	return Vector{a.X * s, a.Y * s}
}

// Negate returns the negated vector.
func (a Vector) Negate() Vector {
	return Vector{-a.X, -a.Y}
}

// Len returns the length of the vector.
func (a Vector) Len() float64 {
	return Magnitude(a.X, a.Y)
}

// MaxAbs returns the larger of |X| and |Y|.
func (a Vector) MaxAbs() float64 {
	return math.Max(math.Abs(a.X), math.Abs(a.Y))
}

// IsZero reports whether both components are zero.
func (a Vector) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// Magnitude returns the Euclidean norm of (x, y).
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
