package geom

import (
	"fmt"
	"math"
)

// Transform is the visible state of a card: a translation followed by a
// rotation about the card center. Translation and rotation are always
// written together as one value.
type Transform struct {
	TranslateX  float64
	TranslateY  float64
	RotationDeg float64
}

// Neutral returns the identity transform.
func Neutral() Transform {
	return Transform{}
}

// Translation returns the translation part.
func (t Transform) Translation() Vector {
	return Vector{t.TranslateX, t.TranslateY}
}

// Rotation returns the rotation in degrees.
func (t Transform) Rotation() float64 {
	return t.RotationDeg
}

// IsNeutral reports whether t is the identity transform.
func (t Transform) IsNeutral() bool {
	return t == Transform{}
}

// Scale multiplies translation and rotation by s.
func (t Transform) Scale(s float64) Transform {
	return Transform{t.TranslateX * s, t.TranslateY * s, t.RotationDeg * s}
}

// Lerp interpolates every component between t and to.
func (t Transform) Lerp(to Transform, p float64) Transform {
	return Transform{
		TranslateX:  t.TranslateX + (to.TranslateX-t.TranslateX)*p,
		TranslateY:  t.TranslateY + (to.TranslateY-t.TranslateY)*p,
		RotationDeg: t.RotationDeg + (to.RotationDeg-t.RotationDeg)*p,
	}
}

// String is the only place that emits transform syntax.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx) rotate(%gdeg)", t.TranslateX, t.TranslateY, t.RotationDeg)
}

// Matrix returns the affine matrix equivalent to t.
func (t Transform) Matrix() Affine {
	rad := t.RotationDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Affine{A: cos, B: sin, C: -sin, D: cos, E: t.TranslateX, F: t.TranslateY}
}

// FromMatrix recovers the transform encoded by Matrix. Rotation comes back
// normalized to (-180, 180].
func FromMatrix(m Affine) Transform {
	return Transform{
		TranslateX:  m.E,
		TranslateY:  m.F,
		RotationDeg: math.Atan2(m.B, m.A) * 180 / math.Pi,
	}
}

// Affine is a 2D affine matrix in column-major order:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Affine struct {
	A, B, C, D, E, F float64
}

// Apply maps p through the matrix.
func (m Affine) Apply(p Vector) Vector {
	return Vector{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse matrix. A singular matrix returns the identity
// and false.
func (m Affine) Invert() (Affine, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Affine{A: 1, D: 1}, false
	}
	inv := 1 / det
	return Affine{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}
