package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq for float64 comparisons.
const (
	Epsilon = 1e-9
)

// DefaultHeading is the canonical facing used whenever a direction has zero length.
var DefaultHeading = Vector2D{X: 1, Y: 0}

// Vector2D represents a 2D vector or point in cartesian space.
// Fields are public because positions and headings are plain value data:
// v := Vector2D{X: 1, Y: 2}
type Vector2D struct {
	X float64 `json:"x" csv:"x"`
	Y float64 `json:"y" csv:"y"`
}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers, new values returned: a Vector2D is never shared.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Dot calculates the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross calculates the 2D scalar cross product (z-component of 3D cross product).
// It is zero for collinear vectors.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// ---------------------------------------------------------------------
// Magnitude and Direction
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns a unit vector in the same direction.
// Returns a zero vector if the length is effectively zero.
func (v Vector2D) Normalize() Vector2D {
	l := v.Len()
	if l < Epsilon {
		return Vector2D{0, 0}
	}
	return v.Mul(1 / l)
}

// Unit returns the unit vector of v and true, or the zero vector and false when v
// has exactly zero length. Unlike Normalize, tiny non-zero vectors still get a direction.
func (v Vector2D) Unit() (Vector2D, bool) {
	l := v.Len()
	if l == 0 {
		return Vector2D{}, false
	}
	return Vector2D{v.X / l, v.Y / l}, true
}

// UnitOr returns the unit vector of v, or fallback when v has zero length.
func (v Vector2D) UnitOr(fallback Vector2D) Vector2D {
	if u, ok := v.Unit(); ok {
		return u
	}
	return fallback
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another vector.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Angle returns the angle (in radians) of the vector relative to the X-axis.
// Range: [-Pi, Pi]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Wrap maps both coordinates into [0, size) with a floored modulo,
// so -0.5 wraps to size-0.5 rather than staying negative.
func (v Vector2D) Wrap(size float64) Vector2D {
	return Vector2D{X: wrap(v.X, size), Y: wrap(v.Y, size)}
}

func wrap(x, size float64) float64 {
	m := math.Mod(x, size)
	if m < 0 {
		m += size
	}
	// -tiny + size rounds up to size
	if m >= size {
		m = 0
	}
	return m
}

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

// EqTol is Eq with a caller supplied tolerance.
func (v Vector2D) EqTol(other Vector2D, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol && math.Abs(v.Y-other.Y) <= tol
}
