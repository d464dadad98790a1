package core

import "math"

// Tuple represents a point (W=1) or a vector (W=0) in homogeneous
// coordinates. Keeping both under one algebra lets a single 4x4 matrix
// multiply handle translation (which affects points but not vectors)
// uniformly.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with an explicit W component.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point tuple (W=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector tuple (W=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return NearlyEqual(t.W, 1)
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return NearlyEqual(t.W, 0)
}

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
// Point - point yields a vector; point - vector yields a point.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple scaled by the reciprocal of a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-length tuple in the same direction. It returns
// ErrDegenerateVector for a zero-length tuple.
func (t Tuple) Normalize() (Tuple, error) {
	mag := t.Magnitude()
	if mag < Epsilon {
		return Tuple{}, ErrDegenerateVector
	}
	return t.Divide(mag), nil
}

// MustNormalize is like Normalize but panics on a zero-length tuple. It is
// for call sites whose inputs are non-zero by construction.
func (t Tuple) MustNormalize() Tuple {
	n, err := t.Normalize()
	if err != nil {
		panic(err)
	}
	return n
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. It returns
// ErrInvalidOperand if either operand is a point.
func (t Tuple) Cross(other Tuple) (Tuple, error) {
	if !t.IsVector() || !other.IsVector() {
		return Tuple{}, ErrInvalidOperand
	}
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	), nil
}

// Reflect returns the tuple reflected about the given normal vector.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether two tuples are equal within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return NearlyEqual(t.X, other.X) &&
		NearlyEqual(t.Y, other.Y) &&
		NearlyEqual(t.Z, other.Z) &&
		NearlyEqual(t.W, other.W)
}
