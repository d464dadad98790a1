package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern is a surface color that varies over space. Patterns are evaluated
// in pattern space: the world point is converted with the shape's
// world-to-object matrix and then by the pattern's own inverse transform.
type Pattern interface {
	// ColorAtLocal returns the pattern color at a point in pattern space.
	ColorAtLocal(point core.Tuple) core.Color
	// TransformInverse returns the cached inverse of the pattern transform.
	TransformInverse() core.Matrix4
	// SetTransform assigns the pattern transform. It returns
	// ErrNonInvertibleMatrix for a singular matrix.
	SetTransform(m core.Matrix4) error
}

// ColorAtObject evaluates a pattern at a world-space point on a shape whose
// cumulative world-to-object matrix is given.
func ColorAtObject(p Pattern, worldToObject core.Matrix4, worldPoint core.Tuple) core.Color {
	objectPoint := worldToObject.MultiplyTuple(worldPoint)
	patternPoint := p.TransformInverse().MultiplyTuple(objectPoint)
	return p.ColorAtLocal(patternPoint)
}

// basePattern holds the transform state shared by all pattern variants.
type basePattern struct {
	transform core.Matrix4
	inverse   core.Matrix4
}

func newBasePattern() basePattern {
	return basePattern{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the pattern transform.
func (b *basePattern) Transform() core.Matrix4 {
	return b.transform
}

// TransformInverse returns the cached inverse of the pattern transform.
func (b *basePattern) TransformInverse() core.Matrix4 {
	return b.inverse
}

// SetTransform assigns the pattern transform, caching its inverse.
func (b *basePattern) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// StripePattern alternates two colors in unit-wide bands along the x axis.
type StripePattern struct {
	basePattern
	A, B core.Color
}

// NewStripePattern creates a stripe pattern.
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAtLocal returns the stripe color at a pattern-space point.
func (p *StripePattern) ColorAtLocal(point core.Tuple) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from one color to another along x.
type GradientPattern struct {
	basePattern
	From, To core.Color
}

// NewGradientPattern creates a gradient pattern.
func NewGradientPattern(from, to core.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), From: from, To: to}
}

// ColorAtLocal returns the interpolated color at a pattern-space point.
func (p *GradientPattern) ColorAtLocal(point core.Tuple) core.Color {
	distance := p.To.Subtract(p.From)
	fraction := point.X - math.Floor(point.X)
	return p.From.Add(distance.Multiply(fraction))
}

// RingPattern alternates two colors in concentric rings about the y axis.
type RingPattern struct {
	basePattern
	A, B core.Color
}

// NewRingPattern creates a ring pattern.
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAtLocal returns the ring color at a pattern-space point.
func (p *RingPattern) ColorAtLocal(point core.Tuple) core.Color {
	if int(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckersPattern alternates two colors in a 3D checkerboard.
type CheckersPattern struct {
	basePattern
	A, B core.Color
}

// NewCheckersPattern creates a checkers pattern.
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAtLocal returns the checker color at a pattern-space point.
func (p *CheckersPattern) ColorAtLocal(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}
