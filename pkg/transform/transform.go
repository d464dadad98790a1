// Package transform builds the affine matrices assigned to shapes, patterns,
// and the camera. Builders are pure functions; composition is matrix
// multiplication applied right-to-left.
package transform

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Translation returns a matrix that moves points by (x, y, z). Vectors are
// unaffected.
func Translation(x, y, z float64) core.Matrix4 {
	return core.NewMatrix4([4][4]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling returns a matrix that scales each axis independently.
func Scaling(x, y, z float64) core.Matrix4 {
	return core.NewMatrix4([4][4]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// RotationX returns a matrix rotating about the x axis by the given radians.
func RotationX(radians float64) core.Matrix4 {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return core.NewMatrix4([4][4]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY returns a matrix rotating about the y axis by the given radians.
func RotationY(radians float64) core.Matrix4 {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return core.NewMatrix4([4][4]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ returns a matrix rotating about the z axis by the given radians.
func RotationZ(radians float64) core.Matrix4 {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return core.NewMatrix4([4][4]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing returns a matrix where each coordinate shifts in proportion to
// the other two: xy is x moved in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) core.Matrix4 {
	return core.NewMatrix4([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// ViewTransform returns the matrix that orients the world relative to an eye
// at from, looking at to, with the given approximate up vector. It returns
// an error when the inputs are degenerate (zero forward or up, or forward
// parallel to up).
func ViewTransform(from, to, up core.Tuple) (core.Matrix4, error) {
	forward, err := to.Subtract(from).Normalize()
	if err != nil {
		return core.Matrix4{}, err
	}
	upn, err := up.Normalize()
	if err != nil {
		return core.Matrix4{}, err
	}
	left, err := forward.Cross(upn)
	if err != nil {
		return core.Matrix4{}, err
	}
	if left.Magnitude() < core.Epsilon {
		return core.Matrix4{}, core.ErrDegenerateVector
	}
	trueUp, err := left.Cross(forward)
	if err != nil {
		return core.Matrix4{}, err
	}

	orientation := core.NewMatrix4([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}

// Chain accumulates transforms in application order: each call left-
// multiplies the accumulated matrix, so Scale then Rotate then Translate
// produces translate * rotate * scale.
type Chain struct {
	m core.Matrix4
}

// NewChain starts a chain at the identity matrix.
func NewChain() *Chain {
	return &Chain{m: core.Identity()}
}

func (c *Chain) apply(m core.Matrix4) *Chain {
	c.m = m.Multiply(c.m)
	return c
}

// Translate appends a translation.
func (c *Chain) Translate(x, y, z float64) *Chain {
	return c.apply(Translation(x, y, z))
}

// Scale appends a scaling.
func (c *Chain) Scale(x, y, z float64) *Chain {
	return c.apply(Scaling(x, y, z))
}

// RotateX appends a rotation about the x axis.
func (c *Chain) RotateX(radians float64) *Chain {
	return c.apply(RotationX(radians))
}

// RotateY appends a rotation about the y axis.
func (c *Chain) RotateY(radians float64) *Chain {
	return c.apply(RotationY(radians))
}

// RotateZ appends a rotation about the z axis.
func (c *Chain) RotateZ(radians float64) *Chain {
	return c.apply(RotationZ(radians))
}

// Shear appends a shearing.
func (c *Chain) Shear(xy, xz, yx, yz, zx, zy float64) *Chain {
	return c.apply(Shearing(xy, xz, yx, yz, zx, zy))
}

// Matrix returns the accumulated transform.
func (c *Chain) Matrix() core.Matrix4 {
	return c.m
}
