// Package geometry holds the shape primitives, their object-space
// intersection math, and the intersection bookkeeping used to find visible
// surfaces.
package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// baseShape carries the transform, material, and parent state shared by all
// shape variants. The transform inverse is cached when the transform is set,
// so no matrix is inverted at render time.
type baseShape struct {
	transform core.Matrix4
	inverse   core.Matrix4
	mat       material.Material
	parent    Shape
}

func newBaseShape() baseShape {
	return baseShape{
		transform: core.Identity(),
		inverse:   core.Identity(),
		mat:       material.DefaultMaterial(),
	}
}

// Transform returns the shape's object-to-world transform.
func (b *baseShape) Transform() core.Matrix4 {
	return b.transform
}

// TransformInverse returns the cached inverse of the transform.
func (b *baseShape) TransformInverse() core.Matrix4 {
	return b.inverse
}

// SetTransform assigns the transform, caching its inverse.
func (b *baseShape) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// Material returns the shape's material.
func (b *baseShape) Material() material.Material {
	return b.mat
}

// SetMaterial assigns the shape's material.
func (b *baseShape) SetMaterial(m material.Material) {
	b.mat = m
}

// Parent returns the enclosing group, or nil.
func (b *baseShape) Parent() Shape {
	return b.parent
}

// SetParent records the enclosing group.
func (b *baseShape) SetParent(p Shape) {
	b.parent = p
}

// Intersect transforms the ray into the shape's object space and runs the
// shape-local intersection test. The direction is not renormalized, so the
// returned t values are valid in world units.
func Intersect(s Shape, ray core.Ray) []Intersection {
	localRay := ray.Transform(s.TransformInverse())
	return s.LocalIntersect(localRay)
}

// WorldToObject converts a world-space point into the shape's object space,
// walking up through any enclosing groups first.
func WorldToObject(s Shape, point core.Tuple) core.Tuple {
	if s.Parent() != nil {
		point = WorldToObject(s.Parent(), point)
	}
	return s.TransformInverse().MultiplyTuple(point)
}

// WorldToObjectMatrix returns the cumulative world-to-object matrix for a
// shape, composing the inverse transforms of its group chain.
func WorldToObjectMatrix(s Shape) core.Matrix4 {
	m := s.TransformInverse()
	if s.Parent() != nil {
		m = m.Multiply(WorldToObjectMatrix(s.Parent()))
	}
	return m
}

// NormalToWorld converts an object-space normal to world space using the
// transpose of the inverse transform, which keeps normals perpendicular
// under non-uniform scaling. The result is renormalized at each level.
func NormalToWorld(s Shape, normal core.Tuple) core.Tuple {
	n := s.TransformInverse().Transpose().MultiplyTuple(normal)
	n.W = 0
	n = n.MustNormalize()
	if s.Parent() != nil {
		n = NormalToWorld(s.Parent(), n)
	}
	return n
}

// NormalAt returns the world-space surface normal at a world-space point.
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return NormalToWorld(s, localNormal)
}
