package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is implemented by every geometric primitive. Shape-specific math
// happens in object space via LocalIntersect and LocalNormalAt; transform
// handling is shared by the Intersect and NormalAt functions in this
// package.
type Shape interface {
	// Transform returns the shape's object-to-world transform.
	Transform() core.Matrix4
	// TransformInverse returns the cached inverse of the transform.
	TransformInverse() core.Matrix4
	// SetTransform assigns the transform, caching its inverse. It returns
	// ErrNonInvertibleMatrix for a singular matrix.
	SetTransform(m core.Matrix4) error
	// Material returns the shape's material.
	Material() material.Material
	// SetMaterial assigns the shape's material.
	SetMaterial(m material.Material)
	// Parent returns the enclosing group, or nil. The reference is
	// non-owning and used only for transform composition.
	Parent() Shape
	// SetParent records the enclosing group.
	SetParent(p Shape)
	// LocalIntersect intersects a ray already in object space.
	LocalIntersect(localRay core.Ray) []Intersection
	// LocalNormalAt returns the surface normal at an object-space point.
	LocalNormalAt(localPoint core.Tuple) core.Tuple
}
