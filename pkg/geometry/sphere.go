package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin. Size and
// placement come from the shape's transform.
type Sphere struct {
	baseShape
}

// NewSphere creates a unit sphere with the default material.
func NewSphere() *Sphere {
	return &Sphere{baseShape: newBaseShape()}
}

// NewGlassSphere creates a transparent sphere with a glass refractive index.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := material.DefaultMaterial()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	return s
}

// LocalIntersect solves |O + tD|^2 = 1 for the object-space ray, returning
// up to two roots in ascending order.
func (s *Sphere) LocalIntersect(localRay core.Ray) []Intersection {
	sphereToRay := localRay.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the normal at an object-space point, which for a
// unit sphere is the vector from the origin to the point.
func (s *Sphere) LocalNormalAt(localPoint core.Tuple) core.Tuple {
	return core.NewVector(localPoint.X, localPoint.Y, localPoint.Z)
}
