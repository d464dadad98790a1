package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane at y=0 in object space.
type Plane struct {
	baseShape
}

// NewPlane creates a plane with the default material.
func NewPlane() *Plane {
	return &Plane{baseShape: newBaseShape()}
}

// LocalIntersect returns the single crossing with the y=0 plane, or nothing
// when the ray is parallel to it.
func (p *Plane) LocalIntersect(localRay core.Ray) []Intersection {
	if math.Abs(localRay.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -localRay.Origin.Y / localRay.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant plane normal.
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
