package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning -1..1 on every axis in object
// space.
type Cube struct {
	baseShape
}

// NewCube creates a cube with the default material.
func NewCube() *Cube {
	return &Cube{baseShape: newBaseShape()}
}

// LocalIntersect runs the slab test: the ray enters the cube where it has
// crossed all three axis slabs and leaves where it first exits one.
func (c *Cube) LocalIntersect(localRay core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(localRay.Origin.X, localRay.Direction.X)
	ytMin, ytMax := checkAxis(localRay.Origin.Y, localRay.Direction.Y)
	ztMin, ztMax := checkAxis(localRay.Origin.Z, localRay.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// checkAxis finds where the ray crosses the two planes of one axis slab.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = math.Copysign(math.Inf(1), tMinNumerator)
		tMax = math.Copysign(math.Inf(1), tMaxNumerator)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt returns the normal of the face containing the point, chosen
// by the largest absolute component.
func (c *Cube) LocalNormalAt(localPoint core.Tuple) core.Tuple {
	absX := math.Abs(localPoint.X)
	absY := math.Abs(localPoint.Y)
	absZ := math.Abs(localPoint.Z)
	maxC := math.Max(absX, math.Max(absY, absZ))

	switch maxC {
	case absX:
		return core.NewVector(localPoint.X, 0, 0)
	case absY:
		return core.NewVector(0, localPoint.Y, 0)
	default:
		return core.NewVector(0, 0, localPoint.Z)
	}
}
