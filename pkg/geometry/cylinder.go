package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a unit-radius cylinder along the y axis in object space,
// infinite unless truncated by Minimum and Maximum, and open-ended unless
// Closed is set.
type Cylinder struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the default material.
func NewCylinder() *Cylinder {
	return &Cylinder{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewClosedCylinder creates a capped cylinder truncated to the given y
// range.
func NewClosedCylinder(minimum, maximum float64) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = true
	return c
}

// LocalIntersect tests the cylinder wall with a quadratic in x and z, keeps
// only roots within the y truncation range, and adds cap hits when closed.
func (c *Cylinder) LocalIntersect(localRay core.Ray) []Intersection {
	var xs []Intersection

	dir, origin := localRay.Direction, localRay.Origin
	a := dir.X*dir.X + dir.Z*dir.Z

	// A ray parallel to the y axis can still hit the caps.
	if math.Abs(a) >= core.Epsilon {
		b := 2*origin.X*dir.X + 2*origin.Z*dir.Z
		cc := origin.X*origin.X + origin.Z*origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range []float64{t0, t1} {
			y := origin.Y + t*dir.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, NewIntersection(t, c))
			}
		}
	}

	xs = c.intersectCaps(localRay, xs)
	return NewIntersections(xs...)
}

// intersectCaps adds intersections with the end caps of a closed cylinder.
func (c *Cylinder) intersectCaps(localRay core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(localRay.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, y := range []float64{c.Minimum, c.Maximum} {
		t := (y - localRay.Origin.Y) / localRay.Direction.Y
		if checkCap(localRay, t, 1) {
			xs = append(xs, NewIntersection(t, c))
		}
	}
	return xs
}

// checkCap reports whether the point at t lies within the cap radius.
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt returns the wall normal, or the cap normal when the point
// lies on an end cap.
func (c *Cylinder) LocalNormalAt(localPoint core.Tuple) core.Tuple {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z

	if dist < 1 && localPoint.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && localPoint.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(localPoint.X, 0, localPoint.Z)
}
