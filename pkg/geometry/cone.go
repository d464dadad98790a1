package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone along the y axis in object space, its radius
// equal to |y|, infinite unless truncated by Minimum and Maximum, and
// open-ended unless Closed is set.
type Cone struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open cone with the default material.
func NewCone() *Cone {
	return &Cone{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewClosedCone creates a capped cone truncated to the given y range.
func NewClosedCone(minimum, maximum float64) *Cone {
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = true
	return c
}

// LocalIntersect tests the cone surface with a quadratic; when the ray is
// parallel to one of the cone's halves the quadratic degenerates to a
// single root. Cap hits are added when closed.
func (c *Cone) LocalIntersect(localRay core.Ray) []Intersection {
	var xs []Intersection

	dir, origin := localRay.Direction, localRay.Origin
	a := dir.X*dir.X - dir.Y*dir.Y + dir.Z*dir.Z
	b := 2*origin.X*dir.X - 2*origin.Y*dir.Y + 2*origin.Z*dir.Z
	cc := origin.X*origin.X - origin.Y*origin.Y + origin.Z*origin.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Ray misses both halves entirely.
	case math.Abs(a) < core.Epsilon:
		t := -cc / (2 * b)
		if c.withinRange(origin.Y + t*dir.Y) {
			xs = append(xs, NewIntersection(t, c))
		}
	default:
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
			if c.withinRange(origin.Y + t*dir.Y) {
				xs = append(xs, NewIntersection(t, c))
			}
		}
	}

	xs = c.intersectCaps(localRay, xs)
	return NewIntersections(xs...)
}

func (c *Cone) withinRange(y float64) bool {
	return c.Minimum < y && y < c.Maximum
}

// intersectCaps adds intersections with the end caps, whose radius equals
// the |y| of the truncation plane.
func (c *Cone) intersectCaps(localRay core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(localRay.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, y := range []float64{c.Minimum, c.Maximum} {
		t := (y - localRay.Origin.Y) / localRay.Direction.Y
		if checkCap(localRay, t, math.Abs(y)) {
			xs = append(xs, NewIntersection(t, c))
		}
	}
	return xs
}

// LocalNormalAt returns the cone surface normal, or a cap normal when the
// point lies on an end cap.
func (c *Cone) LocalNormalAt(localPoint core.Tuple) core.Tuple {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z

	if dist < localPoint.Y*localPoint.Y && localPoint.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < localPoint.Y*localPoint.Y && localPoint.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if localPoint.Y > 0 {
		y = -y
	}
	return core.NewVector(localPoint.X, y, localPoint.Z)
}
