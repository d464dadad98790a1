package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection records where a ray meets a shape: the distance t along the
// ray and the shape that was hit.
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates an intersection.
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections kept sorted by t ascending.
// Sorting is stable, so ties keep their input order.
type Intersections []Intersection

// NewIntersections builds a sorted intersection list.
func NewIntersections(is ...Intersection) Intersections {
	xs := Intersections(is)
	xs.sort()
	return xs
}

// Merge combines two sorted lists into one sorted list.
func (xs Intersections) Merge(other Intersections) Intersections {
	merged := make(Intersections, 0, len(xs)+len(other))
	merged = append(merged, xs...)
	merged = append(merged, other...)
	merged.sort()
	return merged
}

func (xs Intersections) sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest non-negative t, which is
// the visible surface. Intersections behind the ray origin are ignored.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, i := range xs {
		if i.T >= 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

// Computations holds values derived from a hit that the shading code needs:
// the hit point, eye and normal vectors, the reflection direction, offset
// points for spawning secondary rays, and the refractive indices on either
// side of the surface.
type Computations struct {
	T          float64
	Object     Shape
	Point      core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	N1         float64
	N2         float64
}

// PrepareComputations derives the shading values for a hit. The full
// intersection list is needed to determine the refractive indices n1 and n2
// at the boundary being crossed.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	point := ray.Position(hit.T)
	eyev := ray.Direction.Negate()
	normalv := NormalAt(hit.Object, point)

	inside := normalv.Dot(eyev) < 0
	if inside {
		normalv = normalv.Negate()
	}

	offset := normalv.Multiply(core.ShadowBias)
	n1, n2 := refractiveIndices(hit, xs)

	return Computations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		EyeV:       eyev,
		NormalV:    normalv,
		ReflectV:   ray.Direction.Reflect(normalv),
		Inside:     inside,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices walks the sorted intersection list tracking which
// shapes contain the ray, yielding the refractive index being exited (n1)
// and entered (n2) at the hit.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1, 1
	var containers []Shape

	for _, i := range xs {
		if i == hit {
			if len(containers) == 0 {
				n1 = 1
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, i.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, i.Object)
		}

		if i == hit {
			if len(containers) == 0 {
				n2 = 1
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []Shape, s Shape) int {
	for i, c := range shapes {
		if c == s {
			return i
		}
	}
	return -1
}
