package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name     string
		ts       []float64
		expected float64
		found    bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest non-negative wins", []float64{5, 7, -3, 2}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var is []Intersection
			for _, tv := range tt.ts {
				is = append(is, NewIntersection(tv, s))
			}
			hit, ok := NewIntersections(is...).Hit()
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if ok && !core.NearlyEqual(hit.T, tt.expected) {
				t.Errorf("Expected hit t=%f, got %f", tt.expected, hit.T)
			}
		})
	}
}

func TestIntersections_SortStable(t *testing.T) {
	s1 := NewSphere()
	s2 := NewSphere()
	xs := NewIntersections(
		NewIntersection(1, s1),
		NewIntersection(1, s2),
		NewIntersection(0.5, s2),
	)
	if !core.NearlyEqual(xs[0].T, 0.5) {
		t.Fatalf("Expected sorted ascending, got %v", xs)
	}
	// Equal t values keep insertion order.
	if xs[1].Object != Shape(s1) || xs[2].Object != Shape(s2) {
		t.Errorf("Expected stable ordering of tied intersections")
	}
}

func TestPrepareComputations_Basic(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewSphere()
	i := NewIntersection(4, s)

	comps := PrepareComputations(i, ray, NewIntersections(i))

	if !core.NearlyEqual(comps.T, 4) || comps.Object != Shape(s) {
		t.Errorf("Unexpected t or object")
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0,0,-1), got %v", comps.Point)
	}
	if !comps.EyeV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eyev (0,0,-1), got %v", comps.EyeV)
	}
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normalv (0,0,-1), got %v", comps.NormalV)
	}
	if comps.Inside {
		t.Errorf("Expected outside hit")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	s := NewSphere()
	i := NewIntersection(1, s)

	comps := PrepareComputations(i, ray, NewIntersections(i))

	if !comps.Inside {
		t.Fatalf("Expected inside hit")
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("Expected point (0,0,1), got %v", comps.Point)
	}
	// The normal is inverted to face the eye.
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normalv (0,0,-1), got %v", comps.NormalV)
	}
}

func TestPrepareComputations_OffsetPoints(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewGlassSphere()
	if err := s.SetTransform(transform.Translation(0, 0, 1)); err != nil {
		t.Fatal(err)
	}
	i := NewIntersection(5, s)

	comps := PrepareComputations(i, ray, NewIntersections(i))

	if comps.OverPoint.Z >= -core.ShadowBias/2 {
		t.Errorf("Expected over point nudged toward the eye, got z=%g", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Expected point below over point")
	}
	if comps.UnderPoint.Z <= core.ShadowBias/2 {
		t.Errorf("Expected under point nudged past the surface, got z=%g", comps.UnderPoint.Z)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Errorf("Expected point above under point")
	}
}

func TestPrepareComputations_ReflectV(t *testing.T) {
	p := NewPlane()
	ray := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	i := NewIntersection(math.Sqrt2, p)

	comps := PrepareComputations(i, ray, NewIntersections(i))
	if !comps.ReflectV.Equals(core.NewVector(0, math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("Expected reflectv (0,sqrt2/2,sqrt2/2), got %v", comps.ReflectV)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	// Three overlapping glass spheres with distinct refractive indices.
	a := NewGlassSphere()
	if err := a.SetTransform(transform.Scaling(2, 2, 2)); err != nil {
		t.Fatal(err)
	}
	ma := a.Material()
	ma.RefractiveIndex = 1.5
	a.SetMaterial(ma)

	b := NewGlassSphere()
	if err := b.SetTransform(transform.Translation(0, 0, -0.25)); err != nil {
		t.Fatal(err)
	}
	mb := b.Material()
	mb.RefractiveIndex = 2.0
	b.SetMaterial(mb)

	c := NewGlassSphere()
	if err := c.SetTransform(transform.Translation(0, 0, 0.25)); err != nil {
		t.Fatal(err)
	}
	mc := c.Material()
	mc.RefractiveIndex = 2.5
	c.SetMaterial(mc)

	ray := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := NewIntersections(
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	)

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for idx, want := range expected {
		comps := PrepareComputations(xs[idx], ray, xs)
		if !core.NearlyEqual(comps.N1, want.n1) || !core.NearlyEqual(comps.N2, want.n2) {
			t.Errorf("Index %d: expected n1=%f n2=%f, got n1=%f n2=%f",
				idx, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}
