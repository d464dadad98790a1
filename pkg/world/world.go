// Package world holds the scene graph and the recursive Whitted tracing
// algorithm: local Phong shading plus single reflected and refracted rays
// per bounce, bounded by a fixed depth.
package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World owns the set of shapes and light sources being rendered. It is
// read-only during rendering, which keeps the per-pixel loop safe to run in
// parallel.
type World struct {
	shapes []geometry.Shape
	lights []material.PointLight
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// AddShape adds shapes to the world.
func (w *World) AddShape(shapes ...geometry.Shape) {
	w.shapes = append(w.shapes, shapes...)
}

// AddLight adds point lights to the world.
func (w *World) AddLight(lights ...material.PointLight) {
	w.lights = append(w.lights, lights...)
}

// Shapes returns the world's shapes.
func (w *World) Shapes() []geometry.Shape {
	return w.shapes
}

// Lights returns the world's lights.
func (w *World) Lights() []material.PointLight {
	return w.lights
}

// Intersect collects the intersections of a ray with every shape, sorted by
// t ascending.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.shapes {
		xs = xs.Merge(geometry.Intersect(shape, ray))
	}
	return xs
}

// ColorAt traces a ray into the world and returns its color. Rays that hit
// nothing yield black. The remaining count bounds reflection and refraction
// recursion; it is the only termination mechanism and guarantees the trace
// finishes.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared hit: the Phong term summed over
// every light, plus reflected and refracted contributions weighted by the
// material's coefficients. The sum is a linear approximation, not
// energy-conserving.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	mat := comps.Object.Material()
	worldToObject := geometry.WorldToObjectMatrix(comps.Object)

	surface := core.Black
	if len(w.lights) == 0 {
		// With no lights only the ambient term remains.
		color := mat.Color
		if mat.Pattern != nil {
			color = material.ColorAtObject(mat.Pattern, worldToObject, comps.OverPoint)
		}
		surface = color.Multiply(mat.Ambient)
	}
	for _, light := range w.lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(mat.Lighting(
			worldToObject, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the reflection ray for a hit, scaled by the
// material's reflectivity. It returns black for matte surfaces or when no
// bounces remain.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || core.NearlyEqual(reflective, 0) {
		return core.Black
	}
	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the refraction ray for a hit using Snell's law,
// scaled by the material's transparency. Total internal reflection
// contributes no refracted color.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || core.NearlyEqual(transparency, 0) {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// Total internal reflection.
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// IsShadowed reports whether a point is occluded from a light by casting a
// ray toward the light and checking for a hit closer than the light.
func (w *World) IsShadowed(point core.Tuple, light material.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()
	direction, err := toLight.Normalize()
	if err != nil {
		return false
	}

	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T < distance
}
