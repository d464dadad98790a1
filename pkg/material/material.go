// Package material holds surface properties, patterns, point lights, and
// the Phong local-illumination model.
package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material is a value type describing how a surface responds to light.
// Reflective and Transparency are in [0,1]; RefractiveIndex is > 0.
type Material struct {
	Color           core.Color
	Pattern         Pattern // optional; overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial returns the standard white matte material.
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Lighting computes the Phong illumination at a point. The worldToObject
// matrix converts world points into the shape's object space for pattern
// lookups. When inShadow is set, only the ambient term contributes.
func (m Material) Lighting(worldToObject core.Matrix4, light PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = ColorAtObject(m.Pattern, worldToObject, point)
	}
	effectiveColor := color.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	lightv, err := light.Position.Subtract(point).Normalize()
	if err != nil {
		// Light sits on the surface point; direction is undefined.
		return ambient
	}

	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 || inShadow {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)
	specular := m.specular(lightv, normalv, eyev, light)
	return ambient.Add(diffuse).Add(specular)
}

// specular computes the specular highlight term, black when the reflection
// points away from the eye.
func (m Material) specular(lightv, normalv, eyev core.Tuple, light PointLight) core.Color {
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return core.Black
	}
	factor := math.Pow(reflectDotEye, m.Shininess)
	return light.Intensity.Multiply(m.Specular * factor)
}
