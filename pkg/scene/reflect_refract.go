package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewReflectRefractScene creates a scene that exercises both reflection and
// refraction: a mirror sphere, a hollow glass sphere with a red core, and a
// matte magenta sphere over a checkered floor with a back wall.
func NewReflectRefractScene(width, height int) (*Scene, error) {
	olive := core.NewColor(0.502, 0.502, 0)
	eggshell := core.NewColor(0.941, 0.918, 0.839)

	floor := geometry.NewPlane()
	floorMaterial := material.DefaultMaterial()
	floorMaterial.Pattern = material.NewCheckersPattern(olive, eggshell)
	floor.SetMaterial(floorMaterial)

	backWall := geometry.NewPlane()
	mustTransform(backWall, transform.NewChain().
		RotateX(math.Pi/2).
		Translate(0, 0, 2.5).
		Matrix())

	mirror := geometry.NewSphere()
	mustTransform(mirror, transform.Translation(-2, 1, -1.8))
	mirrorMaterial := material.DefaultMaterial()
	mirrorMaterial.Color = core.NewColor(0.063, 0.063, 0.063)
	mirrorMaterial.Ambient = 0.1
	mirrorMaterial.Diffuse = 0.01
	mirrorMaterial.Specular = 0.8
	mirrorMaterial.Reflective = 1.0
	mirrorMaterial.RefractiveIndex = 1.9
	mirror.SetMaterial(mirrorMaterial)

	glassOuter := geometry.NewSphere()
	mustTransform(glassOuter, transform.Translation(0, 1, 1))
	glassMaterial := material.DefaultMaterial()
	glassMaterial.Ambient = 0.1
	glassMaterial.Diffuse = 0.1
	glassMaterial.Specular = 0.3
	glassMaterial.Reflective = 0.5
	glassMaterial.Transparency = 1.0
	glassMaterial.RefractiveIndex = 1.5
	glassOuter.SetMaterial(glassMaterial)

	glassCore := geometry.NewSphere()
	mustTransform(glassCore, transform.NewChain().
		Scale(0.33, 0.33, 0.33).
		Translate(0, 1, 1).
		Matrix())
	coreMaterial := material.DefaultMaterial()
	coreMaterial.Color = core.NewColor(1, 0, 0)
	coreMaterial.Ambient = 0.3
	coreMaterial.Diffuse = 0.7
	coreMaterial.Specular = 0.3
	coreMaterial.Reflective = 0.1
	glassCore.SetMaterial(coreMaterial)

	magenta := geometry.NewSphere()
	mustTransform(magenta, transform.Translation(1.5, 1, -2.5))
	magentaMaterial := material.DefaultMaterial()
	magentaMaterial.Color = core.NewColor(1, 0, 1)
	magentaMaterial.Ambient = 0.3
	magentaMaterial.Diffuse = 0.7
	magentaMaterial.Specular = 0.8
	magentaMaterial.Reflective = 0.1
	magenta.SetMaterial(magentaMaterial)

	w := world.New()
	w.AddShape(floor, backWall, mirror, glassOuter, glassCore, magenta)
	w.AddLight(material.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	camera, err := newCamera(CameraConfig{
		Width:       width,
		Height:      height,
		FieldOfView: math.Pi / 2 * 1.2,
		From:        core.NewPoint(0, 3, -5),
		To:          core.NewPoint(0, 0, -1),
		Up:          core.NewVector(0, 1, 0),
	})
	if err != nil {
		return nil, err
	}

	return &Scene{Name: "reflect-refract", World: w, Camera: camera}, nil
}
