package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene creates the default scene: three matte spheres resting on
// a checkered floor, lit by a single point light.
func NewDefaultScene(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floorMaterial := material.DefaultMaterial()
	floorMaterial.Specular = 0
	floorPattern := material.NewCheckersPattern(
		core.NewColor(1, 0.9, 0.9),
		core.NewColor(0.4, 0.4, 0.45),
	)
	floorMaterial.Pattern = floorPattern
	floor.SetMaterial(floorMaterial)

	middle := geometry.NewSphere()
	mustTransform(middle, transform.Translation(-0.5, 1, 0.5))
	middleMaterial := material.DefaultMaterial()
	middleMaterial.Color = core.NewColor(0.1, 1, 0.5)
	middleMaterial.Diffuse = 0.7
	middleMaterial.Specular = 0.3
	middle.SetMaterial(middleMaterial)

	right := geometry.NewSphere()
	mustTransform(right, transform.NewChain().
		Scale(0.5, 0.5, 0.5).
		Translate(1.5, 0.5, -0.5).
		Matrix())
	rightMaterial := material.DefaultMaterial()
	rightMaterial.Color = core.NewColor(0.5, 1, 0.1)
	rightMaterial.Diffuse = 0.7
	rightMaterial.Specular = 0.3
	rightMaterial.Reflective = 0.2
	right.SetMaterial(rightMaterial)

	left := geometry.NewSphere()
	mustTransform(left, transform.NewChain().
		Scale(0.33, 0.33, 0.33).
		Translate(-1.5, 0.33, -0.75).
		Matrix())
	leftMaterial := material.DefaultMaterial()
	leftMaterial.Color = core.NewColor(1, 0.8, 0.1)
	leftMaterial.Diffuse = 0.7
	leftMaterial.Specular = 0.3
	left.SetMaterial(leftMaterial)

	w := world.New()
	w.AddShape(floor, middle, right, left)
	w.AddLight(material.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	camera, err := newCamera(CameraConfig{
		Width:       width,
		Height:      height,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	})
	if err != nil {
		return nil, err
	}

	return &Scene{Name: "default", World: w, Camera: camera}, nil
}
