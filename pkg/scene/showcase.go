package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// hexagonSide builds one sixth of the hexagon: a corner sphere and the edge
// cylinder leading to the next corner, grouped and rotated into place.
func hexagonSide(rotation float64) *geometry.Group {
	corner := geometry.NewSphere()
	mustTransform(corner, transform.NewChain().
		Scale(0.25, 0.25, 0.25).
		Translate(0, 0, -1).
		Matrix())

	edge := geometry.NewClosedCylinder(0, 1)
	mustTransform(edge, transform.NewChain().
		Scale(0.25, 1, 0.25).
		RotateZ(-math.Pi/2).
		RotateY(-math.Pi/6).
		Translate(0, 0, -1).
		Matrix())

	side := geometry.NewGroup()
	side.AddChild(corner, edge)
	mustTransform(side, transform.RotationY(rotation))
	return side
}

// newHexagon assembles six sides into a ring of spheres joined by cylinders.
func newHexagon() *geometry.Group {
	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		hex.AddChild(hexagonSide(float64(n) * math.Pi / 3))
	}
	return hex
}

// NewShowcaseScene creates a scene with one of every shape: a striped cube
// pedestal carrying a hexagon group, a capped cylinder, a cone, and a
// reflective sphere, all on a ring-patterned floor.
func NewShowcaseScene(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floorMaterial := material.DefaultMaterial()
	floorMaterial.Specular = 0.1
	floorPattern := material.NewRingPattern(
		core.NewColor(0.8, 0.75, 0.6),
		core.NewColor(0.35, 0.3, 0.25),
	)
	mustPatternTransform(floorPattern, transform.Scaling(0.5, 0.5, 0.5))
	floorMaterial.Pattern = floorPattern
	floor.SetMaterial(floorMaterial)

	pedestal := geometry.NewCube()
	mustTransform(pedestal, transform.NewChain().
		Scale(1, 0.25, 1).
		Translate(0, 0.25, 0).
		Matrix())
	pedestalMaterial := material.DefaultMaterial()
	pedestalPattern := material.NewStripePattern(
		core.NewColor(0.9, 0.9, 0.95),
		core.NewColor(0.3, 0.3, 0.5),
	)
	mustPatternTransform(pedestalPattern, transform.Scaling(0.25, 0.25, 0.25))
	pedestalMaterial.Pattern = pedestalPattern
	pedestal.SetMaterial(pedestalMaterial)

	hexagon := newHexagon()
	mustTransform(hexagon, transform.NewChain().
		Scale(0.6, 0.6, 0.6).
		Translate(0, 0.75, 0).
		Matrix())
	hexagonMaterial := material.DefaultMaterial()
	hexagonMaterial.Color = core.NewColor(0.2, 0.6, 0.9)
	hexagonMaterial.Diffuse = 0.8
	for _, side := range hexagon.Children() {
		group, ok := side.(*geometry.Group)
		if !ok {
			continue
		}
		for _, child := range group.Children() {
			child.SetMaterial(hexagonMaterial)
		}
	}

	pillar := geometry.NewClosedCylinder(0, 1.5)
	mustTransform(pillar, transform.NewChain().
		Scale(0.4, 1, 0.4).
		Translate(-2.2, 0, -0.5).
		Matrix())
	pillarMaterial := material.DefaultMaterial()
	pillarMaterial.Color = core.NewColor(0.9, 0.5, 0.2)
	pillarMaterial.Reflective = 0.1
	pillar.SetMaterial(pillarMaterial)

	spike := geometry.NewClosedCone(-1, 0)
	mustTransform(spike, transform.NewChain().
		Scale(0.5, 1.2, 0.5).
		Translate(2.2, 1.2, -0.5).
		Matrix())
	spikeMaterial := material.DefaultMaterial()
	spikePattern := material.NewGradientPattern(
		core.NewColor(0.9, 0.2, 0.2),
		core.NewColor(0.95, 0.85, 0.2),
	)
	spikeMaterial.Pattern = spikePattern
	spike.SetMaterial(spikeMaterial)

	drop := geometry.NewSphere()
	mustTransform(drop, transform.NewChain().
		Scale(0.5, 0.5, 0.5).
		Translate(1, 0.5, -2).
		Matrix())
	dropMaterial := material.DefaultMaterial()
	dropMaterial.Color = core.NewColor(0.1, 0.1, 0.15)
	dropMaterial.Diffuse = 0.2
	dropMaterial.Specular = 0.9
	dropMaterial.Reflective = 0.8
	drop.SetMaterial(dropMaterial)

	w := world.New()
	w.AddShape(floor, pedestal, hexagon, pillar, spike, drop)
	w.AddLight(material.NewPointLight(core.NewPoint(-8, 8, -6), core.White))
	w.AddLight(material.NewPointLight(core.NewPoint(6, 4, -8), core.NewColor(0.3, 0.3, 0.35)))

	camera, err := newCamera(CameraConfig{
		Width:       width,
		Height:      height,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2.5, -6),
		To:          core.NewPoint(0, 0.75, 0),
		Up:          core.NewVector(0, 1, 0),
	})
	if err != nil {
		return nil, err
	}

	return &Scene{Name: "showcase", World: w, Camera: camera}, nil
}
