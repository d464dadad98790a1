// Package scene provides ready-made worlds with matching cameras.
package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *world.World
	Camera *renderer.Camera
}

// CameraConfig describes the viewpoint of a scene
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Horizontal or vertical angle, whichever is smaller
	From        core.Tuple // Eye position
	To          core.Tuple // Point the eye looks at
	Up          core.Tuple // Approximate up direction
}

// newCamera builds a camera from a config, wiring in the view transform.
func newCamera(cfg CameraConfig) (*renderer.Camera, error) {
	camera, err := renderer.NewCamera(cfg.Width, cfg.Height, cfg.FieldOfView)
	if err != nil {
		return nil, err
	}
	view, err := transform.ViewTransform(cfg.From, cfg.To, cfg.Up)
	if err != nil {
		return nil, err
	}
	if err := camera.SetTransform(view); err != nil {
		return nil, err
	}
	return camera, nil
}

// mustTransform applies a transform known to be invertible.
func mustTransform(s geometry.Shape, m core.Matrix4) {
	if err := s.SetTransform(m); err != nil {
		panic(err)
	}
}

// mustPatternTransform applies a pattern transform known to be invertible.
func mustPatternTransform(p material.Pattern, m core.Matrix4) {
	if err := p.SetTransform(m); err != nil {
		panic(err)
	}
}

// builders maps scene names to their constructors. Each constructor takes
// the output dimensions in pixels.
var builders = map[string]func(width, height int) (*Scene, error){
	"default":         NewDefaultScene,
	"reflect-refract": NewReflectRefractScene,
	"showcase":        NewShowcaseScene,
}

// ListScenes returns the available scene names in sorted order.
func ListScenes() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSceneByName builds the named scene at the given dimensions.
func NewSceneByName(name string, width, height int) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, ListScenes())
	}
	return builder(width, height)
}
