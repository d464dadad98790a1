// Package renderer maps a camera and world to a finished canvas: it derives
// per-pixel rays, traces them in parallel, and accumulates the colors.
package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera projects world space onto a pixel grid. The virtual canvas sits
// one unit in front of the camera at z=-1; half the canvas width and height
// are derived from the field of view and aspect ratio.
type Camera struct {
	hsize      int
	vsize      int
	fov        float64
	transform  core.Matrix4
	inverse    core.Matrix4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity transform, looking down -z
// from the origin. It rejects non-positive image dimensions and a field of
// view outside (0, pi).
func NewCamera(hsize, vsize int, fov float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera dimensions must be positive, got %dx%d", hsize, vsize)
	}
	if fov <= 0 || fov >= math.Pi {
		return nil, fmt.Errorf("field of view must be in (0, pi), got %f", fov)
	}

	c := &Camera{
		hsize:     hsize,
		vsize:     vsize,
		fov:       fov,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c, nil
}

// HSize returns the image width in pixels.
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the image height in pixels.
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians.
func (c *Camera) FieldOfView() float64 { return c.fov }

// Transform returns the camera's world transform.
func (c *Camera) Transform() core.Matrix4 { return c.transform }

// PixelSize returns the world-space size of one pixel on the virtual
// canvas.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// SetTransform assigns the camera transform, caching its inverse so no
// matrix is inverted while rendering.
func (c *Camera) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel returns the world-space ray through the center of the given
// pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).MustNormalize()

	return core.NewRay(origin, direction)
}
