package renderer

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a width x height grid of colors stored row-major. The render
// loop writes it; export adapters read it and clamp components to [0,1]
// when converting to bytes.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a black canvas. It rejects non-positive dimensions.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas dimensions must be positive, got %dx%d", width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// WritePixel sets the color at (x, y). Writes outside the canvas are
// ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// byteTriple clamps a color to [0,1] and scales to 0..255 bytes.
func byteTriple(col core.Color) (uint8, uint8, uint8) {
	clamped := col.Clamp(0, 1)
	return uint8(clamped.R*255 + 0.5), uint8(clamped.G*255 + 0.5), uint8(clamped.B*255 + 0.5)
}

// ToImage converts the canvas to an image suitable for PNG encoding.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := byteTriple(c.PixelAt(x, y))
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// ppmMaxLineLength keeps PPM lines within the common 70-character limit.
const ppmMaxLineLength = 70

// ToPPM encodes the canvas as a plain-text (P3) PPM image.
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			r, g, b := byteTriple(c.PixelAt(x, y))
			for _, v := range []uint8{r, g, b} {
				sample := fmt.Sprintf("%d", v)
				if lineLen == 0 {
					sb.WriteString(sample)
					lineLen = len(sample)
				} else if lineLen+1+len(sample) > ppmMaxLineLength {
					sb.WriteString("\n")
					sb.WriteString(sample)
					lineLen = len(sample)
				} else {
					sb.WriteString(" ")
					sb.WriteString(sample)
					lineLen += 1 + len(sample)
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToBinaryPPM encodes the canvas as a binary (P6) PPM image.
func (c *Canvas) ToBinaryPPM() []byte {
	header := fmt.Sprintf("P6\n%d %d\n255\n", c.width, c.height)
	out := make([]byte, 0, len(header)+c.width*c.height*3)
	out = append(out, header...)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := byteTriple(c.PixelAt(x, y))
			out = append(out, r, g, b)
		}
	}
	return out
}
