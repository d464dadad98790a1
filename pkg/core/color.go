package core

// Color represents an RGB color with float components. Components are kept
// unclamped during rendering; export adapters clamp to [0,1].
type Color struct {
	R, G, B float64
}

// NewColor creates a new color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors, used to blend
// a surface color with a light's intensity.
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within Epsilon.
func (c Color) Equals(other Color) bool {
	return NearlyEqual(c.R, other.R) &&
		NearlyEqual(c.G, other.G) &&
		NearlyEqual(c.B, other.B)
}

// Clamp returns the color with each component clamped to [min, max].
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}
