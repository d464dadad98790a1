package core

import "math"

// Epsilon is the tolerance used for all floating-point comparisons: tuple and
// matrix equality, intersection root checks, and matrix invertibility.
const Epsilon = 1e-5

// ShadowBias is the offset applied along the surface normal when spawning
// shadow, reflection, and refraction rays, to avoid self-intersection acne.
const ShadowBias = 1e-5

// DefaultMaxBounces bounds the reflection/refraction recursion depth.
const DefaultMaxBounces = 5

// NearlyEqual reports whether two floats are equal within Epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
