package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the shared tolerance used to detect numerically degenerate vectors and denominators.
const Epsilon float32 = 1e-6

// WorldUp is the world-space up vector used by every look-at transform in the engine.
var WorldUp = mgl32.Vec3{0, 1, 0}

// IsFinite reports whether f is neither NaN nor ±Inf.
//
// Parameters:
//   - f: the value to check
//
// Returns:
//   - bool: true if f is a finite number
func IsFinite(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFiniteVec3 reports whether every component of v is finite.
//
// Parameters:
//   - v: the vector to check
//
// Returns:
//   - bool: true if all components are finite
func IsFiniteVec3(v mgl32.Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// IsFiniteMat4 reports whether every element of m is finite.
//
// Parameters:
//   - m: the matrix to check
//
// Returns:
//   - bool: true if all 16 elements are finite
func IsFiniteMat4(m mgl32.Mat4) bool {
	for _, f := range m {
		if !IsFinite(f) {
			return false
		}
	}
	return true
}

// SafeNormalize returns v scaled to unit length, or fallback when v is too short to normalize.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: the vector returned when |v| < Epsilon
//
// Returns:
//   - mgl32.Vec3: the normalized vector or the fallback
func SafeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon || !IsFinite(l) {
		return fallback
	}
	return v.Mul(1 / l)
}

// Sqrt32 is a float32 square root that treats tiny negative inputs caused by rounding as zero.
func Sqrt32(f float32) float32 {
	if f <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(f)))
}

// Mat4ToArray copies a column-major matrix into a plain array for GPU upload.
//
// Parameters:
//   - m: the source matrix
//
// Returns:
//   - [16]float32: the matrix elements in column-major order
func Mat4ToArray(m mgl32.Mat4) [16]float32 {
	return [16]float32(m)
}
