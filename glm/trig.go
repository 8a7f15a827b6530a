package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// sincos evaluates in double precision; the f32 table lookup is too coarse
// for rotations that are flagged orthonormal.
func sincos(r Rad) (float32, float32) {
	s, c := math.Sincos(float64(r))
	return float32(s), float32(c)
}

func tan(r Rad) float32 {
	return f32.Tan(float32(r))
}

func sqrt(v float32) float32 {
	return f32.Sqrt(v)
}

// sqrtOf is sqrt for the generic vector types. float64 keeps its precision.
func sqrtOf[T float](v T) T {
	if single, ok := any(v).(float32); ok {
		return T(sqrt(single))
	}

	return T(math.Sqrt(float64(v)))
}

func atan2(y, x float32) Rad {
	return Rad(math.Atan2(float64(y), float64(x)))
}

func invLength(x, y, z float32) float32 {
	return 1 / sqrt(x*x+y*y+z*z)
}
