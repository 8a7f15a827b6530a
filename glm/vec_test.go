package glm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorLength(t *testing.T) {
	require.Equal(t, float32(5), Vec3f{3, 4, 0}.Length())
	require.Equal(t, float32(13), Vec4f{3, 4, 12, 0}.Length())
	requireVecNear(t, Vec3f{0, 0.6, 0.8}, Vec3f{0, 3, 4}.Normalize())

	// double precision vectors do not round through float32
	require.InDelta(t, 1e-30, Vec3[float64]{1e-30, 0, 0}.Length(), 1e-40)
	require.InDelta(t, 1.4142135623730951, Vec4[float64]{1, 1, 0, 0}.Length(), 1e-15)
}
