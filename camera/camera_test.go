package camera

import (
	"math"
	"testing"

	"github.com/oliverbestmann/glm4/glm"
	"github.com/stretchr/testify/require"
)

func requireVecNear(t *testing.T, want, got glm.Vec3f) {
	t.Helper()

	for idx := range want {
		delta := 1e-3 * max(1, math.Abs(float64(want[idx])))
		require.InDeltaf(t, want[idx], got[idx], delta, "component %d\nwant %v\ngot  %v", idx, want, got)
	}
}

func newCamera(t *testing.T, lens Lens) *Camera {
	t.Helper()

	cache, err := NewProjectionCache(8)
	require.NoError(t, err)

	return New(cache, lens).LookAt(glm.Vec3f{0, 0, 5}, glm.Vec3f{})
}

func TestCameraMatrices(t *testing.T) {
	for _, leftHanded := range []bool{false, true} {
		lens := Lens{FovY: glm.DegToRad[float32](90), Aspect: 1, Near: 1, Far: 50, LeftHanded: leftHanded}
		c := newCamera(t, lens)

		view := c.View()
		require.Equal(t, glm.KindOrthonormal, view.Kind())

		projection := c.Projection()
		require.Equal(t, glm.KindPerspective, projection.Kind())

		vp := c.ViewProjection()
		require.Equal(t, glm.KindGeneral, vp.Kind())

		requireVecNear(t, c.Eye, c.Position())
		requireVecNear(t, glm.Vec3f{0, 0, 4}, c.Unproject(glm.Vec3f{0, 0, -1}))
		requireVecNear(t, glm.Vec3f{0, 0, -45}, c.Unproject(glm.Vec3f{0, 0, 1}))

		// a point in front of the camera survives the round trip
		point := glm.Vec3f{0.5, -0.25, 1}
		requireVecNear(t, point, c.Unproject(vp.TransformProject(point)))
	}
}

func TestCameraVisibility(t *testing.T) {
	c := newCamera(t, Lens{FovY: glm.DegToRad[float32](90), Aspect: 1, Near: 1, Far: 50})

	require.True(t, c.Visible(glm.Vec3f{}, 0))
	require.False(t, c.Visible(glm.Vec3f{0, 0, 10}, 1), "behind the camera")
	require.True(t, c.Visible(glm.Vec3f{0, 0, 5}, 2), "intersects the near plane")
	require.False(t, c.Visible(glm.Vec3f{20, 0, 0}, 1))
	require.True(t, c.Visible(glm.Vec3f{20, 0, 0}, 15))
}

func TestOrthographicCamera(t *testing.T) {
	c := newCamera(t, Lens{Height: 2, Aspect: 2, Near: 1, Far: 10})

	projection := c.Projection()
	require.Equal(t, glm.KindAffine, projection.Kind())

	// the product of two affine matrices stays affine
	vp := c.ViewProjection()
	require.Equal(t, glm.KindAffine, vp.Kind())

	corners := c.Corners()
	requireVecNear(t, glm.Vec3f{-2, -1, 4}, corners[glm.FrustumCornerNXNYNZ])
	requireVecNear(t, glm.Vec3f{2, 1, -5}, corners[glm.FrustumCornerPXPYPZ])
}

func TestCameraWithoutCache(t *testing.T) {
	lens := lensFixture()
	c := New(nil, lens)

	want := lens.Build()
	require.Equal(t, want, c.Projection())
}
