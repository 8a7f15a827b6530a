package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// applyCase checks an apply form against the absolute form multiplied from the right.
type applyCase struct {
	name     string
	apply    func(m, src *Mat4) *Mat4
	absolute func(m *Mat4) *Mat4
	local    bool
}

var testAxis = Vec3f{1, 2, -2}.MulScalar(1.0 / 3)

var applyCases = []applyCase{
	{
		name:     "Translate",
		apply:    func(m, src *Mat4) *Mat4 { return m.Translate(src, 1, -2, 3) },
		absolute: func(m *Mat4) *Mat4 { return m.SetTranslation(1, -2, 3) },
	},
	{
		name:     "TranslateLocal",
		apply:    func(m, src *Mat4) *Mat4 { return m.TranslateLocal(src, 1, -2, 3) },
		absolute: func(m *Mat4) *Mat4 { return m.SetTranslation(1, -2, 3) },
		local:    true,
	},
	{
		name:     "Scale",
		apply:    func(m, src *Mat4) *Mat4 { return m.Scale(src, 2, 0.5, -1) },
		absolute: func(m *Mat4) *Mat4 { return m.SetScaling(2, 0.5, -1) },
	},
	{
		name:     "ScaleLocal",
		apply:    func(m, src *Mat4) *Mat4 { return m.ScaleLocal(src, 2, 0.5, -1) },
		absolute: func(m *Mat4) *Mat4 { return m.SetScaling(2, 0.5, -1) },
		local:    true,
	},
	{
		name:     "RotateX",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateX(src, 0.7) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationX(0.7) },
	},
	{
		name:     "RotateY",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateY(src, -1.2) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationY(-1.2) },
	},
	{
		name:     "RotateZ",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateZ(src, 2.5) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationZ(2.5) },
	},
	{
		name:     "RotateLocalX",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateLocalX(src, 0.7) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationX(0.7) },
		local:    true,
	},
	{
		name:     "RotateLocalY",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateLocalY(src, -1.2) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationY(-1.2) },
		local:    true,
	},
	{
		name:     "RotateLocalZ",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateLocalZ(src, 2.5) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationZ(2.5) },
		local:    true,
	},
	{
		name:     "Rotate",
		apply:    func(m, src *Mat4) *Mat4 { return m.Rotate(src, 1.1, testAxis) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotation(1.1, testAxis) },
	},
	{
		name:     "RotateQuat",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateQuat(src, QuaternionAxisAngle(1.1, testAxis)) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationQuat(QuaternionAxisAngle(1.1, testAxis)) },
	},
	{
		name:     "RotateXYZ",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateXYZ(src, 0.3, -0.4, 1.5) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationXYZ(0.3, -0.4, 1.5) },
	},
	{
		name:     "RotateZYX",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateZYX(src, 0.3, -0.4, 1.5) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationZYX(0.3, -0.4, 1.5) },
	},
	{
		name:     "RotateYXZ",
		apply:    func(m, src *Mat4) *Mat4 { return m.RotateYXZ(src, 0.3, -0.4, 1.5) },
		absolute: func(m *Mat4) *Mat4 { return m.SetRotationYXZ(0.3, -0.4, 1.5) },
	},
	{
		name:     "Reflect",
		apply:    func(m, src *Mat4) *Mat4 { return m.Reflect(src, testAxis[0], testAxis[1], testAxis[2], 1.5) },
		absolute: func(m *Mat4) *Mat4 { return m.SetReflection(testAxis[0], testAxis[1], testAxis[2], 1.5) },
	},
	{
		name:     "Shadow",
		apply:    func(m, src *Mat4) *Mat4 { return m.Shadow(src, Vec4f{1, 5, 2, 1}, Vec4f{0, 2, 0, 1}) },
		absolute: func(m *Mat4) *Mat4 { return m.SetShadow(Vec4f{1, 5, 2, 1}, Vec4f{0, 2, 0, 1}) },
	},
	{
		name: "Perspective",
		apply: func(m, src *Mat4) *Mat4 {
			return m.Perspective(src, 1, 1.5, 0.5, 50, false)
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetPerspective(1, 1.5, 0.5, 50, false)
		},
	},
	{
		name: "PerspectiveLH",
		apply: func(m, src *Mat4) *Mat4 {
			return m.PerspectiveLH(src, 1, 1.5, 0.5, 50, true)
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetPerspectiveLH(1, 1.5, 0.5, 50, true)
		},
	},
	{
		name: "Frustum",
		apply: func(m, src *Mat4) *Mat4 {
			return m.Frustum(src, -1, 2, -0.5, 1, 1, 30, false)
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetFrustum(-1, 2, -0.5, 1, 1, 30, false)
		},
	},
	{
		name: "FrustumLH",
		apply: func(m, src *Mat4) *Mat4 {
			return m.FrustumLH(src, -1, 2, -0.5, 1, 1, 30, false)
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetFrustumLH(-1, 2, -0.5, 1, 1, 30, false)
		},
	},
	{
		name: "Ortho",
		apply: func(m, src *Mat4) *Mat4 {
			return m.Ortho(src, -4, 2, -3, 1, 0.5, 20, false)
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetOrtho(-4, 2, -3, 1, 0.5, 20, false)
		},
	},
	{
		name: "OrthoLH",
		apply: func(m, src *Mat4) *Mat4 {
			return m.OrthoLH(src, -4, 2, -3, 1, 0.5, 20, true)
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetOrthoLH(-4, 2, -3, 1, 0.5, 20, true)
		},
	},
	{
		name: "LookAt",
		apply: func(m, src *Mat4) *Mat4 {
			return m.LookAt(src, Vec3f{1, 2, 3}, Vec3f{0, 0.5, -1}, Vec3f{0, 1, 0})
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetLookAt(Vec3f{1, 2, 3}, Vec3f{0, 0.5, -1}, Vec3f{0, 1, 0})
		},
	},
	{
		name: "LookAtLH",
		apply: func(m, src *Mat4) *Mat4 {
			return m.LookAtLH(src, Vec3f{1, 2, 3}, Vec3f{0, 0.5, -1}, Vec3f{0, 1, 0})
		},
		absolute: func(m *Mat4) *Mat4 {
			return m.SetLookAtLH(Vec3f{1, 2, 3}, Vec3f{0, 0.5, -1}, Vec3f{0, 1, 0})
		},
	},
}

func TestApplyMatchesProduct(t *testing.T) {
	matrices := fixtures(newRand())

	for _, tc := range applyCases {
		for _, kind := range kinds {
			t.Run(tc.name+"/"+kind.String(), func(t *testing.T) {
				src := matrices[kind]

				var e, want, got Mat4
				tc.absolute(&e)

				if tc.local {
					want = referenceMul(&e, &src)
				} else {
					want = referenceMul(&src, &e)
				}

				tc.apply(&got, &src)
				requireNear(t, &want, &got)

				// the flags assigned by the apply form must never claim more
				// structure than the coefficients have
				requireFlagsHold(t, &got)

				// aliasing the destination gives the same result
				aliased := src
				tc.apply(&aliased, &aliased)
				require.Equal(t, got, aliased)
			})
		}
	}
}

// requireFlagsHold checks that every set flag is backed by the coefficients.
func requireFlagsHold(t testing.TB, m *Mat4) {
	t.Helper()

	values := m.Array()
	classified := Classify(&values)
	p := m.Properties()

	if p.Has(PropertyAffine) {
		require.True(t, classified.Has(PropertyAffine), "flagged affine: %v", values)
	}

	if p.Has(PropertyTranslation) {
		require.True(t, classified.Has(PropertyTranslation), "flagged translation: %v", values)
	}

	if p.Has(PropertyIdentity) {
		require.True(t, classified.Has(PropertyIdentity), "flagged identity: %v", values)
	}

	if p.Has(PropertyPerspective) {
		require.True(t, classified.Has(PropertyPerspective), "flagged perspective: %v", values)
	}

	if p.Has(PropertyOrthonormal) {
		r := m.Mat3()
		product := r.Transpose().Mul(r)
		identity := IdentityMat3()

		for idx := range product {
			require.InDelta(t, identity[idx], product[idx], tolerance, "flagged orthonormal: %v", values)
		}
	}
}

func TestAbsoluteFlagsHold(t *testing.T) {
	for _, tc := range applyCases {
		t.Run(tc.name, func(t *testing.T) {
			var m Mat4
			tc.absolute(&m)
			requireFlagsHold(t, &m)

			// applied to the identity, every form equals its absolute form
			identity := IdentityMat4()

			var applied Mat4
			tc.apply(&applied, &identity)
			require.Equal(t, m, applied)
		})
	}
}

func TestRotationDirections(t *testing.T) {
	quarter := Rad(math.Pi / 2)

	rx := RotationXMat4(quarter)
	requireVecNear(t, Vec3f{0, 0, 1}, rx.TransformDirection(Vec3f{0, 1, 0}))

	ry := RotationYMat4(quarter)
	requireVecNear(t, Vec3f{1, 0, 0}, ry.TransformDirection(Vec3f{0, 0, 1}))

	rz := RotationZMat4(quarter)
	requireVecNear(t, Vec3f{0, 1, 0}, rz.TransformDirection(Vec3f{1, 0, 0}))

	require.Equal(t, PropertyAffine|PropertyOrthonormal, rz.Properties())
}

func TestRotationAxisShortcuts(t *testing.T) {
	var general, shortcut Mat4

	shortcut.SetRotation(0.8, Vec3f{0, 0, -1})
	general.SetRotationZ(-0.8)
	require.Equal(t, general, shortcut)

	// Rodrigues' formula and the quaternion agree
	general.SetRotation(0.8, testAxis)
	shortcut.SetRotationQuat(QuaternionAxisAngle(0.8, testAxis))
	requireNear(t, &general, &shortcut)

	// and match the testAxis aligned rotation for a tilted testAxis that is almost X
	near := Vec3f{1, 1e-7, 0}
	general.SetRotation(0.8, near)
	shortcut.SetRotationX(0.8)
	requireNear(t, &shortcut, &general)
}

func TestEulerAngles(t *testing.T) {
	x, y, z := Rad(0.3), Rad(-0.4), Rad(1.5)

	rx, ry, rz := RotationXMat4(x), RotationYMat4(y), RotationZMat4(z)

	var m, want Mat4

	want.Mul(&rx, &ry)
	want.Mul(&want, &rz)
	m.SetRotationXYZ(x, y, z)
	requireNear(t, &want, &m)

	ex, ey, ez := m.EulerAnglesXYZ()
	requireAngles(t, [3]Rad{x, y, z}, [3]Rad{ex, ey, ez})

	want.Mul(&rz, &ry)
	want.Mul(&want, &rx)
	m.SetRotationZYX(z, y, x)
	requireNear(t, &want, &m)

	ez, ey, ex = m.EulerAnglesZYX()
	requireAngles(t, [3]Rad{x, y, z}, [3]Rad{ex, ey, ez})

	want.Mul(&ry, &rx)
	want.Mul(&want, &rz)
	m.SetRotationYXZ(y, x, z)
	requireNear(t, &want, &m)

	ey, ex, ez = m.EulerAnglesYXZ()
	requireAngles(t, [3]Rad{x, y, z}, [3]Rad{ex, ey, ez})
}

func requireAngles(t testing.TB, want, got [3]Rad) {
	t.Helper()

	for idx := range want {
		require.InDeltaf(t, float64(want[idx]), float64(got[idx]), tolerance, "angle %d of %v", idx, got)
	}
}

func TestTranslationRotateScale(t *testing.T) {
	q := QuaternionAxisAngle(0.6, testAxis)

	var m, want Mat4
	m.SetTranslationRotateScale(Vec3f{1, 2, 3}, q, Vec3f{2, 2, 0.5})

	want.SetTranslation(1, 2, 3)
	want.RotateQuat(&want, q)
	want.Scale(&want, 2, 2, 0.5)

	requireNear(t, &want, &m)
	require.Equal(t, PropertyAffine, m.Properties())
	requireVecNear(t, Vec3f{2, 2, 0.5}, m.ScaleFactors())

	m.SetTranslationRotateScale(Vec3f{1, 2, 3}, q, Vec3f{1, 1, 1})
	require.Equal(t, KindOrthonormal, m.Kind())
	require.Equal(t, Vec3f{1, 1, 1}, m.ScaleFactors())
}

func TestTranslationPart(t *testing.T) {
	m := RotationYMat4(0.3)
	m.SetTranslationPart(4, 5, 6)

	require.Equal(t, Vec3f{4, 5, 6}, m.Translation())
	require.Equal(t, KindOrthonormal, m.Kind())

	identity := IdentityMat4()
	identity.SetTranslationPart(1, 0, 0)
	require.False(t, identity.IsIdentity())
	require.Equal(t, KindTranslation, identity.Kind())
}

func TestReflection(t *testing.T) {
	var m Mat4
	m.SetReflectionAt(Vec3f{0, 2, 0}, Vec3f{0, 1, 0})

	requireVecNear(t, Vec3f{3, -1, 2}, m.TransformPosition(Vec3f{3, 3, 2}))
	require.Equal(t, KindOrthonormal, m.Kind())

	// reflecting twice is the identity
	var twice Mat4
	twice.Mul(&m, &m)

	identity := IdentityMat4()
	requireNear(t, &identity, &twice)
	require.InDelta(t, -1, m.Determinant(), tolerance)
}

func TestShadow(t *testing.T) {
	var m Mat4
	m.SetShadow(Vec4f{0, 10, 0, 1}, Vec4f{0, 1, 0, 0})

	// the ray from the light through (1, 1, 0) hits y=0 at x=10/9
	requireVecNear(t, Vec3f{10.0 / 9, 0, 0}, m.TransformProject(Vec3f{1, 1, 0}))

	// a directional light projects along its direction
	m.SetShadow(Vec4f{1, 1, 0, 0}, Vec4f{0, 2, 0, 0})
	requireVecNear(t, Vec3f{1, 0, 3}, m.TransformProject(Vec3f{2, 1, 3}))
}

func TestBillboard(t *testing.T) {
	var m Mat4

	m.SetBillboardSpherical(Vec3f{1, 0, 0}, Vec3f{1, 3, 4}, Vec3f{0, 1, 0})
	require.Equal(t, KindOrthonormal, m.Kind())
	requireVecNear(t, Vec3f{0, 0.6, 0.8}, m.TransformDirection(Vec3f{0, 0, 1}))
	requireVecNear(t, Vec3f{1, 0, 0}, m.TransformPosition(Vec3f{}))

	m.SetBillboardCylindrical(Vec3f{1, 0, 0}, Vec3f{1, 3, 4}, Vec3f{0, 1, 0})
	requireVecNear(t, Vec3f{0, 0, 1}, m.TransformDirection(Vec3f{0, 0, 1}))
	requireVecNear(t, Vec3f{0, 1, 0}, m.TransformDirection(Vec3f{0, 1, 0}))
	requireFlagsHold(t, &m)
}

func BenchmarkRotate(b *testing.B) {
	src := randomAffine(newRand())

	b.Run("RotateX", func(b *testing.B) {
		var m Mat4
		for b.Loop() {
			m.RotateX(&src, 0.5)
		}
	})

	b.Run("Rotate", func(b *testing.B) {
		var m Mat4
		for b.Loop() {
			m.Rotate(&src, 0.5, testAxis)
		}
	})

	b.Run("Mul", func(b *testing.B) {
		rotation := RotationXMat4(0.5)

		var m Mat4
		for b.Loop() {
			m.Mul(&src, &rotation)
		}
	})
}
