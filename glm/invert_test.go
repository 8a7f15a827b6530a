package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvertRoundTrip(t *testing.T) {
	identity := IdentityMat4()

	tests := []struct {
		kind Kind
		want Properties
	}{
		{KindIdentity, propertiesAll},
		{KindTranslation, PropertyAffine | PropertyTranslation | PropertyOrthonormal},
		{KindOrthonormal, PropertyAffine | PropertyOrthonormal},
		{KindAffine, PropertyAffine},
		{KindPerspective, 0},
		{KindGeneral, 0},
	}

	matrices := fixtures(newRand())

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			a := matrices[tt.kind]

			var inv Mat4
			inv.Invert(&a)
			require.Equal(t, tt.want, inv.Properties())

			var product Mat4
			product.MulGeneric(&a, &inv)
			requireNear(t, &identity, &product)

			product.MulGeneric(&inv, &a)
			requireNear(t, &identity, &product)

			var generic Mat4
			generic.InvertGeneric(&a)
			requireNear(t, &generic, &inv)
		})
	}
}

func TestInvertAliasing(t *testing.T) {
	for kind, a := range fixtures(newRand()) {
		t.Run(kind.String(), func(t *testing.T) {
			var fresh Mat4
			fresh.Invert(&a)

			a.Invert(&a)
			require.Equal(t, fresh, a)
		})
	}
}

func TestInvertPerspectiveVariants(t *testing.T) {
	identity := IdentityMat4()

	var perspectives [4]Mat4
	perspectives[0].SetPerspective(DegToRad[float32](75), 16.0/9, 0.1, 100, false)
	perspectives[1].SetPerspective(DegToRad[float32](75), 16.0/9, 0.1, 100, true)
	perspectives[2].SetPerspectiveLH(DegToRad[float32](50), 1, 1, 10, false)
	perspectives[3].SetFrustum(-1, 1, -0.5, 0.5, 1, 20, false)

	for _, p := range perspectives {
		require.Equal(t, KindPerspective, p.Kind())

		var inv, product Mat4
		inv.Invert(&p)
		product.MulGeneric(&p, &inv)
		requireNear(t, &identity, &product)
	}
}

func TestSingularInverseIsNotFinite(t *testing.T) {
	singular := Mat4FromArray([16]float32{
		1, 2, 3, 4,
		2, 4, 6, 8,
		0, 1, 0, 1,
		1, 0, 1, 0,
	})

	var inv Mat4
	inv.Invert(&singular)
	require.False(t, inv.IsFinite())
	require.Zero(t, singular.Determinant())

	identity := IdentityMat4()
	require.False(t, inv.EqualWithin(&identity, 1e6))
}

func TestEqualWithin(t *testing.T) {
	a := IdentityMat4()

	b := IdentityMat4()
	b.SetM00(1.001)
	require.True(t, a.EqualWithin(&b, 0.002))
	require.False(t, a.EqualWithin(&b, 0.0005))

	// the difference is exactly epsilon
	b.SetM00(1.5)
	require.True(t, a.EqualWithin(&b, 0.5))
	require.True(t, b.EqualWithin(&a, 0.5))

	nan := IdentityMat4()
	nan.SetM00(float32(math.NaN()))
	require.False(t, a.EqualWithin(&nan, 1e-3), "NaN differs from any value")
	require.False(t, nan.EqualWithin(&a, float32(math.Inf(1))))
	require.False(t, nan.EqualWithin(&nan, 1e-3))

	inf := IdentityMat4()
	inf.SetM30(float32(math.Inf(1)))
	require.True(t, inf.EqualWithin(&inf, 0))
	require.False(t, a.EqualWithin(&inf, 1e30))

	negInf := IdentityMat4()
	negInf.SetM30(float32(math.Inf(-1)))
	require.False(t, inf.EqualWithin(&negInf, 1e30))
}

func TestDeterminant(t *testing.T) {
	for kind, m := range fixtures(newRand()) {
		t.Run(kind.String(), func(t *testing.T) {
			// the complete expansion ignores the properties
			c := m.cofactors()

			want := c.determinant()
			require.InDelta(t, want, m.Determinant(), tolerance*max(1, float64(abs(want))))
		})
	}

	scaling := ScaleMat4(2, 3, 4)
	require.Equal(t, float32(24), scaling.Determinant())
	require.Equal(t, float32(24), scaling.DeterminantAffine())
	require.Equal(t, float32(24), scaling.Determinant3x3())

	affine := randomAffine(newRand())
	c := affine.cofactors()
	require.InDelta(t, c.determinant(), affine.Determinant3x3(), tolerance*max(1, float64(abs(c.determinant()))))
}

func TestNormal(t *testing.T) {
	rng := newRand()

	affine := randomAffine(rng)

	var normal Mat4
	normal.Normal(&affine)
	require.Equal(t, PropertyAffine, normal.Properties())

	// inverse transpose of the 3x3 part
	var want, inv Mat4
	inv.InvertAffine(&affine)
	want.Transpose3x3(&inv)
	want.SetTranslationPart(0, 0, 0)
	requireNear(t, &want, &normal)

	rotation := randomOrthonormal(rng)
	normal.Normal(&rotation)
	require.Equal(t, rotation.Mat3(), normal.Mat3())
	require.Equal(t, Vec3f{}, normal.Translation())
	require.Equal(t, KindOrthonormal, normal.Kind())

	translation := randomTranslation(rng)
	normal.Normal(&translation)
	require.True(t, normal.IsIdentity())

	n := affine.NormalMat3()
	require.InDelta(t, want.M01(), n[1], tolerance)
	require.InDelta(t, want.M20(), n[6], tolerance)

	direction := Vec3f{0.3, -0.5, 0.8}
	requireVecNear(t, want.TransformDirection(direction), n.Transform(direction))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}

func BenchmarkInvert(b *testing.B) {
	for kind, a := range fixtures(newRand()) {
		b.Run(kind.String(), func(b *testing.B) {
			var m Mat4
			for b.Loop() {
				m.Invert(&a)
			}
		})
	}
}
