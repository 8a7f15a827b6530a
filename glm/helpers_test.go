package glm

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

// requireNear compares the coefficients with a tolerance relative to the
// magnitude of the expected value.
func requireNear(t testing.TB, want, got *Mat4) {
	t.Helper()

	w, g := want.Array(), got.Array()
	for idx := range w {
		delta := tolerance * max(1, math.Abs(float64(w[idx])))
		require.InDeltaf(t, w[idx], g[idx], delta, "element %d\nwant %v\ngot  %v", idx, w, g)
	}
}

func requireVecNear(t testing.TB, want, got Vec3f) {
	t.Helper()

	for idx := range want {
		delta := tolerance * max(1, math.Abs(float64(want[idx])))
		require.InDeltaf(t, want[idx], got[idx], delta, "component %d\nwant %v\ngot  %v", idx, want, got)
	}
}

// referenceMul is the textbook product on column-major arrays.
func referenceMul(a, b *Mat4) Mat4 {
	lhs, rhs := a.Array(), b.Array()

	var result [16]float32
	for col := range 4 {
		for row := range 4 {
			var sum float32
			for k := range 4 {
				sum += lhs[k*4+row] * rhs[col*4+k]
			}

			result[col*4+row] = sum
		}
	}

	var m Mat4
	m.SetFloats(result[:])
	return m
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x676c6d, 4))
}

func randomFloat(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}

// randomGeneral returns a well conditioned matrix without any structure.
func randomGeneral(rng *rand.Rand) Mat4 {
	var values [16]float32
	for idx := range values {
		values[idx] = randomFloat(rng)
	}

	values[0] += 4
	values[5] += 4
	values[10] += 4
	values[15] += 4

	return Mat4FromArray(values)
}

func randomTranslation(rng *rand.Rand) Mat4 {
	return TranslationMat4(randomFloat(rng)*5, randomFloat(rng)*5, randomFloat(rng)*5)
}

func randomOrthonormal(rng *rand.Rand) Mat4 {
	var m Mat4
	m.SetRotationXYZ(Rad(randomFloat(rng)*3), Rad(randomFloat(rng)*1.5), Rad(randomFloat(rng)*3))
	return *m.Translate(&m, randomFloat(rng)*5, randomFloat(rng)*5, randomFloat(rng)*5)
}

func randomAffine(rng *rand.Rand) Mat4 {
	m := randomOrthonormal(rng)
	return *m.Scale(&m, 1+rng.Float32(), 0.5+rng.Float32(), 2+rng.Float32())
}

func perspectiveFixture() Mat4 {
	var m Mat4
	m.SetPerspective(DegToRad[float32](60), 1.5, 0.5, 50, false)
	return m
}

// fixtures returns one matrix of every kind.
func fixtures(rng *rand.Rand) map[Kind]Mat4 {
	return map[Kind]Mat4{
		KindIdentity:    IdentityMat4(),
		KindTranslation: randomTranslation(rng),
		KindOrthonormal: randomOrthonormal(rng),
		KindAffine:      randomAffine(rng),
		KindPerspective: perspectiveFixture(),
		KindGeneral:     randomGeneral(rng),
	}
}

func TestFixtureKinds(t *testing.T) {
	for kind, m := range fixtures(newRand()) {
		require.Equal(t, kind, m.Kind(), "fixture of kind %s", kind)
	}
}
