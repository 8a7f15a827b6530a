package glm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementSetters(t *testing.T) {
	translation := TranslationMat4(1, 2, 3)
	rotation := RotationZMat4(0.3)
	rotation.Assume(PropertyAffine | PropertyOrthonormal)
	perspective := perspectiveFixture()

	tests := []struct {
		name string
		src  Mat4
		set  func(m *Mat4)
		want Properties
	}{
		{"translation x on identity", IdentityMat4(), func(m *Mat4) { m.SetM30(5) }, PropertyAffine | PropertyTranslation | PropertyOrthonormal},
		{"translation z on identity", IdentityMat4(), func(m *Mat4) { m.SetM32(5) }, PropertyAffine | PropertyTranslation | PropertyOrthonormal},
		{"zero translation keeps identity", IdentityMat4(), func(m *Mat4) { m.SetM31(0) }, propertiesAll},
		{"diagonal on translation", translation, func(m *Mat4) { m.SetM00(2) }, PropertyAffine},
		{"unit diagonal on translation", translation, func(m *Mat4) { m.SetM11(1) }, PropertyAffine | PropertyTranslation | PropertyOrthonormal},
		{"off diagonal on translation", translation, func(m *Mat4) { m.SetM01(0.5) }, PropertyAffine},
		{"zero off diagonal on rotation", rotation, func(m *Mat4) { m.SetM01(0) }, PropertyAffine},
		{"perspective term on identity", IdentityMat4(), func(m *Mat4) { m.SetM23(-1) }, 0},
		{"last row", translation, func(m *Mat4) { m.SetM03(1) }, 0},
		{"projection depth", perspective, func(m *Mat4) { m.SetM32(-3) }, PropertyPerspective},
		{"projection scale", perspective, func(m *Mat4) { m.SetM11(2) }, PropertyPerspective},
		{"skewed projection", perspective, func(m *Mat4) { m.SetM21(0.5) }, 0},
		{"w of projection", perspective, func(m *Mat4) { m.SetM33(1) }, 0},
		{"zero w of projection", perspective, func(m *Mat4) { m.SetM33(0) }, PropertyPerspective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.src
			tt.set(&m)
			require.Equal(t, tt.want, m.Properties())

			// the flags never claim more than the values show
			classified := m
			classified.DetermineProperties()
			require.Equal(t, m.Properties(), m.Properties()&(classified.Properties()|PropertyOrthonormal))
		})
	}
}

func TestGetAndSetElement(t *testing.T) {
	m := Mat4FromArray([16]float32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	for col := range 4 {
		for row := range 4 {
			v, err := m.Get(col, row)
			require.NoError(t, err)
			require.Equal(t, float32(col*4+row), v)
		}
	}

	_, err := m.Get(4, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.ErrorContains(t, err, "column 4")

	_, err = m.Get(0, -1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.ErrorContains(t, err, "row -1")

	identity := IdentityMat4()
	require.NoError(t, identity.SetElement(3, 0, 5))
	require.Equal(t, float32(5), identity.M30())
	require.Equal(t, PropertyAffine|PropertyTranslation|PropertyOrthonormal, identity.Properties())

	err = identity.SetElement(0, 4, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.ErrorContains(t, err, "row 4")
}

func TestRowsAndColumns(t *testing.T) {
	m := Mat4FromArray([16]float32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, Vec4f{1, 5, 9, 13}, row)

	column, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, Vec4f{8, 9, 10, 11}, column)

	_, err = m.Row(4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = m.Column(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	identity := IdentityMat4()
	require.NoError(t, identity.SetRow(3, Vec4f{0, 0, 0, 1}))
	require.Equal(t, Properties(0), identity.Properties())

	identity.SetIdentity()
	require.NoError(t, identity.SetColumn(3, Vec4f{1, 2, 3, 1}))
	require.Equal(t, Vec3f{1, 2, 3}, identity.Translation())
	require.Equal(t, Properties(0), identity.Properties())

	require.ErrorIs(t, identity.SetColumn(7, Vec4f{}), ErrIndexOutOfRange)
	require.ErrorIs(t, identity.SetRow(-2, Vec4f{}), ErrIndexOutOfRange)
}
