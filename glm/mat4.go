package glm

// Mat4 is a 4x4 float32 matrix in column-major order, multiplied with column
// vectors (M * v). Element mXY sits in column X and row Y.
//
// Every Mat4 carries Properties describing its structure. Operations read them to
// pick a cheaper formula and assign the flags of their result directly. All
// operations taking a destination receiver allow it to alias their operands.
//
// The zero value is the zero matrix without any properties.
type Mat4 struct {
	m00, m01, m02, m03 float32
	m10, m11, m12, m13 float32
	m20, m21, m22, m23 float32
	m30, m31, m32, m33 float32

	properties Properties
}

func IdentityMat4() Mat4 {
	return Mat4{
		m00: 1, m11: 1, m22: 1, m33: 1,
		properties: propertiesAll,
	}
}

func TranslationMat4(x, y, z float32) Mat4 {
	var m Mat4
	m.SetTranslation(x, y, z)
	return m
}

func ScaleMat4(x, y, z float32) Mat4 {
	var m Mat4
	m.SetScaling(x, y, z)
	return m
}

func RotationXMat4(angle Rad) Mat4 {
	var m Mat4
	m.SetRotationX(angle)
	return m
}

func RotationYMat4(angle Rad) Mat4 {
	var m Mat4
	m.SetRotationY(angle)
	return m
}

func RotationZMat4(angle Rad) Mat4 {
	var m Mat4
	m.SetRotationZ(angle)
	return m
}

func Mat4FromQuaternion(quat Quaternionf) Mat4 {
	var m Mat4
	m.SetRotationQuat(quat)
	return m
}

// Mat4Of builds a matrix from its four columns and classifies it.
func Mat4Of(cols [4][4]float32) Mat4 {
	var m Mat4
	m.Set16(
		cols[0][0], cols[0][1], cols[0][2], cols[0][3],
		cols[1][0], cols[1][1], cols[1][2], cols[1][3],
		cols[2][0], cols[2][1], cols[2][2], cols[2][3],
		cols[3][0], cols[3][1], cols[3][2], cols[3][3],
	)
	return m
}

// Mat4FromArray builds a matrix from 16 column-major values and classifies it.
func Mat4FromArray(values [16]float32) Mat4 {
	var m Mat4
	m.SetArray(&values)
	return m
}

func (m *Mat4) Properties() Properties {
	return m.properties
}

func (m *Mat4) Kind() Kind {
	return m.properties.Kind()
}

// Assume overrides the properties. The caller guarantees that the coefficients
// have the asserted structure, nothing is verified.
func (m *Mat4) Assume(properties Properties) *Mat4 {
	m.properties = properties
	return m
}

// DetermineProperties replaces the properties with those provable from the
// current coefficients.
func (m *Mat4) DetermineProperties() *Mat4 {
	values := m.Array()
	m.properties = Classify(&values)
	return m
}

func (m *Mat4) IsAffine() bool {
	return m.properties&PropertyAffine != 0
}

// IsIdentity reports whether the matrix is flagged as identity.
func (m *Mat4) IsIdentity() bool {
	return m.properties&PropertyIdentity != 0
}

// TestIdentity compares the coefficients against the identity, ignoring the flags.
func (m *Mat4) TestIdentity() bool {
	return *m == Mat4{m00: 1, m11: 1, m22: 1, m33: 1, properties: m.properties}
}

func (m *Mat4) SetIdentity() *Mat4 {
	if m.properties&PropertyIdentity != 0 {
		return m
	}

	*m = IdentityMat4()
	return m
}

// Zero sets all coefficients to zero and clears the properties.
func (m *Mat4) Zero() *Mat4 {
	*m = Mat4{}
	return m
}

// Set copies coefficients and properties of src.
func (m *Mat4) Set(src *Mat4) *Mat4 {
	*m = *src
	return m
}

// Set16 assigns all coefficients in column-major order and classifies the result.
func (m *Mat4) Set16(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) *Mat4 {
	m.setRaw(
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	)

	return m.DetermineProperties()
}

// SetArray assigns 16 column-major values and classifies the result.
func (m *Mat4) SetArray(values *[16]float32) *Mat4 {
	m.setRaw(
		values[0], values[1], values[2], values[3],
		values[4], values[5], values[6], values[7],
		values[8], values[9], values[10], values[11],
		values[12], values[13], values[14], values[15],
	)

	m.properties = Classify(values)
	return m
}

// Array returns the coefficients in column-major order.
func (m *Mat4) Array() [16]float32 {
	return [16]float32{
		m.m00, m.m01, m.m02, m.m03,
		m.m10, m.m11, m.m12, m.m13,
		m.m20, m.m21, m.m22, m.m23,
		m.m30, m.m31, m.m32, m.m33,
	}
}

// Mat3 returns the upper left 3x3 part.
func (m *Mat4) Mat3() Mat3 {
	return Mat3{
		m.m00, m.m01, m.m02,
		m.m10, m.m11, m.m12,
		m.m20, m.m21, m.m22,
	}
}

// Set3x3 replaces the upper left 3x3 part, keeping the last row and translation.
func (m *Mat4) Set3x3(n *Mat3) *Mat4 {
	m.m00, m.m01, m.m02 = n[0], n[1], n[2]
	m.m10, m.m11, m.m12 = n[3], n[4], n[5]
	m.m20, m.m21, m.m22 = n[6], n[7], n[8]

	m.properties &^= PropertyPerspective | PropertyIdentity | PropertyTranslation | PropertyOrthonormal
	return m
}

// Equal compares the coefficients exactly. Properties are not compared.
func (m *Mat4) Equal(n *Mat4) bool {
	return m.Array() == n.Array()
}

// EqualWithin compares the coefficients with an absolute tolerance. A NaN
// coefficient never compares equal, infinities only to the same infinity.
func (m *Mat4) EqualWithin(n *Mat4, epsilon float32) bool {
	a, b := m.Array(), n.Array()
	for idx := range a {
		if a[idx] == b[idx] {
			continue
		}

		diff := a[idx] - b[idx]
		if !(diff >= -epsilon && diff <= epsilon) {
			return false
		}
	}

	return true
}

// IsFinite reports whether no coefficient is NaN or infinite.
func (m *Mat4) IsFinite() bool {
	for _, value := range m.Array() {
		if value-value != 0 {
			return false
		}
	}

	return true
}

func (m *Mat4) setRaw(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) {
	m.m00, m.m01, m.m02, m.m03 = m00, m01, m02, m03
	m.m10, m.m11, m.m12, m.m13 = m10, m11, m12, m13
	m.m20, m.m21, m.m22, m.m23 = m20, m21, m22, m23
	m.m30, m.m31, m.m32, m.m33 = m30, m31, m32, m33
}
