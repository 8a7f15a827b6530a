package glm

// SetTranslation sets m to a translation by (x, y, z).
func (m *Mat4) SetTranslation(x, y, z float32) *Mat4 {
	if m.properties&PropertyIdentity == 0 {
		*m = IdentityMat4()
	}

	m.m30 = x
	m.m31 = y
	m.m32 = z

	m.properties = PropertyAffine | PropertyTranslation | PropertyOrthonormal
	return m
}

// SetTranslationPart overwrites the translation column, keeping everything else.
func (m *Mat4) SetTranslationPart(x, y, z float32) *Mat4 {
	m.m30 = x
	m.m31 = y
	m.m32 = z

	m.properties &^= PropertyPerspective | PropertyIdentity
	return m
}

// Translation returns the translation column.
func (m *Mat4) Translation() Vec3f {
	return Vec3f{m.m30, m.m31, m.m32}
}

// Translate stores src × T(x, y, z) in m.
func (m *Mat4) Translate(src *Mat4, x, y, z float32) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetTranslation(x, y, z)
	}

	if m != src {
		m.Set(src)
	}

	// only the translation column changes, it depends on the untouched columns
	m.m30 = src.m00*x + src.m10*y + src.m20*z + src.m30
	m.m31 = src.m01*x + src.m11*y + src.m21*z + src.m31
	m.m32 = src.m02*x + src.m12*y + src.m22*z + src.m32
	m.m33 = src.m03*x + src.m13*y + src.m23*z + src.m33

	m.properties &^= PropertyPerspective | PropertyIdentity
	return m
}

// TranslateLocal stores T(x, y, z) × src in m.
func (m *Mat4) TranslateLocal(src *Mat4, x, y, z float32) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetTranslation(x, y, z)
	}

	nm00 := src.m00 + x*src.m03
	nm01 := src.m01 + y*src.m03
	nm02 := src.m02 + z*src.m03
	nm10 := src.m10 + x*src.m13
	nm11 := src.m11 + y*src.m13
	nm12 := src.m12 + z*src.m13
	nm20 := src.m20 + x*src.m23
	nm21 := src.m21 + y*src.m23
	nm22 := src.m22 + z*src.m23
	nm30 := src.m30 + x*src.m33
	nm31 := src.m31 + y*src.m33
	nm32 := src.m32 + z*src.m33

	m.setRaw(
		nm00, nm01, nm02, src.m03,
		nm10, nm11, nm12, src.m13,
		nm20, nm21, nm22, src.m23,
		nm30, nm31, nm32, src.m33,
	)

	m.properties = src.properties &^ (PropertyPerspective | PropertyIdentity)
	return m
}

// SetScaling sets m to a scaling by (x, y, z). The result is only flagged
// orthonormal if every factor is +1 or -1.
func (m *Mat4) SetScaling(x, y, z float32) *Mat4 {
	if x == 1 && y == 1 && z == 1 {
		return m.SetIdentity()
	}

	*m = Mat4{m00: x, m11: y, m22: z, m33: 1}

	m.properties = PropertyAffine
	if absEqualsOne(x) && absEqualsOne(y) && absEqualsOne(z) {
		m.properties |= PropertyOrthonormal
	}

	return m
}

// Scale stores src × S(x, y, z) in m.
func (m *Mat4) Scale(src *Mat4, x, y, z float32) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetScaling(x, y, z)
	}

	properties := src.properties &^ scalingClears(x, y, z)

	m.setRaw(
		src.m00*x, src.m01*x, src.m02*x, src.m03*x,
		src.m10*y, src.m11*y, src.m12*y, src.m13*y,
		src.m20*z, src.m21*z, src.m22*z, src.m23*z,
		src.m30, src.m31, src.m32, src.m33,
	)

	m.properties = properties
	return m
}

// ScaleUniform stores src × S(s, s, s) in m.
func (m *Mat4) ScaleUniform(src *Mat4, s float32) *Mat4 {
	return m.Scale(src, s, s, s)
}

// ScaleLocal stores S(x, y, z) × src in m.
func (m *Mat4) ScaleLocal(src *Mat4, x, y, z float32) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetScaling(x, y, z)
	}

	properties := src.properties &^ scalingClears(x, y, z)

	m.setRaw(
		src.m00*x, src.m01*y, src.m02*z, src.m03,
		src.m10*x, src.m11*y, src.m12*z, src.m13,
		src.m20*x, src.m21*y, src.m22*z, src.m23,
		src.m30*x, src.m31*y, src.m32*z, src.m33,
	)

	m.properties = properties
	return m
}

func scalingClears(x, y, z float32) Properties {
	clears := PropertyPerspective | PropertyIdentity | PropertyTranslation
	if !absEqualsOne(x) || !absEqualsOne(y) || !absEqualsOne(z) {
		clears |= PropertyOrthonormal
	}

	return clears
}

// ScaleFactors returns the lengths of the first three columns.
func (m *Mat4) ScaleFactors() Vec3f {
	if m.properties&PropertyOrthonormal != 0 {
		return Vec3f{1, 1, 1}
	}

	return Vec3f{
		sqrt(m.m00*m.m00 + m.m01*m.m01 + m.m02*m.m02),
		sqrt(m.m10*m.m10 + m.m11*m.m11 + m.m12*m.m12),
		sqrt(m.m20*m.m20 + m.m21*m.m21 + m.m22*m.m22),
	}
}

// SetTranslationRotateScale sets m to T(t) × R(q) × S(s). The quaternion must
// be of unit length.
func (m *Mat4) SetTranslationRotateScale(t Vec3f, q Quaternionf, s Vec3f) *Mat4 {
	r := quaternionMat3(q)

	m.setRaw(
		r[0]*s[0], r[1]*s[0], r[2]*s[0], 0,
		r[3]*s[1], r[4]*s[1], r[5]*s[1], 0,
		r[6]*s[2], r[7]*s[2], r[8]*s[2], 0,
		t[0], t[1], t[2], 1,
	)

	m.properties = PropertyAffine
	if absEqualsOne(s[0]) && absEqualsOne(s[1]) && absEqualsOne(s[2]) {
		m.properties |= PropertyOrthonormal
	}

	return m
}
