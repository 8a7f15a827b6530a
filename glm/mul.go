package glm

// Mul stores a × b in m. The formula is chosen from the kinds of both operands,
// m may alias a or b.
func (m *Mat4) Mul(a, b *Mat4) *Mat4 {
	ka, kb := a.Kind(), b.Kind()

	switch {
	case ka == KindIdentity:
		return m.Set(b)

	case kb == KindIdentity:
		return m.Set(a)

	case ka == KindTranslation && kb.IsAffine():
		return m.MulTranslationAffine(a, b)

	case ka.IsAffine() && kb.IsAffine():
		return m.MulAffine(a, b)

	case ka == KindPerspective && kb.IsAffine():
		return m.MulPerspectiveAffine(a, b)

	case kb.IsAffine():
		return m.MulAffineR(a, b)

	default:
		return m.MulGeneric(a, b)
	}
}

// MulLocal stores b × a in m, i.e. applies b after a.
func (m *Mat4) MulLocal(a, b *Mat4) *Mat4 {
	return m.Mul(b, a)
}

// MulGeneric stores the full 4x4 product a × b in m, ignoring all properties.
func (m *Mat4) MulGeneric(a, b *Mat4) *Mat4 {
	// Store the result in local variables, in case m == a || m == b.
	nm00 := a.m00*b.m00 + a.m10*b.m01 + a.m20*b.m02 + a.m30*b.m03
	nm01 := a.m01*b.m00 + a.m11*b.m01 + a.m21*b.m02 + a.m31*b.m03
	nm02 := a.m02*b.m00 + a.m12*b.m01 + a.m22*b.m02 + a.m32*b.m03
	nm03 := a.m03*b.m00 + a.m13*b.m01 + a.m23*b.m02 + a.m33*b.m03
	nm10 := a.m00*b.m10 + a.m10*b.m11 + a.m20*b.m12 + a.m30*b.m13
	nm11 := a.m01*b.m10 + a.m11*b.m11 + a.m21*b.m12 + a.m31*b.m13
	nm12 := a.m02*b.m10 + a.m12*b.m11 + a.m22*b.m12 + a.m32*b.m13
	nm13 := a.m03*b.m10 + a.m13*b.m11 + a.m23*b.m12 + a.m33*b.m13
	nm20 := a.m00*b.m20 + a.m10*b.m21 + a.m20*b.m22 + a.m30*b.m23
	nm21 := a.m01*b.m20 + a.m11*b.m21 + a.m21*b.m22 + a.m31*b.m23
	nm22 := a.m02*b.m20 + a.m12*b.m21 + a.m22*b.m22 + a.m32*b.m23
	nm23 := a.m03*b.m20 + a.m13*b.m21 + a.m23*b.m22 + a.m33*b.m23
	nm30 := a.m00*b.m30 + a.m10*b.m31 + a.m20*b.m32 + a.m30*b.m33
	nm31 := a.m01*b.m30 + a.m11*b.m31 + a.m21*b.m32 + a.m31*b.m33
	nm32 := a.m02*b.m30 + a.m12*b.m31 + a.m22*b.m32 + a.m32*b.m33
	nm33 := a.m03*b.m30 + a.m13*b.m31 + a.m23*b.m32 + a.m33*b.m33

	m.setRaw(
		nm00, nm01, nm02, nm03,
		nm10, nm11, nm12, nm13,
		nm20, nm21, nm22, nm23,
		nm30, nm31, nm32, nm33,
	)

	m.properties = 0
	return m
}

// MulTranslationAffine stores a × b in m. The caller guarantees that a is a pure
// translation and b is affine.
func (m *Mat4) MulTranslationAffine(a, b *Mat4) *Mat4 {
	nm30 := b.m30 + a.m30
	nm31 := b.m31 + a.m31
	nm32 := b.m32 + a.m32

	m.setRaw(
		b.m00, b.m01, b.m02, b.m03,
		b.m10, b.m11, b.m12, b.m13,
		b.m20, b.m21, b.m22, b.m23,
		nm30, nm31, nm32, b.m33,
	)

	m.properties = PropertyAffine | b.properties&PropertyOrthonormal
	return m
}

// MulAffine stores a × b in m. The caller guarantees that both are affine, the
// last row of the result is set to (0, 0, 0, 1) without computing it.
func (m *Mat4) MulAffine(a, b *Mat4) *Mat4 {
	nm00 := a.m00*b.m00 + a.m10*b.m01 + a.m20*b.m02
	nm01 := a.m01*b.m00 + a.m11*b.m01 + a.m21*b.m02
	nm02 := a.m02*b.m00 + a.m12*b.m01 + a.m22*b.m02
	nm10 := a.m00*b.m10 + a.m10*b.m11 + a.m20*b.m12
	nm11 := a.m01*b.m10 + a.m11*b.m11 + a.m21*b.m12
	nm12 := a.m02*b.m10 + a.m12*b.m11 + a.m22*b.m12
	nm20 := a.m00*b.m20 + a.m10*b.m21 + a.m20*b.m22
	nm21 := a.m01*b.m20 + a.m11*b.m21 + a.m21*b.m22
	nm22 := a.m02*b.m20 + a.m12*b.m21 + a.m22*b.m22
	nm30 := a.m00*b.m30 + a.m10*b.m31 + a.m20*b.m32 + a.m30
	nm31 := a.m01*b.m30 + a.m11*b.m31 + a.m21*b.m32 + a.m31
	nm32 := a.m02*b.m30 + a.m12*b.m31 + a.m22*b.m32 + a.m32

	m.setRaw(
		nm00, nm01, nm02, 0,
		nm10, nm11, nm12, 0,
		nm20, nm21, nm22, 0,
		nm30, nm31, nm32, 1,
	)

	m.properties = PropertyAffine | a.properties&b.properties&PropertyOrthonormal
	return m
}

// MulPerspectiveAffine stores a × b in m. The caller guarantees that a has the
// zero pattern of a symmetric perspective projection and b is affine.
func (m *Mat4) MulPerspectiveAffine(a, b *Mat4) *Mat4 {
	// only m00, m11, m22, m23 and m32 of a are non-zero
	nm00 := a.m00 * b.m00
	nm01 := a.m11 * b.m01
	nm02 := a.m22 * b.m02
	nm03 := a.m23 * b.m02
	nm10 := a.m00 * b.m10
	nm11 := a.m11 * b.m11
	nm12 := a.m22 * b.m12
	nm13 := a.m23 * b.m12
	nm20 := a.m00 * b.m20
	nm21 := a.m11 * b.m21
	nm22 := a.m22 * b.m22
	nm23 := a.m23 * b.m22
	nm30 := a.m00 * b.m30
	nm31 := a.m11 * b.m31
	nm32 := a.m22*b.m32 + a.m32
	nm33 := a.m23 * b.m32

	m.setRaw(
		nm00, nm01, nm02, nm03,
		nm10, nm11, nm12, nm13,
		nm20, nm21, nm22, nm23,
		nm30, nm31, nm32, nm33,
	)

	m.properties = 0
	return m
}

// MulAffineR stores a × b in m. The caller guarantees that b is affine, a is
// unrestricted.
func (m *Mat4) MulAffineR(a, b *Mat4) *Mat4 {
	nm00 := a.m00*b.m00 + a.m10*b.m01 + a.m20*b.m02
	nm01 := a.m01*b.m00 + a.m11*b.m01 + a.m21*b.m02
	nm02 := a.m02*b.m00 + a.m12*b.m01 + a.m22*b.m02
	nm03 := a.m03*b.m00 + a.m13*b.m01 + a.m23*b.m02
	nm10 := a.m00*b.m10 + a.m10*b.m11 + a.m20*b.m12
	nm11 := a.m01*b.m10 + a.m11*b.m11 + a.m21*b.m12
	nm12 := a.m02*b.m10 + a.m12*b.m11 + a.m22*b.m12
	nm13 := a.m03*b.m10 + a.m13*b.m11 + a.m23*b.m12
	nm20 := a.m00*b.m20 + a.m10*b.m21 + a.m20*b.m22
	nm21 := a.m01*b.m20 + a.m11*b.m21 + a.m21*b.m22
	nm22 := a.m02*b.m20 + a.m12*b.m21 + a.m22*b.m22
	nm23 := a.m03*b.m20 + a.m13*b.m21 + a.m23*b.m22
	nm30 := a.m00*b.m30 + a.m10*b.m31 + a.m20*b.m32 + a.m30
	nm31 := a.m01*b.m30 + a.m11*b.m31 + a.m21*b.m32 + a.m31
	nm32 := a.m02*b.m30 + a.m12*b.m31 + a.m22*b.m32 + a.m32
	nm33 := a.m03*b.m30 + a.m13*b.m31 + a.m23*b.m32 + a.m33

	properties := a.properties &^ (PropertyIdentity | PropertyPerspective | PropertyTranslation | PropertyOrthonormal)

	m.setRaw(
		nm00, nm01, nm02, nm03,
		nm10, nm11, nm12, nm13,
		nm20, nm21, nm22, nm23,
		nm30, nm31, nm32, nm33,
	)

	m.properties = properties
	return m
}

// Mul4x3 stores a × b in m, treating the last row of both as (0, 0, 0, 1).
func (m *Mat4) Mul4x3(a, b *Mat4) *Mat4 {
	switch {
	case a.Kind() == KindIdentity:
		m.Set(b)

	case b.Kind() == KindIdentity:
		m.Set(a)

	default:
		return m.MulAffine(a, b)
	}

	m.m03, m.m13, m.m23, m.m33 = 0, 0, 0, 1
	m.properties = (m.properties | PropertyAffine) &^ PropertyPerspective
	return m
}

// Add stores the element-wise sum a + b in m.
func (m *Mat4) Add(a, b *Mat4) *Mat4 {
	return m.elementWise(a, b, func(x, y float32) float32 { return x + y }, 0)
}

// Sub stores the element-wise difference a - b in m.
func (m *Mat4) Sub(a, b *Mat4) *Mat4 {
	return m.elementWise(a, b, func(x, y float32) float32 { return x - y }, 0)
}

// MulComponentWise stores the element-wise product of a and b in m.
func (m *Mat4) MulComponentWise(a, b *Mat4) *Mat4 {
	return m.elementWise(a, b, func(x, y float32) float32 { return x * y }, 0)
}

// Add4x3 adds the upper 4x3 parts of a and b and keeps the last row of a.
// The result is affine if both operands are.
func (m *Mat4) Add4x3(a, b *Mat4) *Mat4 {
	m03, m13, m23, m33 := a.m03, a.m13, a.m23, a.m33
	properties := a.properties & b.properties & PropertyAffine

	m.Add(a, b)
	m.m03, m.m13, m.m23, m.m33 = m03, m13, m23, m33
	m.properties = properties
	return m
}

// Sub4x3 subtracts the upper 4x3 part of b from a and keeps the last row of a.
func (m *Mat4) Sub4x3(a, b *Mat4) *Mat4 {
	m03, m13, m23, m33 := a.m03, a.m13, a.m23, a.m33
	properties := a.properties & b.properties & PropertyAffine

	m.Sub(a, b)
	m.m03, m.m13, m.m23, m.m33 = m03, m13, m23, m33
	m.properties = properties
	return m
}

// Lerp linearly interpolates element-wise between a and b.
func (m *Mat4) Lerp(a, b *Mat4, t float32) *Mat4 {
	properties := a.properties & b.properties & PropertyAffine
	m.elementWise(a, b, func(x, y float32) float32 { return x + (y-x)*t }, 0)
	m.properties = properties
	return m
}

func (m *Mat4) elementWise(a, b *Mat4, op func(x, y float32) float32, properties Properties) *Mat4 {
	lhs, rhs := a.Array(), b.Array()

	var result [16]float32
	for idx := range result {
		result[idx] = op(lhs[idx], rhs[idx])
	}

	m.setRaw(
		result[0], result[1], result[2], result[3],
		result[4], result[5], result[6], result[7],
		result[8], result[9], result[10], result[11],
		result[12], result[13], result[14], result[15],
	)

	m.properties = properties
	return m
}

// Transpose stores the transpose of a in m.
func (m *Mat4) Transpose(a *Mat4) *Mat4 {
	if a.Kind() == KindIdentity {
		return m.SetIdentity()
	}

	m.setRaw(
		a.m00, a.m10, a.m20, a.m30,
		a.m01, a.m11, a.m21, a.m31,
		a.m02, a.m12, a.m22, a.m32,
		a.m03, a.m13, a.m23, a.m33,
	)

	m.properties = 0
	return m
}

// Transpose3x3 stores a in m with its upper left 3x3 part transposed.
func (m *Mat4) Transpose3x3(a *Mat4) *Mat4 {
	properties := a.properties & (PropertyAffine | PropertyOrthonormal | PropertyPerspective)
	if a.properties&PropertyTranslation != 0 {
		// an identity 3x3 is its own transpose
		properties = a.properties
	}

	m.setRaw(
		a.m00, a.m10, a.m20, a.m03,
		a.m01, a.m11, a.m21, a.m13,
		a.m02, a.m12, a.m22, a.m23,
		a.m30, a.m31, a.m32, a.m33,
	)

	m.properties = properties
	return m
}
