package glm

// Invert stores the inverse of a in m, using the cheapest formula the kind of a
// allows. A singular matrix is not reported, the result then holds Inf or NaN.
func (m *Mat4) Invert(a *Mat4) *Mat4 {
	switch a.Kind() {
	case KindIdentity:
		return m.SetIdentity()

	case KindTranslation:
		return m.invertTranslation(a)

	case KindOrthonormal:
		return m.invertOrthonormal(a)

	case KindAffine:
		return m.InvertAffine(a)

	case KindPerspective:
		return m.InvertPerspective(a)

	default:
		return m.InvertGeneric(a)
	}
}

func (m *Mat4) invertTranslation(a *Mat4) *Mat4 {
	if m != a {
		m.Set(a)
	}

	m.m30 = -a.m30
	m.m31 = -a.m31
	m.m32 = -a.m32

	m.properties = PropertyAffine | PropertyTranslation | PropertyOrthonormal
	return m
}

// invertOrthonormal uses R⁻¹ = Rᵀ, the translation becomes -Rᵀt.
func (m *Mat4) invertOrthonormal(a *Mat4) *Mat4 {
	nm30 := -(a.m00*a.m30 + a.m01*a.m31 + a.m02*a.m32)
	nm31 := -(a.m10*a.m30 + a.m11*a.m31 + a.m12*a.m32)
	nm32 := -(a.m20*a.m30 + a.m21*a.m31 + a.m22*a.m32)

	m.setRaw(
		a.m00, a.m10, a.m20, 0,
		a.m01, a.m11, a.m21, 0,
		a.m02, a.m12, a.m22, 0,
		nm30, nm31, nm32, 1,
	)

	m.properties = PropertyAffine | PropertyOrthonormal
	return m
}

// InvertAffine stores the inverse of a in m. The caller guarantees that a is
// affine, its last row is not read.
func (m *Mat4) InvertAffine(a *Mat4) *Mat4 {
	m11m00 := a.m00 * a.m11
	m10m01 := a.m01 * a.m10
	m10m02 := a.m02 * a.m10
	m12m00 := a.m00 * a.m12
	m12m01 := a.m01 * a.m12
	m11m02 := a.m02 * a.m11

	det := (m11m00-m10m01)*a.m22 + (m10m02-m12m00)*a.m21 + (m12m01-m11m02)*a.m20
	s := 1 / det

	nm00 := (a.m11*a.m22 - a.m12*a.m21) * s
	nm01 := (a.m21*a.m02 - a.m22*a.m01) * s
	nm02 := (m12m01 - m11m02) * s
	nm10 := (a.m12*a.m20 - a.m10*a.m22) * s
	nm11 := (a.m22*a.m00 - a.m20*a.m02) * s
	nm12 := (m10m02 - m12m00) * s
	nm20 := (a.m10*a.m21 - a.m11*a.m20) * s
	nm21 := (a.m20*a.m01 - a.m21*a.m00) * s
	nm22 := (m11m00 - m10m01) * s

	nm30 := -(nm00*a.m30 + nm10*a.m31 + nm20*a.m32)
	nm31 := -(nm01*a.m30 + nm11*a.m31 + nm21*a.m32)
	nm32 := -(nm02*a.m30 + nm12*a.m31 + nm22*a.m32)

	m.setRaw(
		nm00, nm01, nm02, 0,
		nm10, nm11, nm12, 0,
		nm20, nm21, nm22, 0,
		nm30, nm31, nm32, 1,
	)

	m.properties = PropertyAffine
	return m
}

// InvertPerspective stores the inverse of a in m. The caller guarantees that a
// is a symmetric perspective projection as built by SetPerspective or a
// symmetric SetFrustum; any other input silently gives a wrong result.
func (m *Mat4) InvertPerspective(a *Mat4) *Mat4 {
	s := 1 / (a.m00 * a.m11)
	l := -1 / (a.m23 * a.m32)

	m.setRaw(
		a.m11*s, 0, 0, 0,
		0, a.m00*s, 0, 0,
		0, 0, 0, -a.m23*l,
		0, 0, -a.m32*l, a.m22*l,
	)

	m.properties = 0
	return m
}

// InvertGeneric stores the inverse of a in m using the cofactor expansion with a
// single division by the determinant. Properties of a are ignored.
func (m *Mat4) InvertGeneric(a *Mat4) *Mat4 {
	c := a.cofactors()
	det := 1 / c.determinant()

	nm00 := (a.m11*c.l - a.m12*c.k + a.m13*c.j) * det
	nm01 := (-a.m01*c.l + a.m02*c.k - a.m03*c.j) * det
	nm02 := (a.m31*c.f - a.m32*c.e + a.m33*c.d) * det
	nm03 := (-a.m21*c.f + a.m22*c.e - a.m23*c.d) * det
	nm10 := (-a.m10*c.l + a.m12*c.i - a.m13*c.h) * det
	nm11 := (a.m00*c.l - a.m02*c.i + a.m03*c.h) * det
	nm12 := (-a.m30*c.f + a.m32*c.c - a.m33*c.b) * det
	nm13 := (a.m20*c.f - a.m22*c.c + a.m23*c.b) * det
	nm20 := (a.m10*c.k - a.m11*c.i + a.m13*c.g) * det
	nm21 := (-a.m00*c.k + a.m01*c.i - a.m03*c.g) * det
	nm22 := (a.m30*c.e - a.m31*c.c + a.m33*c.a) * det
	nm23 := (-a.m20*c.e + a.m21*c.c - a.m23*c.a) * det
	nm30 := (-a.m10*c.j + a.m11*c.h - a.m12*c.g) * det
	nm31 := (a.m00*c.j - a.m01*c.h + a.m02*c.g) * det
	nm32 := (-a.m30*c.d + a.m31*c.b - a.m32*c.a) * det
	nm33 := (a.m20*c.d - a.m21*c.b + a.m22*c.a) * det

	m.setRaw(
		nm00, nm01, nm02, nm03,
		nm10, nm11, nm12, nm13,
		nm20, nm21, nm22, nm23,
		nm30, nm31, nm32, nm33,
	)

	m.properties = 0
	return m
}

// cofactors2x2 holds the 2x2 minors of the upper (a-f) and lower (g-l) half
// columns shared by the determinant and the general inverse.
type cofactors2x2 struct {
	a, b, c, d, e, f float32
	g, h, i, j, k, l float32
}

func (m *Mat4) cofactors() cofactors2x2 {
	return cofactors2x2{
		a: m.m00*m.m11 - m.m01*m.m10,
		b: m.m00*m.m12 - m.m02*m.m10,
		c: m.m00*m.m13 - m.m03*m.m10,
		d: m.m01*m.m12 - m.m02*m.m11,
		e: m.m01*m.m13 - m.m03*m.m11,
		f: m.m02*m.m13 - m.m03*m.m12,
		g: m.m20*m.m31 - m.m21*m.m30,
		h: m.m20*m.m32 - m.m22*m.m30,
		i: m.m20*m.m33 - m.m23*m.m30,
		j: m.m21*m.m32 - m.m22*m.m31,
		k: m.m21*m.m33 - m.m23*m.m31,
		l: m.m22*m.m33 - m.m23*m.m32,
	}
}

func (c cofactors2x2) determinant() float32 {
	return c.a*c.l - c.b*c.k + c.c*c.j + c.d*c.i - c.e*c.h + c.f*c.g
}

// Normal stores the normal matrix of a in m: the inverse transpose of its upper
// left 3x3 part, with zero translation and last row (0, 0, 0, 1).
func (m *Mat4) Normal(a *Mat4) *Mat4 {
	switch a.Kind() {
	case KindIdentity, KindTranslation:
		return m.SetIdentity()

	case KindOrthonormal:
		// the inverse transpose of a rotation is the rotation itself
		m.setRaw(
			a.m00, a.m01, a.m02, 0,
			a.m10, a.m11, a.m12, 0,
			a.m20, a.m21, a.m22, 0,
			0, 0, 0, 1,
		)

		m.properties = PropertyAffine | PropertyOrthonormal
		return m
	}

	n := a.NormalMat3()

	m.setRaw(
		n[0], n[1], n[2], 0,
		n[3], n[4], n[5], 0,
		n[6], n[7], n[8], 0,
		0, 0, 0, 1,
	)

	m.properties = PropertyAffine
	return m
}

// NormalMat3 returns the inverse transpose of the upper left 3x3 part.
func (m *Mat4) NormalMat3() Mat3 {
	if m.properties&PropertyOrthonormal != 0 {
		return m.Mat3()
	}

	m11m00 := m.m00 * m.m11
	m10m01 := m.m01 * m.m10
	m10m02 := m.m02 * m.m10
	m12m00 := m.m00 * m.m12
	m12m01 := m.m01 * m.m12
	m11m02 := m.m02 * m.m11

	det := (m11m00-m10m01)*m.m22 + (m10m02-m12m00)*m.m21 + (m12m01-m11m02)*m.m20
	s := 1 / det

	// transpose of the inverse computed in InvertAffine
	return Mat3{
		(m.m11*m.m22 - m.m21*m.m12) * s,
		(m.m20*m.m12 - m.m10*m.m22) * s,
		(m.m10*m.m21 - m.m20*m.m11) * s,
		(m.m21*m.m02 - m.m01*m.m22) * s,
		(m.m00*m.m22 - m.m20*m.m02) * s,
		(m.m20*m.m01 - m.m00*m.m21) * s,
		(m12m01 - m11m02) * s,
		(m10m02 - m12m00) * s,
		(m11m00 - m10m01) * s,
	}
}
