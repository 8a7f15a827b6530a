package glm

// Determinant returns the determinant of m.
func (m *Mat4) Determinant() float32 {
	switch m.Kind() {
	case KindIdentity, KindTranslation:
		return 1

	case KindAffine, KindOrthonormal:
		return m.DeterminantAffine()
	}

	c := m.cofactors()
	return c.determinant()
}

// DeterminantAffine returns the determinant of m, assuming a last row of (0, 0, 0, 1).
func (m *Mat4) DeterminantAffine() float32 {
	return m.Determinant3x3()
}

// Determinant3x3 returns the determinant of the upper left 3x3 part.
func (m *Mat4) Determinant3x3() float32 {
	linear := m.Mat3()
	return linear.Determinant()
}

// Origin returns the point that m maps to (0, 0, 0). For a view transform this
// is the position of the camera.
func (m *Mat4) Origin() Vec3f {
	switch m.Kind() {
	case KindIdentity:
		return Vec3f{}

	case KindTranslation:
		return Vec3f{-m.m30, -m.m31, -m.m32}

	case KindOrthonormal:
		// -Rᵀt
		return Vec3f{
			-(m.m00*m.m30 + m.m01*m.m31 + m.m02*m.m32),
			-(m.m10*m.m30 + m.m11*m.m31 + m.m12*m.m32),
			-(m.m20*m.m30 + m.m21*m.m31 + m.m22*m.m32),
		}

	case KindAffine:
		var inv Mat4
		inv.InvertAffine(m)
		return inv.Translation()
	}

	var inv Mat4
	inv.InvertGeneric(m)

	w := 1 / inv.m33
	return Vec3f{inv.m30 * w, inv.m31 * w, inv.m32 * w}
}

// Transform returns m × v.
func (m *Mat4) Transform(v Vec4f) Vec4f {
	x, y, z, w := v.XYZW()

	if m.properties&PropertyAffine != 0 {
		return Vec4f{
			m.m00*x + m.m10*y + m.m20*z + m.m30*w,
			m.m01*x + m.m11*y + m.m21*z + m.m31*w,
			m.m02*x + m.m12*y + m.m22*z + m.m32*w,
			w,
		}
	}

	return Vec4f{
		m.m00*x + m.m10*y + m.m20*z + m.m30*w,
		m.m01*x + m.m11*y + m.m21*z + m.m31*w,
		m.m02*x + m.m12*y + m.m22*z + m.m32*w,
		m.m03*x + m.m13*y + m.m23*z + m.m33*w,
	}
}

// TransformPosition returns the xyz part of m × (v, 1). The last row is ignored.
func (m *Mat4) TransformPosition(v Vec3f) Vec3f {
	x, y, z := v.XYZ()

	if m.properties&PropertyTranslation != 0 {
		return Vec3f{x + m.m30, y + m.m31, z + m.m32}
	}

	return Vec3f{
		m.m00*x + m.m10*y + m.m20*z + m.m30,
		m.m01*x + m.m11*y + m.m21*z + m.m31,
		m.m02*x + m.m12*y + m.m22*z + m.m32,
	}
}

// TransformDirection returns the xyz part of m × (v, 0).
func (m *Mat4) TransformDirection(v Vec3f) Vec3f {
	if m.properties&PropertyTranslation != 0 {
		return v
	}

	x, y, z := v.XYZ()

	return Vec3f{
		m.m00*x + m.m10*y + m.m20*z,
		m.m01*x + m.m11*y + m.m21*z,
		m.m02*x + m.m12*y + m.m22*z,
	}
}

// TransformProject returns m × (v, 1) after the perspective division.
func (m *Mat4) TransformProject(v Vec3f) Vec3f {
	if m.properties&PropertyAffine != 0 {
		return m.TransformPosition(v)
	}

	return m.Transform(v.Extend(1)).Project()
}

// PerspectiveNear returns the distance of the near plane of a perspective
// projection with depth range [-1, 1].
func (m *Mat4) PerspectiveNear() float32 {
	// handedness is the sign of -m23
	return m.m32 / (-m.m23*m.m22 - 1)
}

// PerspectiveFar returns the distance of the far plane of a perspective
// projection with depth range [-1, 1].
func (m *Mat4) PerspectiveFar() float32 {
	return m.m32 / (-m.m23*m.m22 + 1)
}

// PerspectiveFov returns the vertical field of view of a symmetric perspective projection.
func (m *Mat4) PerspectiveFov() Rad {
	return 2 * atan2(1, m.m11)
}
