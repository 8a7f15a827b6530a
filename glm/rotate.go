package glm

const rotationClears = PropertyPerspective | PropertyIdentity | PropertyTranslation

func (m *Mat4) SetRotationX(angle Rad) *Mat4 {
	s, c := sincos(angle)

	*m = Mat4{
		m00: 1,
		m11: c, m12: s,
		m21: -s, m22: c,
		m33:        1,
		properties: PropertyAffine | PropertyOrthonormal,
	}

	return m
}

func (m *Mat4) SetRotationY(angle Rad) *Mat4 {
	s, c := sincos(angle)

	*m = Mat4{
		m00: c, m02: -s,
		m11: 1,
		m20: s, m22: c,
		m33:        1,
		properties: PropertyAffine | PropertyOrthonormal,
	}

	return m
}

func (m *Mat4) SetRotationZ(angle Rad) *Mat4 {
	s, c := sincos(angle)

	*m = Mat4{
		m00: c, m01: s,
		m10: -s, m11: c,
		m22:        1,
		m33:        1,
		properties: PropertyAffine | PropertyOrthonormal,
	}

	return m
}

// SetRotation sets m to a rotation by angle around axis (Rodrigues' formula).
// The axis must be of unit length.
func (m *Mat4) SetRotation(angle Rad, axis Vec3f) *Mat4 {
	x, y, z := axis.XYZ()

	switch {
	case y == 0 && z == 0 && absEqualsOne(x):
		return m.SetRotationX(angle * Rad(x))

	case x == 0 && z == 0 && absEqualsOne(y):
		return m.SetRotationY(angle * Rad(y))

	case x == 0 && y == 0 && absEqualsOne(z):
		return m.SetRotationZ(angle * Rad(z))
	}

	debugCheckUnitAxis(axis)

	r := axisAngleMat3(angle, x, y, z)
	return m.setRotation3(&r)
}

// SetRotationQuat sets m to the rotation described by q. The quaternion must
// be of unit length.
func (m *Mat4) SetRotationQuat(q Quaternionf) *Mat4 {
	debugCheckUnitQuaternion(q)

	r := quaternionMat3(q)
	return m.setRotation3(&r)
}

func (m *Mat4) setRotation3(r *Mat3) *Mat4 {
	m.setRaw(
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	)

	m.properties = PropertyAffine | PropertyOrthonormal
	return m
}

// RotateX stores src × Rx(angle) in m.
func (m *Mat4) RotateX(src *Mat4, angle Rad) *Mat4 {
	switch src.Kind() {
	case KindIdentity:
		return m.SetRotationX(angle)

	case KindTranslation:
		t := src.Translation()
		return m.SetRotationX(angle).SetTranslationPart(t[0], t[1], t[2])
	}

	s, c := sincos(angle)

	// the first and last column are untouched
	nm10 := src.m10*c + src.m20*s
	nm11 := src.m11*c + src.m21*s
	nm12 := src.m12*c + src.m22*s
	nm13 := src.m13*c + src.m23*s
	nm20 := src.m20*c - src.m10*s
	nm21 := src.m21*c - src.m11*s
	nm22 := src.m22*c - src.m12*s
	nm23 := src.m23*c - src.m13*s

	m.setRaw(
		src.m00, src.m01, src.m02, src.m03,
		nm10, nm11, nm12, nm13,
		nm20, nm21, nm22, nm23,
		src.m30, src.m31, src.m32, src.m33,
	)

	m.properties = src.properties &^ rotationClears
	return m
}

// RotateY stores src × Ry(angle) in m.
func (m *Mat4) RotateY(src *Mat4, angle Rad) *Mat4 {
	switch src.Kind() {
	case KindIdentity:
		return m.SetRotationY(angle)

	case KindTranslation:
		t := src.Translation()
		return m.SetRotationY(angle).SetTranslationPart(t[0], t[1], t[2])
	}

	s, c := sincos(angle)

	nm00 := src.m00*c - src.m20*s
	nm01 := src.m01*c - src.m21*s
	nm02 := src.m02*c - src.m22*s
	nm03 := src.m03*c - src.m23*s
	nm20 := src.m00*s + src.m20*c
	nm21 := src.m01*s + src.m21*c
	nm22 := src.m02*s + src.m22*c
	nm23 := src.m03*s + src.m23*c

	m.setRaw(
		nm00, nm01, nm02, nm03,
		src.m10, src.m11, src.m12, src.m13,
		nm20, nm21, nm22, nm23,
		src.m30, src.m31, src.m32, src.m33,
	)

	m.properties = src.properties &^ rotationClears
	return m
}

// RotateZ stores src × Rz(angle) in m.
func (m *Mat4) RotateZ(src *Mat4, angle Rad) *Mat4 {
	switch src.Kind() {
	case KindIdentity:
		return m.SetRotationZ(angle)

	case KindTranslation:
		t := src.Translation()
		return m.SetRotationZ(angle).SetTranslationPart(t[0], t[1], t[2])
	}

	s, c := sincos(angle)

	nm00 := src.m00*c + src.m10*s
	nm01 := src.m01*c + src.m11*s
	nm02 := src.m02*c + src.m12*s
	nm03 := src.m03*c + src.m13*s
	nm10 := src.m10*c - src.m00*s
	nm11 := src.m11*c - src.m01*s
	nm12 := src.m12*c - src.m02*s
	nm13 := src.m13*c - src.m03*s

	m.setRaw(
		nm00, nm01, nm02, nm03,
		nm10, nm11, nm12, nm13,
		src.m20, src.m21, src.m22, src.m23,
		src.m30, src.m31, src.m32, src.m33,
	)

	m.properties = src.properties &^ rotationClears
	return m
}

// Rotate stores src × R(angle, axis) in m. The axis must be of unit length.
func (m *Mat4) Rotate(src *Mat4, angle Rad, axis Vec3f) *Mat4 {
	x, y, z := axis.XYZ()

	switch {
	case y == 0 && z == 0 && absEqualsOne(x):
		return m.RotateX(src, angle*Rad(x))

	case x == 0 && z == 0 && absEqualsOne(y):
		return m.RotateY(src, angle*Rad(y))

	case x == 0 && y == 0 && absEqualsOne(z):
		return m.RotateZ(src, angle*Rad(z))
	}

	debugCheckUnitAxis(axis)

	r := axisAngleMat3(angle, x, y, z)
	return m.rotate3(src, &r)
}

// RotateQuat stores src × R(q) in m. The quaternion must be of unit length.
func (m *Mat4) RotateQuat(src *Mat4, q Quaternionf) *Mat4 {
	debugCheckUnitQuaternion(q)

	r := quaternionMat3(q)
	return m.rotate3(src, &r)
}

// rotate3 stores src × R in m for the orthonormal 3x3 matrix r.
func (m *Mat4) rotate3(src *Mat4, r *Mat3) *Mat4 {
	switch src.Kind() {
	case KindIdentity:
		return m.setRotation3(r)

	case KindTranslation:
		t := src.Translation()
		return m.setRotation3(r).SetTranslationPart(t[0], t[1], t[2])

	case KindAffine, KindOrthonormal:
		nm00 := src.m00*r[0] + src.m10*r[1] + src.m20*r[2]
		nm01 := src.m01*r[0] + src.m11*r[1] + src.m21*r[2]
		nm02 := src.m02*r[0] + src.m12*r[1] + src.m22*r[2]
		nm10 := src.m00*r[3] + src.m10*r[4] + src.m20*r[5]
		nm11 := src.m01*r[3] + src.m11*r[4] + src.m21*r[5]
		nm12 := src.m02*r[3] + src.m12*r[4] + src.m22*r[5]
		nm20 := src.m00*r[6] + src.m10*r[7] + src.m20*r[8]
		nm21 := src.m01*r[6] + src.m11*r[7] + src.m21*r[8]
		nm22 := src.m02*r[6] + src.m12*r[7] + src.m22*r[8]

		m.setRaw(
			nm00, nm01, nm02, 0,
			nm10, nm11, nm12, 0,
			nm20, nm21, nm22, 0,
			src.m30, src.m31, src.m32, 1,
		)

		m.properties = src.properties &^ rotationClears
		return m
	}

	nm00 := src.m00*r[0] + src.m10*r[1] + src.m20*r[2]
	nm01 := src.m01*r[0] + src.m11*r[1] + src.m21*r[2]
	nm02 := src.m02*r[0] + src.m12*r[1] + src.m22*r[2]
	nm03 := src.m03*r[0] + src.m13*r[1] + src.m23*r[2]
	nm10 := src.m00*r[3] + src.m10*r[4] + src.m20*r[5]
	nm11 := src.m01*r[3] + src.m11*r[4] + src.m21*r[5]
	nm12 := src.m02*r[3] + src.m12*r[4] + src.m22*r[5]
	nm13 := src.m03*r[3] + src.m13*r[4] + src.m23*r[5]
	nm20 := src.m00*r[6] + src.m10*r[7] + src.m20*r[8]
	nm21 := src.m01*r[6] + src.m11*r[7] + src.m21*r[8]
	nm22 := src.m02*r[6] + src.m12*r[7] + src.m22*r[8]
	nm23 := src.m03*r[6] + src.m13*r[7] + src.m23*r[8]

	m.setRaw(
		nm00, nm01, nm02, nm03,
		nm10, nm11, nm12, nm13,
		nm20, nm21, nm22, nm23,
		src.m30, src.m31, src.m32, src.m33,
	)

	m.properties = src.properties &^ rotationClears
	return m
}

// RotateLocalX stores Rx(angle) × src in m.
func (m *Mat4) RotateLocalX(src *Mat4, angle Rad) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetRotationX(angle)
	}

	s, c := sincos(angle)

	nm01 := c*src.m01 - s*src.m02
	nm02 := s*src.m01 + c*src.m02
	nm11 := c*src.m11 - s*src.m12
	nm12 := s*src.m11 + c*src.m12
	nm21 := c*src.m21 - s*src.m22
	nm22 := s*src.m21 + c*src.m22
	nm31 := c*src.m31 - s*src.m32
	nm32 := s*src.m31 + c*src.m32

	m.setRaw(
		src.m00, nm01, nm02, src.m03,
		src.m10, nm11, nm12, src.m13,
		src.m20, nm21, nm22, src.m23,
		src.m30, nm31, nm32, src.m33,
	)

	m.properties = src.properties &^ rotationClears
	return m
}

// RotateLocalY stores Ry(angle) × src in m.
func (m *Mat4) RotateLocalY(src *Mat4, angle Rad) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetRotationY(angle)
	}

	s, c := sincos(angle)

	nm00 := c*src.m00 + s*src.m02
	nm02 := c*src.m02 - s*src.m00
	nm10 := c*src.m10 + s*src.m12
	nm12 := c*src.m12 - s*src.m10
	nm20 := c*src.m20 + s*src.m22
	nm22 := c*src.m22 - s*src.m20
	nm30 := c*src.m30 + s*src.m32
	nm32 := c*src.m32 - s*src.m30

	m.setRaw(
		nm00, src.m01, nm02, src.m03,
		nm10, src.m11, nm12, src.m13,
		nm20, src.m21, nm22, src.m23,
		nm30, src.m31, nm32, src.m33,
	)

	m.properties = src.properties &^ rotationClears
	return m
}

// RotateLocalZ stores Rz(angle) × src in m.
func (m *Mat4) RotateLocalZ(src *Mat4, angle Rad) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetRotationZ(angle)
	}

	s, c := sincos(angle)

	nm00 := c*src.m00 - s*src.m01
	nm01 := s*src.m00 + c*src.m01
	nm10 := c*src.m10 - s*src.m11
	nm11 := s*src.m10 + c*src.m11
	nm20 := c*src.m20 - s*src.m21
	nm21 := s*src.m20 + c*src.m21
	nm30 := c*src.m30 - s*src.m31
	nm31 := s*src.m30 + c*src.m31

	m.setRaw(
		nm00, nm01, src.m02, src.m03,
		nm10, nm11, src.m12, src.m13,
		nm20, nm21, src.m22, src.m23,
		nm30, nm31, src.m32, src.m33,
	)

	m.properties = src.properties &^ rotationClears
	return m
}

func axisAngleMat3(angle Rad, x, y, z float32) Mat3 {
	s, c := sincos(angle)
	ic := 1 - c

	xy, xz, yz := x*y*ic, x*z*ic, y*z*ic
	sx, sy, sz := s*x, s*y, s*z

	return Mat3{
		c + x*x*ic, xy + sz, xz - sy,
		xy - sz, c + y*y*ic, yz + sx,
		xz + sy, yz - sx, c + z*z*ic,
	}
}

func quaternionMat3(quat Quaternionf) Mat3 {
	x2 := quat.V[0] + quat.V[0]
	y2 := quat.V[1] + quat.V[1]
	z2 := quat.V[2] + quat.V[2]

	xx2 := x2 * quat.V[0]
	xy2 := x2 * quat.V[1]
	xz2 := x2 * quat.V[2]

	yy2 := y2 * quat.V[1]
	yz2 := y2 * quat.V[2]
	zz2 := z2 * quat.V[2]

	sy2 := y2 * quat.S
	sz2 := z2 * quat.S
	sx2 := x2 * quat.S

	return Mat3{
		1 - yy2 - zz2, xy2 + sz2, xz2 - sy2,
		xy2 - sz2, 1 - xx2 - zz2, yz2 + sx2,
		xz2 + sy2, yz2 - sx2, 1 - xx2 - yy2,
	}
}
