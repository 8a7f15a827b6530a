package glm

// SetRotationXYZ sets m to Rx(x) × Ry(y) × Rz(z).
func (m *Mat4) SetRotationXYZ(x, y, z Rad) *Mat4 {
	r := eulerXYZ(x, y, z)
	return m.setRotation3(&r)
}

// SetRotationZYX sets m to Rz(z) × Ry(y) × Rx(x).
func (m *Mat4) SetRotationZYX(z, y, x Rad) *Mat4 {
	r := eulerZYX(z, y, x)
	return m.setRotation3(&r)
}

// SetRotationYXZ sets m to Ry(y) × Rx(x) × Rz(z).
func (m *Mat4) SetRotationYXZ(y, x, z Rad) *Mat4 {
	r := eulerYXZ(y, x, z)
	return m.setRotation3(&r)
}

// RotateXYZ stores src × Rx(x) × Ry(y) × Rz(z) in m.
func (m *Mat4) RotateXYZ(src *Mat4, x, y, z Rad) *Mat4 {
	r := eulerXYZ(x, y, z)
	return m.rotate3(src, &r)
}

// RotateZYX stores src × Rz(z) × Ry(y) × Rx(x) in m.
func (m *Mat4) RotateZYX(src *Mat4, z, y, x Rad) *Mat4 {
	r := eulerZYX(z, y, x)
	return m.rotate3(src, &r)
}

// RotateYXZ stores src × Ry(y) × Rx(x) × Rz(z) in m.
func (m *Mat4) RotateYXZ(src *Mat4, y, x, z Rad) *Mat4 {
	r := eulerYXZ(y, x, z)
	return m.rotate3(src, &r)
}

// EulerAnglesXYZ returns the angles of SetRotationXYZ that reproduce the
// upper left 3x3 part. It must be a pure rotation.
func (m *Mat4) EulerAnglesXYZ() (x, y, z Rad) {
	x = atan2(-m.m21, m.m22)
	y = atan2(m.m20, sqrt(max(0, 1-m.m20*m.m20)))
	z = atan2(-m.m10, m.m00)
	return
}

// EulerAnglesZYX returns the angles of SetRotationZYX that reproduce the
// upper left 3x3 part. It must be a pure rotation.
func (m *Mat4) EulerAnglesZYX() (z, y, x Rad) {
	x = atan2(m.m12, m.m22)
	y = atan2(-m.m02, sqrt(max(0, 1-m.m02*m.m02)))
	z = atan2(m.m01, m.m00)
	return
}

// EulerAnglesYXZ returns the angles of SetRotationYXZ that reproduce the
// upper left 3x3 part. It must be a pure rotation.
func (m *Mat4) EulerAnglesYXZ() (y, x, z Rad) {
	x = atan2(-m.m21, sqrt(max(0, 1-m.m21*m.m21)))
	y = atan2(m.m20, m.m22)
	z = atan2(m.m01, m.m11)
	return
}

func eulerXYZ(x, y, z Rad) Mat3 {
	sx, cx := sincos(x)
	sy, cy := sincos(y)
	sz, cz := sincos(z)

	return Mat3{
		cy * cz, cx*sz + sx*sy*cz, sx*sz - cx*sy*cz,
		-cy * sz, cx*cz - sx*sy*sz, sx*cz + cx*sy*sz,
		sy, -sx * cy, cx * cy,
	}
}

func eulerZYX(z, y, x Rad) Mat3 {
	sx, cx := sincos(x)
	sy, cy := sincos(y)
	sz, cz := sincos(z)

	return Mat3{
		cz * cy, sz * cy, -sy,
		cz*sy*sx - sz*cx, sz*sy*sx + cz*cx, cy * sx,
		cz*sy*cx + sz*sx, sz*sy*cx - cz*sx, cy * cx,
	}
}

func eulerYXZ(y, x, z Rad) Mat3 {
	sx, cx := sincos(x)
	sy, cy := sincos(y)
	sz, cz := sincos(z)

	return Mat3{
		cy*cz + sy*sx*sz, cx * sz, -sy*cz + cy*sx*sz,
		-cy*sz + sy*sx*cz, cx * cz, sy*sz + cy*sx*cz,
		sy * cx, -sx, cy * cx,
	}
}
