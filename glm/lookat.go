package glm

// SetLookAt sets m to a right handed view transform of a camera at eye looking
// at center. The camera looks along its negative z axis.
func (m *Mat4) SetLookAt(eye, center, up Vec3f) *Mat4 {
	r := lookAtMat3(eye.Sub(center), up)
	return m.setView(&r, eye)
}

// SetLookAtLH sets m to a left handed view transform, the camera looks along
// its positive z axis.
func (m *Mat4) SetLookAtLH(eye, center, up Vec3f) *Mat4 {
	r := lookAtMat3(center.Sub(eye), up)
	return m.setView(&r, eye)
}

// LookAt stores src × V in m where V is the view transform of SetLookAt.
func (m *Mat4) LookAt(src *Mat4, eye, center, up Vec3f) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetLookAt(eye, center, up)
	}

	r := lookAtMat3(eye.Sub(center), up)

	// V = R × T(-eye)
	m.rotate3(src, &r)
	return m.Translate(m, -eye[0], -eye[1], -eye[2])
}

// LookAtLH stores src × V in m where V is the view transform of SetLookAtLH.
func (m *Mat4) LookAtLH(src *Mat4, eye, center, up Vec3f) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetLookAtLH(eye, center, up)
	}

	r := lookAtMat3(center.Sub(eye), up)

	m.rotate3(src, &r)
	return m.Translate(m, -eye[0], -eye[1], -eye[2])
}

// lookAtMat3 returns the rotation whose rows are the camera axes for the
// given z direction.
func lookAtMat3(dir, up Vec3f) Mat3 {
	dir = dir.Normalize()
	left := up.Cross(dir).Normalize()
	upn := dir.Cross(left)

	return Mat3{
		left[0], upn[0], dir[0],
		left[1], upn[1], dir[1],
		left[2], upn[2], dir[2],
	}
}

func (m *Mat4) setView(r *Mat3, eye Vec3f) *Mat4 {
	m.setRotation3(r)

	m.m30 = -(r[0]*eye[0] + r[3]*eye[1] + r[6]*eye[2])
	m.m31 = -(r[1]*eye[0] + r[4]*eye[1] + r[7]*eye[2])
	m.m32 = -(r[2]*eye[0] + r[5]*eye[1] + r[8]*eye[2])

	return m
}
