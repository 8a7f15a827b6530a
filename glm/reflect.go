package glm

// SetReflection sets m to the reflection at the plane a*x + b*y + c*z + d = 0.
// The normal (a, b, c) must be of unit length.
func (m *Mat4) SetReflection(a, b, c, d float32) *Mat4 {
	debugCheckUnitAxis(Vec3f{a, b, c})

	l := reflectionMat3(a, b, c)
	m.setRotation3(&l)

	m.m30 = -2 * a * d
	m.m31 = -2 * b * d
	m.m32 = -2 * c * d

	return m
}

// SetReflectionAt sets m to the reflection at the plane through point with the given normal.
func (m *Mat4) SetReflectionAt(normal, point Vec3f) *Mat4 {
	n := normal.Normalize()
	return m.SetReflection(n[0], n[1], n[2], -n.Dot(point))
}

// Reflect stores src × Refl(a, b, c, d) in m. The normal (a, b, c) must be of unit length.
func (m *Mat4) Reflect(src *Mat4, a, b, c, d float32) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.SetReflection(a, b, c, d)
	}

	debugCheckUnitAxis(Vec3f{a, b, c})

	// Refl = T(-2dn) × (I - 2nnᵀ)
	l := reflectionMat3(a, b, c)
	m.Translate(src, -2*a*d, -2*b*d, -2*c*d)
	return m.rotate3(m, &l)
}

func reflectionMat3(a, b, c float32) Mat3 {
	da, db, dc := a+a, b+b, c+c

	return Mat3{
		1 - da*a, -da * b, -da * c,
		-db * a, 1 - db*b, -db * c,
		-dc * a, -dc * b, 1 - dc*c,
	}
}

// SetShadow sets m to the projection of geometry onto the plane
// a*x + b*y + c*z + d = 0 as seen from light. A light with w=0 is directional.
func (m *Mat4) SetShadow(light Vec4f, plane Vec4f) *Mat4 {
	// normalize the plane, the matrix depends on its scale
	inv := invLength(plane[0], plane[1], plane[2])
	a, b, c, d := plane[0]*inv, plane[1]*inv, plane[2]*inv, plane[3]*inv

	lx, ly, lz, lw := light.XYZW()
	dot := a*lx + b*ly + c*lz + d*lw

	m.setRaw(
		dot-lx*a, -ly*a, -lz*a, -lw*a,
		-lx*b, dot-ly*b, -lz*b, -lw*b,
		-lx*c, -ly*c, dot-lz*c, -lw*c,
		-lx*d, -ly*d, -lz*d, dot-lw*d,
	)

	m.properties = 0
	return m
}

// Shadow stores src × Shadow(light, plane) in m.
func (m *Mat4) Shadow(src *Mat4, light Vec4f, plane Vec4f) *Mat4 {
	var shadow Mat4
	shadow.SetShadow(light, plane)
	return m.Mul(src, &shadow)
}

// SetBillboardCylindrical sets m to a model transform at objPos that rotates
// around up to face targetPos. up must be of unit length.
func (m *Mat4) SetBillboardCylindrical(objPos, targetPos, up Vec3f) *Mat4 {
	dir := targetPos.Sub(objPos)
	left := up.Cross(dir).Normalize()

	// project dir into the plane orthogonal to up
	dir = left.Cross(up).Normalize()

	return m.setBasis(left, up, dir, objPos)
}

// SetBillboardSpherical sets m to a model transform at objPos whose z axis
// points to targetPos.
func (m *Mat4) SetBillboardSpherical(objPos, targetPos, up Vec3f) *Mat4 {
	dir := targetPos.Sub(objPos).Normalize()
	left := up.Cross(dir).Normalize()
	upn := dir.Cross(left)

	return m.setBasis(left, upn, dir, objPos)
}

// setBasis sets the columns of m to the orthonormal basis x, y, z and the origin t.
func (m *Mat4) setBasis(x, y, z, t Vec3f) *Mat4 {
	m.setRaw(
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		t[0], t[1], t[2], 1,
	)

	m.properties = PropertyAffine | PropertyOrthonormal
	return m
}
