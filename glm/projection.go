package glm

import "math"

// infiniteProjectionEpsilon keeps depth values of an infinite near or far plane
// inside the clip range.
const infiniteProjectionEpsilon = 1e-6

func DegToRad[T float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T float](rad Rad) (deg T) {
	return T(float64(rad) * (180 / math.Pi))
}

// perspectiveDepth returns m22 and m32 of a right handed projection mapping
// -near and -far to the lower and upper end of the depth range. Either plane
// may be +Inf.
func perspectiveDepth(near, far float32, zZeroToOne bool) (m22, m32 float32) {
	span, limit := float32(2), float32(1)
	if zZeroToOne {
		span, limit = 1, 0
	}

	switch {
	case far > 0 && math.IsInf(float64(far), 1):
		m22 = infiniteProjectionEpsilon - 1
		m32 = (infiniteProjectionEpsilon - span) * near

	case near > 0 && math.IsInf(float64(near), 1):
		m22 = limit - infiniteProjectionEpsilon
		m32 = (span - infiniteProjectionEpsilon) * far

	case zZeroToOne:
		m22 = far / (near - far)
		m32 = far * near / (near - far)

	default:
		m22 = (far + near) / (near - far)
		m32 = (far + far) * near / (near - far)
	}

	return m22, m32
}

// SetPerspective sets m to a symmetric right handed perspective projection.
// zZeroToOne selects the depth range [0, 1] instead of [-1, 1].
func (m *Mat4) SetPerspective(fovY Rad, aspect, near, far float32, zZeroToOne bool) *Mat4 {
	h := tan(fovY * 0.5)
	m22, m32 := perspectiveDepth(near, far, zZeroToOne)

	*m = Mat4{
		m00: 1 / (h * aspect),
		m11: 1 / h,
		m22: m22, m23: -1,
		m32:        m32,
		properties: PropertyPerspective,
	}

	return m
}

// SetPerspectiveLH sets m to a symmetric left handed perspective projection.
func (m *Mat4) SetPerspectiveLH(fovY Rad, aspect, near, far float32, zZeroToOne bool) *Mat4 {
	h := tan(fovY * 0.5)
	m22, m32 := perspectiveDepth(near, far, zZeroToOne)

	*m = Mat4{
		m00: 1 / (h * aspect),
		m11: 1 / h,
		m22: -m22, m23: 1,
		m32:        m32,
		properties: PropertyPerspective,
	}

	return m
}

// Perspective stores src × P in m where P is the projection of SetPerspective.
func (m *Mat4) Perspective(src *Mat4, fovY Rad, aspect, near, far float32, zZeroToOne bool) *Mat4 {
	var p Mat4
	p.SetPerspective(fovY, aspect, near, far, zZeroToOne)
	return m.applyProjection(src, &p)
}

// PerspectiveLH stores src × P in m where P is the projection of SetPerspectiveLH.
func (m *Mat4) PerspectiveLH(src *Mat4, fovY Rad, aspect, near, far float32, zZeroToOne bool) *Mat4 {
	var p Mat4
	p.SetPerspectiveLH(fovY, aspect, near, far, zZeroToOne)
	return m.applyProjection(src, &p)
}

// SetFrustum sets m to a right handed perspective projection of the view
// volume whose near plane spans [left, right] × [bottom, top]. It is only flagged
// perspective if the volume is symmetric.
func (m *Mat4) SetFrustum(left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	return m.setFrustum(left, right, bottom, top, near, far, zZeroToOne, false)
}

// SetFrustumLH is the left handed variant of SetFrustum.
func (m *Mat4) SetFrustumLH(left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	return m.setFrustum(left, right, bottom, top, near, far, zZeroToOne, true)
}

func (m *Mat4) setFrustum(left, right, bottom, top, near, far float32, zZeroToOne, leftHanded bool) *Mat4 {
	m22, m32 := perspectiveDepth(near, far, zZeroToOne)

	m20 := (right + left) / (right - left)
	m21 := (top + bottom) / (top - bottom)
	m23 := float32(-1)

	if leftHanded {
		m20, m21, m22, m23 = -m20, -m21, -m22, 1
	}

	*m = Mat4{
		m00: (near + near) / (right - left),
		m11: (near + near) / (top - bottom),
		m20: m20, m21: m21, m22: m22, m23: m23,
		m32: m32,
	}

	if m20 == 0 && m21 == 0 {
		m.properties = PropertyPerspective
	}

	return m
}

// Frustum stores src × F in m where F is the projection of SetFrustum.
func (m *Mat4) Frustum(src *Mat4, left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	var p Mat4
	p.SetFrustum(left, right, bottom, top, near, far, zZeroToOne)
	return m.applyProjection(src, &p)
}

// FrustumLH stores src × F in m where F is the projection of SetFrustumLH.
func (m *Mat4) FrustumLH(src *Mat4, left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	var p Mat4
	p.SetFrustumLH(left, right, bottom, top, near, far, zZeroToOne)
	return m.applyProjection(src, &p)
}

// SetOrtho sets m to a right handed orthographic projection.
func (m *Mat4) SetOrtho(left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	return m.setOrtho(left, right, bottom, top, near, far, zZeroToOne, false)
}

// SetOrthoLH sets m to a left handed orthographic projection.
func (m *Mat4) SetOrthoLH(left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	return m.setOrtho(left, right, bottom, top, near, far, zZeroToOne, true)
}

// SetOrthoSymmetric sets m to a right handed orthographic projection of a
// volume centered on the z axis.
func (m *Mat4) SetOrthoSymmetric(width, height, near, far float32, zZeroToOne bool) *Mat4 {
	return m.SetOrtho(-width*0.5, width*0.5, -height*0.5, height*0.5, near, far, zZeroToOne)
}

// SetOrtho2D sets m to an orthographic projection for 2D drawing. Depth is
// mirrored, the near and far planes sit at -1 and 1.
func (m *Mat4) SetOrtho2D(left, right, bottom, top float32) *Mat4 {
	return m.SetOrtho(left, right, bottom, top, -1, 1, false)
}

func (m *Mat4) setOrtho(left, right, bottom, top, near, far float32, zZeroToOne, leftHanded bool) *Mat4 {
	depth, offset := float32(2), far+near
	if zZeroToOne {
		depth, offset = 1, near
	}

	m22 := depth / (near - far)
	if leftHanded {
		m22 = -m22
	}

	*m = Mat4{
		m00: 2 / (right - left),
		m11: 2 / (top - bottom),
		m22: m22,
		m30: (right + left) / (left - right),
		m31: (top + bottom) / (bottom - top),
		m32: offset / (near - far),
		m33: 1,

		properties: PropertyAffine,
	}

	return m
}

// Ortho stores src × O in m where O is the projection of SetOrtho.
func (m *Mat4) Ortho(src *Mat4, left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	var p Mat4
	p.SetOrtho(left, right, bottom, top, near, far, zZeroToOne)
	return m.applyProjection(src, &p)
}

// OrthoLH stores src × O in m where O is the projection of SetOrthoLH.
func (m *Mat4) OrthoLH(src *Mat4, left, right, bottom, top, near, far float32, zZeroToOne bool) *Mat4 {
	var p Mat4
	p.SetOrthoLH(left, right, bottom, top, near, far, zZeroToOne)
	return m.applyProjection(src, &p)
}

// applyProjection stores src × p in m for a projection p built by one of the
// Set functions above. Columns zero and one of p only hold their diagonal entry.
func (m *Mat4) applyProjection(src, p *Mat4) *Mat4 {
	if src.Kind() == KindIdentity {
		return m.Set(p)
	}

	nm00 := src.m00 * p.m00
	nm01 := src.m01 * p.m00
	nm02 := src.m02 * p.m00
	nm03 := src.m03 * p.m00
	nm10 := src.m10 * p.m11
	nm11 := src.m11 * p.m11
	nm12 := src.m12 * p.m11
	nm13 := src.m13 * p.m11
	nm20 := src.m00*p.m20 + src.m10*p.m21 + src.m20*p.m22 + src.m30*p.m23
	nm21 := src.m01*p.m20 + src.m11*p.m21 + src.m21*p.m22 + src.m31*p.m23
	nm22 := src.m02*p.m20 + src.m12*p.m21 + src.m22*p.m22 + src.m32*p.m23
	nm23 := src.m03*p.m20 + src.m13*p.m21 + src.m23*p.m22 + src.m33*p.m23
	nm30 := src.m00*p.m30 + src.m10*p.m31 + src.m20*p.m32 + src.m30*p.m33
	nm31 := src.m01*p.m30 + src.m11*p.m31 + src.m21*p.m32 + src.m31*p.m33
	nm32 := src.m02*p.m30 + src.m12*p.m31 + src.m22*p.m32 + src.m32*p.m33
	nm33 := src.m03*p.m30 + src.m13*p.m31 + src.m23*p.m32 + src.m33*p.m33

	properties := Properties(0)
	if src.properties&p.properties&PropertyAffine != 0 {
		properties = PropertyAffine
	}

	m.setRaw(
		nm00, nm01, nm02, nm03,
		nm10, nm11, nm12, nm13,
		nm20, nm21, nm22, nm23,
		nm30, nm31, nm32, nm33,
	)

	m.properties = properties
	return m
}
