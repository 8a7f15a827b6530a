package glm

// FrustumPlaneID names a clipping plane of a view frustum by the NDC axis and
// direction of its outward normal.
type FrustumPlaneID uint8

const (
	FrustumPlaneNX FrustumPlaneID = iota
	FrustumPlanePX
	FrustumPlaneNY
	FrustumPlanePY
	FrustumPlaneNZ
	FrustumPlanePZ
)

// FrustumCornerID names a corner of a view frustum by its NDC coordinates.
type FrustumCornerID uint8

const (
	FrustumCornerNXNYNZ FrustumCornerID = iota
	FrustumCornerPXNYNZ
	FrustumCornerPXPYNZ
	FrustumCornerNXPYNZ
	FrustumCornerPXNYPZ
	FrustumCornerNXNYPZ
	FrustumCornerNXPYPZ
	FrustumCornerPXPYPZ
)

var frustumCornersNDC = [8]Vec3f{
	FrustumCornerNXNYNZ: {-1, -1, -1},
	FrustumCornerPXNYNZ: {1, -1, -1},
	FrustumCornerPXPYNZ: {1, 1, -1},
	FrustumCornerNXPYNZ: {-1, 1, -1},
	FrustumCornerPXNYPZ: {1, -1, 1},
	FrustumCornerNXNYPZ: {-1, -1, 1},
	FrustumCornerNXPYPZ: {-1, 1, 1},
	FrustumCornerPXPYPZ: {1, 1, 1},
}

// FrustumPlane returns the plane (a, b, c, d) of the frustum described by the
// projection or view-projection matrix m, with a*x + b*y + c*z + d >= 0 for
// points inside. The normal (a, b, c) has unit length. An id outside the
// declared constants panics.
func (m *Mat4) FrustumPlane(id FrustumPlaneID) Vec4f {
	w := Vec4f{m.m03, m.m13, m.m23, m.m33}

	var plane Vec4f
	switch id {
	case FrustumPlaneNX:
		plane = w.Add(Vec4f{m.m00, m.m10, m.m20, m.m30})
	case FrustumPlanePX:
		plane = w.Sub(Vec4f{m.m00, m.m10, m.m20, m.m30})
	case FrustumPlaneNY:
		plane = w.Add(Vec4f{m.m01, m.m11, m.m21, m.m31})
	case FrustumPlanePY:
		plane = w.Sub(Vec4f{m.m01, m.m11, m.m21, m.m31})
	case FrustumPlaneNZ:
		plane = w.Add(Vec4f{m.m02, m.m12, m.m22, m.m32})
	case FrustumPlanePZ:
		plane = w.Sub(Vec4f{m.m02, m.m12, m.m22, m.m32})
	default:
		panic("glm: invalid frustum plane")
	}

	return plane.MulScalar(invLength(plane[0], plane[1], plane[2]))
}

// FrustumPlanes returns all six planes indexed by FrustumPlaneID.
func (m *Mat4) FrustumPlanes() [6]Vec4f {
	var planes [6]Vec4f
	for idx := range planes {
		planes[idx] = m.FrustumPlane(FrustumPlaneID(idx))
	}

	return planes
}

// FrustumCorner returns a corner of the frustum described by m, assuming the
// depth range [-1, 1]. An id outside the declared constants panics.
func (m *Mat4) FrustumCorner(id FrustumCornerID) Vec3f {
	if int(id) >= len(frustumCornersNDC) {
		panic("glm: invalid frustum corner")
	}

	var inv Mat4
	inv.Invert(m)

	return inv.TransformProject(frustumCornersNDC[id])
}

// FrustumCorners returns all eight corners indexed by FrustumCornerID.
func (m *Mat4) FrustumCorners() [8]Vec3f {
	var inv Mat4
	inv.Invert(m)

	var corners [8]Vec3f
	for idx, ndc := range frustumCornersNDC {
		corners[idx] = inv.TransformProject(ndc)
	}

	return corners
}
