package glm

import (
	if32 "golang.org/x/image/math/f32"
	mf32 "golang.org/x/mobile/exp/f32"
)

// SetMobile assigns the row-major matrix of x/mobile and classifies the result.
func (m *Mat4) SetMobile(src *mf32.Mat4) *Mat4 {
	return m.Set16(
		src[0][0], src[1][0], src[2][0], src[3][0],
		src[0][1], src[1][1], src[2][1], src[3][1],
		src[0][2], src[1][2], src[2][2], src[3][2],
		src[0][3], src[1][3], src[2][3], src[3][3],
	)
}

// Mobile converts m into the row-major matrix of x/mobile.
func (m *Mat4) Mobile() mf32.Mat4 {
	return mf32.Mat4{
		{m.m00, m.m10, m.m20, m.m30},
		{m.m01, m.m11, m.m21, m.m31},
		{m.m02, m.m12, m.m22, m.m32},
		{m.m03, m.m13, m.m23, m.m33},
	}
}

// SetImage assigns the row-major matrix of x/image and classifies the result.
func (m *Mat4) SetImage(src *if32.Mat4) *Mat4 {
	return m.Set16(
		src[0], src[4], src[8], src[12],
		src[1], src[5], src[9], src[13],
		src[2], src[6], src[10], src[14],
		src[3], src[7], src[11], src[15],
	)
}

// Image converts m into the row-major matrix of x/image.
func (m *Mat4) Image() if32.Mat4 {
	return m.transposedArray()
}

// SetImageAff4 assigns the affine matrix of x/image, whose implicit last row
// is (0, 0, 0, 1), and classifies the result.
func (m *Mat4) SetImageAff4(src *if32.Aff4) *Mat4 {
	return m.Set16(
		src[0], src[4], src[8], 0,
		src[1], src[5], src[9], 0,
		src[2], src[6], src[10], 0,
		src[3], src[7], src[11], 1,
	)
}

// ImageAff4 converts the upper three rows of m into the affine matrix of
// x/image. The last row of m is dropped.
func (m *Mat4) ImageAff4() if32.Aff4 {
	return if32.Aff4{
		m.m00, m.m10, m.m20, m.m30,
		m.m01, m.m11, m.m21, m.m31,
		m.m02, m.m12, m.m22, m.m32,
	}
}
