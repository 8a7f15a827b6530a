package glm

// Mat3 is a 3x3 float32 matrix in column-major order. It is used for the
// linear part of a Mat4, e.g. the normal matrix.
type Mat3 [9]float32

func IdentityMat3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (lhs Mat3) Mul(rhs Mat3) Mat3 {
	return Mat3{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
		lhs[0]*rhs[3] + lhs[3]*rhs[4] + lhs[6]*rhs[5],
		lhs[1]*rhs[3] + lhs[4]*rhs[4] + lhs[7]*rhs[5],
		lhs[2]*rhs[3] + lhs[5]*rhs[4] + lhs[8]*rhs[5],
		lhs[0]*rhs[6] + lhs[3]*rhs[7] + lhs[6]*rhs[8],
		lhs[1]*rhs[6] + lhs[4]*rhs[7] + lhs[7]*rhs[8],
		lhs[2]*rhs[6] + lhs[5]*rhs[7] + lhs[8]*rhs[8],
	}
}

func (lhs Mat3) Transform(rhs Vec3f) Vec3f {
	return Vec3f{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
	}
}

func (lhs Mat3) Transpose() Mat3 {
	// original
	// 0  3  6
	// 1  4  7
	// 2  5  8

	// transposed
	// 0  1  2
	// 3  4  5
	// 6  7  8

	return Mat3{
		lhs[0], lhs[3], lhs[6],
		lhs[1], lhs[4], lhs[7],
		lhs[2], lhs[5], lhs[8],
	}
}

func (lhs Mat3) Determinant() float32 {
	return (lhs[0]*lhs[4]-lhs[1]*lhs[3])*lhs[8] +
		(lhs[2]*lhs[3]-lhs[0]*lhs[5])*lhs[7] +
		(lhs[1]*lhs[5]-lhs[2]*lhs[4])*lhs[6]
}
