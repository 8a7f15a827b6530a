package glm

// Quaternion is a rotation quaternion with vector part V and scalar part S.
// The kernel only consumes quaternions, it assumes them to be of unit length.
type Quaternion[T float] struct {
	V Vec3[T]
	S T
}

// QuaternionAxisAngle returns the quaternion rotating by angle around the unit axis.
func QuaternionAxisAngle(angle Rad, axis Vec3f) Quaternionf {
	s, c := sincos(angle * 0.5)
	return Quaternionf{V: axis.MulScalar(s), S: c}
}

func (q Quaternion[T]) LengthSqr() T {
	return q.V.Dot(q.V) + q.S*q.S
}
