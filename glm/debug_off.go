//go:build !glmdebug

package glm

func debugCheckUnitAxis(Vec3f) {}

func debugCheckUnitQuaternion(Quaternionf) {}
