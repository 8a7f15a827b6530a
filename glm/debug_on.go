//go:build glmdebug

package glm

import "log/slog"

const unitTolerance = 1e-3

func debugCheckUnitAxis(axis Vec3f) {
	if lengthSqr := axis.Dot(axis); !nearOne(lengthSqr) {
		Logger().Warn("Axis is not of unit length",
			slog.Any("axis", axis),
			slog.Float64("lengthSqr", float64(lengthSqr)),
		)
	}
}

func debugCheckUnitQuaternion(q Quaternionf) {
	if lengthSqr := q.LengthSqr(); !nearOne(lengthSqr) {
		Logger().Warn("Quaternion is not of unit length",
			slog.Any("quaternion", q),
			slog.Float64("lengthSqr", float64(lengthSqr)),
		)
	}
}

func nearOne(v float32) bool {
	return v > 1-unitTolerance && v < 1+unitTolerance
}
