package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}

// Rad is an angle in radians.
type Rad float32

func absEqualsOne(v float32) bool {
	return v == 1 || v == -1
}
