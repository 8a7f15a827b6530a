package glm

import "strings"

// Properties summarizes the algebraic structure of a Mat4. A set flag licenses a
// cheaper formula, a cleared flag never forbids the general one.
type Properties uint8

const (
	// PropertyPerspective marks the zero pattern of a symmetric perspective projection.
	PropertyPerspective Properties = 1 << iota

	// PropertyAffine marks a last row of exactly (0, 0, 0, 1).
	PropertyAffine

	// PropertyIdentity marks the exact identity matrix.
	PropertyIdentity

	// PropertyTranslation marks an exact identity upper 3x3 on an affine matrix.
	PropertyTranslation

	// PropertyOrthonormal marks an upper 3x3 with unit length, mutually orthogonal
	// columns. It is asserted by constructors, never proven from coefficients.
	PropertyOrthonormal
)

const propertiesAll = PropertyIdentity | PropertyTranslation | PropertyAffine | PropertyOrthonormal

var propertyNames = [...]string{"Perspective", "Affine", "Identity", "Translation", "Orthonormal"}

func (p Properties) Has(flags Properties) bool {
	return p&flags == flags
}

func (p Properties) String() string {
	if p == 0 {
		return "0"
	}

	var names []string
	for idx, name := range propertyNames {
		if p&(1<<idx) != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, "|")
}

// Kind returns the most specific kind of matrix the flags describe.
func (p Properties) Kind() Kind {
	switch {
	case p&PropertyIdentity != 0:
		return KindIdentity

	case p&PropertyTranslation != 0:
		return KindTranslation

	case p&PropertyAffine != 0:
		if p&PropertyOrthonormal != 0 {
			return KindOrthonormal
		}

		return KindAffine

	case p&PropertyPerspective != 0:
		return KindPerspective

	default:
		return KindGeneral
	}
}

// Classify derives the flags provable from the coefficients alone, given in
// column-major order. It only uses exact comparisons. Orthogonality is never
// tested, PropertyOrthonormal is only reported for an exact identity 3x3.
func Classify(c *[16]float32) Properties {
	var p Properties

	// m03, m13
	if c[3] != 0 || c[7] != 0 {
		return 0
	}

	// m23, m33
	if c[11] == 0 && c[15] == 1 {
		p |= PropertyAffine

		identity3x3 := c[0] == 1 && c[1] == 0 && c[2] == 0 &&
			c[4] == 0 && c[5] == 1 && c[6] == 0 &&
			c[8] == 0 && c[9] == 0 && c[10] == 1

		if identity3x3 {
			p |= PropertyTranslation | PropertyOrthonormal

			if c[12] == 0 && c[13] == 0 && c[14] == 0 {
				p |= PropertyIdentity
			}
		}

		return p
	}

	perspective := c[1] == 0 && c[2] == 0 &&
		c[4] == 0 && c[6] == 0 &&
		c[8] == 0 && c[9] == 0 &&
		c[12] == 0 && c[13] == 0 &&
		c[15] == 0

	if perspective {
		p |= PropertyPerspective
	}

	return p
}
