package glm

func (m *Mat4) M00() float32 { return m.m00 }
func (m *Mat4) M01() float32 { return m.m01 }
func (m *Mat4) M02() float32 { return m.m02 }
func (m *Mat4) M03() float32 { return m.m03 }
func (m *Mat4) M10() float32 { return m.m10 }
func (m *Mat4) M11() float32 { return m.m11 }
func (m *Mat4) M12() float32 { return m.m12 }
func (m *Mat4) M13() float32 { return m.m13 }
func (m *Mat4) M20() float32 { return m.m20 }
func (m *Mat4) M21() float32 { return m.m21 }
func (m *Mat4) M22() float32 { return m.m22 }
func (m *Mat4) M23() float32 { return m.m23 }
func (m *Mat4) M30() float32 { return m.m30 }
func (m *Mat4) M31() float32 { return m.m31 }
func (m *Mat4) M32() float32 { return m.m32 }
func (m *Mat4) M33() float32 { return m.m33 }

// The element setters keep every property the new value provably preserves.

func (m *Mat4) SetM00(v float32) *Mat4 {
	m.m00 = v
	m.degradeDiagonal(v)
	return m
}

func (m *Mat4) SetM01(v float32) *Mat4 {
	m.m01 = v
	m.degradeOffDiagonal(v)
	return m
}

func (m *Mat4) SetM02(v float32) *Mat4 {
	m.m02 = v
	m.degradeOffDiagonal(v)
	return m
}

func (m *Mat4) SetM03(v float32) *Mat4 {
	m.m03 = v
	m.degradeLastRowXY(v)
	return m
}

func (m *Mat4) SetM10(v float32) *Mat4 {
	m.m10 = v
	m.degradeOffDiagonal(v)
	return m
}

func (m *Mat4) SetM11(v float32) *Mat4 {
	m.m11 = v
	m.degradeDiagonal(v)
	return m
}

func (m *Mat4) SetM12(v float32) *Mat4 {
	m.m12 = v
	m.degradeOffDiagonal(v)
	return m
}

func (m *Mat4) SetM13(v float32) *Mat4 {
	m.m13 = v
	m.degradeLastRowXY(v)
	return m
}

func (m *Mat4) SetM20(v float32) *Mat4 {
	m.m20 = v
	m.degradeOffDiagonal(v)
	return m
}

func (m *Mat4) SetM21(v float32) *Mat4 {
	m.m21 = v
	m.degradeOffDiagonal(v)
	return m
}

func (m *Mat4) SetM22(v float32) *Mat4 {
	m.m22 = v
	m.degradeDiagonal(v)
	return m
}

func (m *Mat4) SetM30(v float32) *Mat4 {
	m.m30 = v
	m.degradeTranslationXY(v)
	return m
}

func (m *Mat4) SetM31(v float32) *Mat4 {
	m.m31 = v
	m.degradeTranslationXY(v)
	return m
}

func (m *Mat4) SetM23(v float32) *Mat4 {
	m.m23 = v
	if v != 0 {
		m.properties &^= PropertyIdentity | PropertyAffine | PropertyTranslation | PropertyOrthonormal
	}

	return m
}

func (m *Mat4) SetM32(v float32) *Mat4 {
	m.m32 = v

	// m32 is a free term of both translations and perspective projections
	if v != 0 {
		m.properties &^= PropertyIdentity
	}

	return m
}

func (m *Mat4) SetM33(v float32) *Mat4 {
	m.m33 = v
	if v != 0 {
		m.properties &^= PropertyPerspective
	}

	if v != 1 {
		m.properties &^= PropertyIdentity | PropertyTranslation | PropertyOrthonormal | PropertyAffine
	}

	return m
}

func (m *Mat4) degradeDiagonal(v float32) {
	switch {
	case v != 1:
		m.properties &^= PropertyIdentity | PropertyTranslation | PropertyOrthonormal

	case m.properties&PropertyTranslation == 0:
		// a one on the diagonal keeps an identity 3x3, nothing else
		m.properties &^= PropertyOrthonormal
	}
}

func (m *Mat4) degradeOffDiagonal(v float32) {
	switch {
	case v != 0:
		m.properties &^= PropertyIdentity | PropertyPerspective | PropertyTranslation | PropertyOrthonormal

	case m.properties&PropertyTranslation == 0:
		m.properties &^= PropertyOrthonormal
	}
}

func (m *Mat4) degradeLastRowXY(v float32) {
	if v != 0 {
		m.properties = 0
	}
}

func (m *Mat4) degradeTranslationXY(v float32) {
	if v != 0 {
		m.properties &^= PropertyIdentity | PropertyPerspective
	}
}

// Get returns the element in the given column and row.
func (m *Mat4) Get(col, row int) (float32, error) {
	if err := checkIndex("column", col); err != nil {
		return 0, err
	}

	if err := checkIndex("row", row); err != nil {
		return 0, err
	}

	values := m.Array()
	return values[col*4+row], nil
}

// SetElement sets the element in the given column and row, following the
// same property rules as the named setters.
func (m *Mat4) SetElement(col, row int, v float32) error {
	if err := checkIndex("column", col); err != nil {
		return err
	}

	if err := checkIndex("row", row); err != nil {
		return err
	}

	setters := [16]func(*Mat4, float32) *Mat4{
		(*Mat4).SetM00, (*Mat4).SetM01, (*Mat4).SetM02, (*Mat4).SetM03,
		(*Mat4).SetM10, (*Mat4).SetM11, (*Mat4).SetM12, (*Mat4).SetM13,
		(*Mat4).SetM20, (*Mat4).SetM21, (*Mat4).SetM22, (*Mat4).SetM23,
		(*Mat4).SetM30, (*Mat4).SetM31, (*Mat4).SetM32, (*Mat4).SetM33,
	}

	setters[col*4+row](m, v)
	return nil
}

// Row returns the row with the given index.
func (m *Mat4) Row(row int) (Vec4f, error) {
	if err := checkIndex("row", row); err != nil {
		return Vec4f{}, err
	}

	switch row {
	case 0:
		return Vec4f{m.m00, m.m10, m.m20, m.m30}, nil
	case 1:
		return Vec4f{m.m01, m.m11, m.m21, m.m31}, nil
	case 2:
		return Vec4f{m.m02, m.m12, m.m22, m.m32}, nil
	default:
		return Vec4f{m.m03, m.m13, m.m23, m.m33}, nil
	}
}

// SetRow replaces a row. The structure of the result is unknown, the
// properties are cleared.
func (m *Mat4) SetRow(row int, v Vec4f) error {
	if err := checkIndex("row", row); err != nil {
		return err
	}

	switch row {
	case 0:
		m.m00, m.m10, m.m20, m.m30 = v[0], v[1], v[2], v[3]
	case 1:
		m.m01, m.m11, m.m21, m.m31 = v[0], v[1], v[2], v[3]
	case 2:
		m.m02, m.m12, m.m22, m.m32 = v[0], v[1], v[2], v[3]
	default:
		m.m03, m.m13, m.m23, m.m33 = v[0], v[1], v[2], v[3]
	}

	m.properties = 0
	return nil
}

// Column returns the column with the given index.
func (m *Mat4) Column(col int) (Vec4f, error) {
	if err := checkIndex("column", col); err != nil {
		return Vec4f{}, err
	}

	switch col {
	case 0:
		return Vec4f{m.m00, m.m01, m.m02, m.m03}, nil
	case 1:
		return Vec4f{m.m10, m.m11, m.m12, m.m13}, nil
	case 2:
		return Vec4f{m.m20, m.m21, m.m22, m.m23}, nil
	default:
		return Vec4f{m.m30, m.m31, m.m32, m.m33}, nil
	}
}

// SetColumn replaces a column. The properties are cleared.
func (m *Mat4) SetColumn(col int, v Vec4f) error {
	if err := checkIndex("column", col); err != nil {
		return err
	}

	switch col {
	case 0:
		m.m00, m.m01, m.m02, m.m03 = v[0], v[1], v[2], v[3]
	case 1:
		m.m10, m.m11, m.m12, m.m13 = v[0], v[1], v[2], v[3]
	case 2:
		m.m20, m.m21, m.m22, m.m23 = v[0], v[1], v[2], v[3]
	default:
		m.m30, m.m31, m.m32, m.m33 = v[0], v[1], v[2], v[3]
	}

	m.properties = 0
	return nil
}
