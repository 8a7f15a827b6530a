package glm

import (
	"unsafe"
)

// StoreTo writes the 16 coefficients in column-major order to the memory at
// ptr, which must hold at least 64 writable bytes aligned for float32.
func (m *Mat4) StoreTo(ptr unsafe.Pointer) error {
	if !UnsafeEnabled() {
		return ErrUnsafeDisabled
	}

	*(*[16]float32)(ptr) = m.Array()
	return nil
}

// LoadFrom reads 16 column-major coefficients from the memory at ptr. The
// properties are cleared.
func (m *Mat4) LoadFrom(ptr unsafe.Pointer) error {
	if !UnsafeEnabled() {
		return ErrUnsafeDisabled
	}

	values := (*[16]float32)(ptr)
	return m.SetFloats(values[:])
}

// Floats returns the coefficients of m as an array in column-major order,
// sharing memory with m. Writes through it bypass the properties, call
// DetermineProperties or Assume afterwards.
func (m *Mat4) Floats() (*[16]float32, error) {
	if !UnsafeEnabled() {
		return nil, ErrUnsafeDisabled
	}

	return (*[16]float32)(unsafe.Pointer(&m.m00)), nil
}

// Bytes returns the 64 bytes of the coefficients in native byte order,
// sharing memory with m, e.g. for uploading into a GPU buffer.
func (m *Mat4) Bytes() ([]byte, error) {
	values, err := m.Floats()
	if err != nil {
		return nil, err
	}

	return asByteSlice(values), nil
}

func asByteSlice[T any](value *T) []byte {
	var zeroT T

	n := unsafe.Sizeof(zeroT)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}
