package glm

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/mobile/exp/f32"
)

func shortBuffer(op string, need, have int) error {
	return fmt.Errorf("glm: %s needs %d values, got %d: %w", op, need, have, io.ErrShortBuffer)
}

// PutFloats writes the 16 coefficients in column-major order to the start of dst.
func (m *Mat4) PutFloats(dst []float32) error {
	if len(dst) < 16 {
		return shortBuffer("put floats", 16, len(dst))
	}

	values := m.Array()
	copy(dst, values[:])
	return nil
}

// PutFloatsTransposed writes the 16 coefficients in row-major order to the start of dst.
func (m *Mat4) PutFloatsTransposed(dst []float32) error {
	if len(dst) < 16 {
		return shortBuffer("put floats transposed", 16, len(dst))
	}

	values := m.transposedArray()
	copy(dst, values[:])
	return nil
}

// PutFloats4x3 writes the upper three rows, 12 values in column-major order,
// to the start of dst.
func (m *Mat4) PutFloats4x3(dst []float32) error {
	if len(dst) < 12 {
		return shortBuffer("put floats 4x3", 12, len(dst))
	}

	values := m.array4x3()
	copy(dst, values[:])
	return nil
}

// SetFloats reads 16 column-major coefficients from the start of src. The
// properties are cleared.
func (m *Mat4) SetFloats(src []float32) error {
	if len(src) < 16 {
		return shortBuffer("set floats", 16, len(src))
	}

	m.setRaw(
		src[0], src[1], src[2], src[3],
		src[4], src[5], src[6], src[7],
		src[8], src[9], src[10], src[11],
		src[12], src[13], src[14], src[15],
	)

	m.properties = 0
	return nil
}

// AppendBytes appends the 16 coefficients in column-major order to dst.
func (m *Mat4) AppendBytes(dst []byte, order binary.ByteOrder) []byte {
	values := m.Array()
	return appendFloats(dst, order, values[:])
}

// AppendBytesTransposed appends the 16 coefficients in row-major order to dst.
func (m *Mat4) AppendBytesTransposed(dst []byte, order binary.ByteOrder) []byte {
	values := m.transposedArray()
	return appendFloats(dst, order, values[:])
}

// AppendBytes4x3 appends the upper three rows in column-major order to dst.
func (m *Mat4) AppendBytes4x3(dst []byte, order binary.ByteOrder) []byte {
	values := m.array4x3()
	return appendFloats(dst, order, values[:])
}

// nativeOrder is binary.NativeEndian resolved to the concrete order of this machine.
var nativeOrder = func() binary.ByteOrder {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	if buf[0] == 1 {
		return binary.LittleEndian
	}

	return binary.BigEndian
}()

func appendFloats(dst []byte, order binary.ByteOrder, values []float32) []byte {
	switch order {
	case binary.BigEndian, binary.LittleEndian:
		// f32.Bytes only knows these two
		return append(dst, f32.Bytes(order, values...)...)

	case binary.NativeEndian:
		return append(dst, f32.Bytes(nativeOrder, values...)...)
	}

	var buf [4]byte
	for _, value := range values {
		order.PutUint32(buf[:], math.Float32bits(value))
		dst = append(dst, buf[:]...)
	}

	return dst
}

// SetBytes reads 16 column-major coefficients from the first 64 bytes of src.
// The properties are cleared.
func (m *Mat4) SetBytes(src []byte, order binary.ByteOrder) error {
	if len(src) < 64 {
		return fmt.Errorf("glm: set bytes needs 64 bytes, got %d: %w", len(src), io.ErrShortBuffer)
	}

	var values [16]float32
	for idx := range values {
		values[idx] = math.Float32frombits(order.Uint32(src[idx*4:]))
	}

	return m.SetFloats(values[:])
}

func (m *Mat4) transposedArray() [16]float32 {
	return [16]float32{
		m.m00, m.m10, m.m20, m.m30,
		m.m01, m.m11, m.m21, m.m31,
		m.m02, m.m12, m.m22, m.m32,
		m.m03, m.m13, m.m23, m.m33,
	}
}

func (m *Mat4) array4x3() [12]float32 {
	return [12]float32{
		m.m00, m.m01, m.m02,
		m.m10, m.m11, m.m12,
		m.m20, m.m21, m.m22,
		m.m30, m.m31, m.m32,
	}
}
