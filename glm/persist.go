package glm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// encodedSize is the size of the fixed binary form: 16 big endian float32 in
// column-major order, without header or properties.
const encodedSize = 16 * 4

// WriteTo writes the fixed binary form of m to w.
func (m *Mat4) WriteTo(w io.Writer) (int64, error) {
	var buf [encodedSize]byte

	n, err := w.Write(m.AppendBytes(buf[:0], binary.BigEndian))
	if err != nil {
		return int64(n), fmt.Errorf("glm: write matrix: %w", err)
	}

	return int64(n), nil
}

// ReadFrom reads the fixed binary form from r. The properties are cleared.
func (m *Mat4) ReadFrom(r io.Reader) (int64, error) {
	var buf [encodedSize]byte

	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(n), fmt.Errorf("glm: read matrix: %w", err)
	}

	return int64(n), m.SetBytes(buf[:], binary.BigEndian)
}

func (m *Mat4) MarshalBinary() ([]byte, error) {
	return m.AppendBytes(make([]byte, 0, encodedSize), binary.BigEndian), nil
}

// UnmarshalBinary reads the fixed binary form. The properties are cleared.
func (m *Mat4) UnmarshalBinary(data []byte) error {
	if len(data) != encodedSize {
		return fmt.Errorf("glm: unmarshal matrix: expected %d bytes, got %d", encodedSize, len(data))
	}

	return m.SetBytes(data, binary.BigEndian)
}
