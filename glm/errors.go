package glm

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by indexed accessors for an index outside [0, 3].
	ErrIndexOutOfRange = errors.New("glm: index out of range")

	// ErrUnsafeDisabled is returned by pointer transfers while unsafe access is disabled.
	// It matches errors.ErrUnsupported.
	ErrUnsafeDisabled = fmt.Errorf("glm: unsafe memory access disabled: %w", errors.ErrUnsupported)
)

func checkIndex(what string, idx int) error {
	if idx < 0 || idx > 3 {
		return fmt.Errorf("%w: %s %d", ErrIndexOutOfRange, what, idx)
	}

	return nil
}
