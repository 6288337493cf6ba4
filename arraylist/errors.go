package arraylist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange matches every *IndexOutOfRangeError through errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexOutOfRangeError reports an index outside the valid range of the
// operation that received it.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

// Error implements the error interface
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Index: %d, Size: %d", e.Index, e.Size)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
