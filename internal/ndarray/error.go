package ndarray

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrRankMismatch     = errors.New("rank mismatch")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// IndexError reports a coordinate that does not address a cell of Shape.
type IndexError struct {
	Coord Coord
	Shape Shape
	Err   error
}

// [IndexError] implements [error]
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: coord %v, shape %v", e.Err, []int(e.Coord), []int(e.Shape))
}

func (e *IndexError) Unwrap() error {
	return e.Err
}
