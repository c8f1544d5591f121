package ndarray

import (
	"fmt"
	"math"
	"slices"
)

// Shape holds the size of every axis.
type Shape []int

// Coord addresses one cell, one component per axis.
type Coord []int

func (s Shape) Rank() int {
	return len(s)
}

// Size is the number of cells, the product of all axes. Only meaningful
// for shapes that pass Validate.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidShape)
	}
	n := 1
	for i, d := range s {
		if d < 1 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidShape, i, d)
		}
		if n > math.MaxInt/d {
			return fmt.Errorf("%w: cell count of %v overflows int", ErrInvalidShape, []int(s))
		}
		n *= d
	}
	return nil
}

// Check reports whether c addresses a cell of s.
func (s Shape) Check(c Coord) error {
	if len(c) != len(s) {
		return &IndexError{Coord: slices.Clone(c), Shape: slices.Clone(s), Err: ErrRankMismatch}
	}
	for i, v := range c {
		if v < 0 || v >= s[i] {
			return &IndexError{Coord: slices.Clone(c), Shape: slices.Clone(s), Err: ErrIndexOutOfBounds}
		}
	}
	return nil
}

func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s, o)
}

func (c Coord) Equal(o Coord) bool {
	return slices.Equal(c, o)
}

func (c Coord) String() string {
	return fmt.Sprint([]int(c))
}

// strides returns row-major strides, the last axis being contiguous.
func (s Shape) strides() []int {
	st := make([]int, len(s))
	n := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = n
		n *= s[i]
	}
	return st
}
