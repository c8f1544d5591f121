// Package coords enumerates the coordinates of an N-dimensional shape and the
// neighborhood of a single coordinate.
package coords

import (
	"iter"
	"slices"

	"github.com/vancomm/ndmines/internal/ndarray"
)

// All yields every coordinate of shape exactly once, last axis fastest, so
// shape.Size() coordinates in total. Every yielded coordinate is a fresh
// slice. A shape that fails Validate yields nothing.
func All(shape ndarray.Shape) iter.Seq[ndarray.Coord] {
	return func(yield func(ndarray.Coord) bool) {
		if len(shape) == 0 {
			return
		}
		for _, d := range shape {
			if d < 1 {
				return
			}
		}
		c := make(ndarray.Coord, len(shape))
		for {
			if !yield(slices.Clone(c)) {
				return
			}
			axis := len(c) - 1
			for ; axis >= 0; axis-- {
				c[axis]++
				if c[axis] < shape[axis] {
					break
				}
				c[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

// Neighbors yields c and every coordinate that differs from it by at most one
// along each axis, skipping those outside shape. Offsets run -1, 0, +1 per
// axis with the first axis outermost.
//
// panics [*ndarray.IndexError] when c does not address a cell of shape
func Neighbors(c ndarray.Coord, shape ndarray.Shape) iter.Seq[ndarray.Coord] {
	if err := shape.Check(c); err != nil {
		panic(err)
	}
	return func(yield func(ndarray.Coord) bool) {
		lo := make([]int, len(c))
		hi := make([]int, len(c))
		for axis, v := range c {
			lo[axis] = max(v-1, 0)
			hi[axis] = min(v+1, shape[axis]-1)
		}
		n := slices.Clone(lo)
		for {
			if !yield(slices.Clone(n)) {
				return
			}
			axis := len(n) - 1
			for ; axis >= 0; axis-- {
				n[axis]++
				if n[axis] <= hi[axis] {
					break
				}
				n[axis] = lo[axis]
			}
			if axis < 0 {
				return
			}
		}
	}
}
