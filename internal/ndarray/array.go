// Package ndarray stores one value per coordinate of a fixed N-dimensional
// shape. Values live in a single row-major slice addressed through strides,
// so the dimension count only bounds loops and never the call stack.
package ndarray

import (
	"fmt"
	"slices"
	"strings"
)

type Array[T any] struct {
	shape   Shape
	strides []int
	data    []T
}

// New returns an array of the given shape with every cell set to fill.
func New[T any](shape Shape, fill T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	shape = slices.Clone(shape)
	data := make([]T, shape.Size())
	for i := range data {
		data[i] = fill
	}
	return &Array[T]{shape: shape, strides: shape.strides(), data: data}, nil
}

// FromValues builds an array over a copy of values given in row-major order.
func FromValues[T any](shape Shape, values []T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(values) != shape.Size() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrInvalidShape, len(values), []int(shape))
	}
	shape = slices.Clone(shape)
	return &Array[T]{shape: shape, strides: shape.strides(), data: slices.Clone(values)}, nil
}

// Map returns a same-shape array holding f applied to every value of a.
func Map[T, U any](a *Array[T], f func(T) U) *Array[U] {
	data := make([]U, len(a.data))
	for i, v := range a.data {
		data[i] = f(v)
	}
	return &Array[U]{shape: slices.Clone(a.shape), strides: slices.Clone(a.strides), data: data}
}

func (a *Array[T]) Shape() Shape {
	return slices.Clone(a.shape)
}

func (a *Array[T]) Rank() int {
	return len(a.shape)
}

func (a *Array[T]) Len() int {
	return len(a.data)
}

func (a *Array[T]) Check(c Coord) error {
	return a.shape.Check(c)
}

// Index converts c to its flat position.
//
// panics [*IndexError]
func (a *Array[T]) Index(c Coord) int {
	if len(c) != len(a.shape) {
		panic(&IndexError{Coord: slices.Clone(c), Shape: slices.Clone(a.shape), Err: ErrRankMismatch})
	}
	i := 0
	for axis, v := range c {
		if v < 0 || v >= a.shape[axis] {
			panic(&IndexError{Coord: slices.Clone(c), Shape: slices.Clone(a.shape), Err: ErrIndexOutOfBounds})
		}
		i += v * a.strides[axis]
	}
	return i
}

// Coord converts a flat position back to a coordinate.
func (a *Array[T]) Coord(i int) Coord {
	c := make(Coord, len(a.shape))
	for axis, st := range a.strides {
		c[axis] = i / st
		i %= st
	}
	return c
}

// panics [*IndexError]
func (a *Array[T]) Get(c Coord) T {
	return a.data[a.Index(c)]
}

// panics [*IndexError]
func (a *Array[T]) Set(c Coord, v T) {
	a.data[a.Index(c)] = v
}

func (a *Array[T]) At(i int) T {
	return a.data[i]
}

func (a *Array[T]) SetAt(i int, v T) {
	a.data[i] = v
}

// Values returns a copy of the data in row-major order.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.data)
}

func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
		data:    slices.Clone(a.data),
	}
}

// Sub returns the slab at index i along the first axis. The slab shares
// storage with a. A rank-1 array has no slabs and returns nil.
func (a *Array[T]) Sub(i int) *Array[T] {
	if len(a.shape) < 2 || i < 0 || i >= a.shape[0] {
		return nil
	}
	n := a.strides[0]
	return &Array[T]{
		shape:   a.shape[1:],
		strides: a.strides[1:],
		data:    a.data[i*n : (i+1)*n : (i+1)*n],
	}
}

func (a *Array[T]) String() string {
	var b strings.Builder
	a.format(&b)
	return b.String()
}

func (a *Array[T]) format(b *strings.Builder) {
	b.WriteByte('[')
	if len(a.shape) == 1 {
		for i, v := range a.data {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(b, v)
		}
	} else {
		for i := range a.shape[0] {
			if i > 0 {
				b.WriteByte(' ')
			}
			a.Sub(i).format(b)
		}
	}
	b.WriteByte(']')
}
