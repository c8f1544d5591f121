package ndarray_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/ndmines/internal/ndarray"
)

func TestNew(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2, 4, 2}, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, a.Rank())
	assert.Equal(t, 16, a.Len())
	assert.Equal(t, ndarray.Shape{2, 4, 2}, a.Shape())
	assert.Equal(t, "[[[0 0] [0 0] [0 0] [0 0]] [[0 0] [0 0] [0 0] [0 0]]]", a.String())

	flat, err := ndarray.New(ndarray.Shape{3}, true)
	require.NoError(t, err)
	assert.Equal(t, "[true true true]", flat.String())
}

func TestNewInvalidShape(t *testing.T) {
	tests := []struct {
		name  string
		shape ndarray.Shape
	}{
		{"empty", ndarray.Shape{}},
		{"nil", nil},
		{"zero axis", ndarray.Shape{2, 0, 3}},
		{"negative axis", ndarray.Shape{-1}},
		{"product wraps to zero", ndarray.Shape{1 << 16, 1 << 16, 1 << 16, 1 << 16}},
		{"product overflows", ndarray.Shape{math.MaxInt/2 + 1, 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a, err := ndarray.New(test.shape, 0)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ndarray.ErrInvalidShape)

			v, err := ndarray.FromValues(test.shape, []int{0})
			assert.Nil(t, v)
			assert.ErrorIs(t, err, ndarray.ErrInvalidShape)
		})
	}
}

func TestShapeIsCopied(t *testing.T) {
	shape := ndarray.Shape{2, 2}
	a, err := ndarray.New(shape, 0)
	require.NoError(t, err)

	shape[0] = 10
	assert.Equal(t, ndarray.Shape{2, 2}, a.Shape())

	got := a.Shape()
	got[1] = 10
	assert.Equal(t, ndarray.Shape{2, 2}, a.Shape())
}

func TestGetSet(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2, 2}, 0)
	require.NoError(t, err)

	a.Set(ndarray.Coord{1, 0}, 7)
	assert.Equal(t, 7, a.Get(ndarray.Coord{1, 0}))
	assert.Equal(t, 0, a.Get(ndarray.Coord{0, 1}))
	assert.Equal(t, "[[0 0] [7 0]]", a.String())

	flat, err := ndarray.New(ndarray.Shape{3}, 1)
	require.NoError(t, err)
	flat.Set(ndarray.Coord{1}, 0)
	assert.Equal(t, []int{1, 0, 1}, flat.Values())
	assert.Equal(t, 1, flat.Get(ndarray.Coord{2}))
}

func recoverIndexError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestGetPanics(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2, 3}, 0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		coord ndarray.Coord
		want  error
	}{
		{"short", ndarray.Coord{1}, ndarray.ErrRankMismatch},
		{"long", ndarray.Coord{1, 1, 1}, ndarray.ErrRankMismatch},
		{"past end", ndarray.Coord{0, 3}, ndarray.ErrIndexOutOfBounds},
		{"negative", ndarray.Coord{-1, 0}, ndarray.ErrIndexOutOfBounds},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := recoverIndexError(func() { a.Get(test.coord) })
			require.Error(t, err)
			assert.ErrorIs(t, err, test.want)

			var ie *ndarray.IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, test.coord, ie.Coord)

			err = recoverIndexError(func() { a.Set(test.coord, 1) })
			assert.ErrorIs(t, err, test.want)

			assert.ErrorIs(t, a.Check(test.coord), test.want)
		})
	}
	assert.NoError(t, a.Check(ndarray.Coord{1, 2}))
}

func TestIndexCoordRoundTrip(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{3, 1, 4, 2}, 0)
	require.NoError(t, err)

	for i := range a.Len() {
		c := a.Coord(i)
		assert.NoError(t, a.Check(c))
		assert.Equal(t, i, a.Index(c))
	}
	assert.Equal(t, ndarray.Coord{2, 0, 3, 1}, a.Coord(a.Len()-1))
}

func TestFromValues(t *testing.T) {
	a, err := ndarray.FromValues(ndarray.Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 6, a.Get(ndarray.Coord{1, 2}))
	assert.Equal(t, 2, a.Get(ndarray.Coord{0, 1}))

	_, err = ndarray.FromValues(ndarray.Shape{2, 3}, []int{1, 2})
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

func TestSubSharesStorage(t *testing.T) {
	a, err := ndarray.FromValues(ndarray.Shape{2, 2, 2}, []int{0, 1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)

	s := a.Sub(1)
	require.NotNil(t, s)
	assert.Equal(t, ndarray.Shape{2, 2}, s.Shape())
	assert.Equal(t, "[[4 5] [6 7]]", s.String())

	s.Set(ndarray.Coord{0, 1}, 50)
	assert.Equal(t, 50, a.Get(ndarray.Coord{1, 0, 1}))

	assert.Nil(t, a.Sub(2))
	assert.Nil(t, a.Sub(1).Sub(0).Sub(0))
}

func TestCloneAndMap(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2}, 3)
	require.NoError(t, err)

	c := a.Clone()
	c.Set(ndarray.Coord{0}, 9)
	assert.Equal(t, 3, a.Get(ndarray.Coord{0}))

	m := ndarray.Map(a, func(v int) bool { return v > 2 })
	assert.Equal(t, []bool{true, true}, m.Values())
	assert.Equal(t, a.Shape(), m.Shape())
}
