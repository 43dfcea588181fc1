package croppy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func mustNew[T any](t *testing.T, data []T, shape Shape) *Array[T] {
	t.Helper()
	a, err := New(data, shape)
	require.NoError(t, err)
	return a
}

func TestShape(t *testing.T) {
	t.Run("num elements", func(t *testing.T) {
		assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
		assert.Equal(t, 0, Shape{2, 0, 4}.NumElements())
		assert.Equal(t, 1, Shape{}.NumElements())
	})

	t.Run("equal", func(t *testing.T) {
		assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
		assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
		assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := Shape{2, 3}
		c := s.Clone()
		c[0] = 9
		assert.Equal(t, Shape{2, 3}, s)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "[2 3]", Shape{2, 3}.String())
	})
}

func TestNew(t *testing.T) {
	t.Run("length must match shape", func(t *testing.T) {
		_, err := New(seq(5), Shape{2, 3})
		assert.Error(t, err)
	})

	t.Run("negative dimension", func(t *testing.T) {
		_, err := New(seq(6), Shape{-2, -3})
		assert.Error(t, err)
	})

	t.Run("scalar", func(t *testing.T) {
		a := mustNew(t, []float64{7}, Shape{})
		assert.Equal(t, 0, a.NDim())
		assert.Equal(t, 7.0, a.At())
	})

	t.Run("shape is copied", func(t *testing.T) {
		s := Shape{2, 3}
		a := mustNew(t, seq(6), s)
		s[0] = 9
		assert.Equal(t, Shape{2, 3}, a.Shape())
	})
}

func TestArrayAtSet(t *testing.T) {
	a := mustNew(t, seq(6), Shape{2, 3})

	t.Run("row major layout", func(t *testing.T) {
		assert.Equal(t, 0.0, a.At(0, 0))
		assert.Equal(t, 2.0, a.At(0, 2))
		assert.Equal(t, 3.0, a.At(1, 0))
		assert.Equal(t, 5.0, a.At(1, 2))
	})

	t.Run("set", func(t *testing.T) {
		a.Set(42, 1, 1)
		assert.Equal(t, 42.0, a.At(1, 1))
	})

	t.Run("wrong coordinate count panics", func(t *testing.T) {
		assert.Panics(t, func() { a.At(1) })
	})

	t.Run("out of range panics", func(t *testing.T) {
		assert.Panics(t, func() { a.At(0, 3) })
		assert.Panics(t, func() { a.At(-1, 0) })
	})
}

func TestSlice(t *testing.T) {
	a := mustNew(t, seq(20), Shape{4, 5})

	t.Run("selects the sub-array", func(t *testing.T) {
		v, err := a.Slice(SliceRange{1, 3}, SliceRange{2, 5})
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 3}, v.Shape())
		assert.Equal(t, 7.0, v.At(0, 0))
		assert.Equal(t, 14.0, v.At(1, 2))
	})

	t.Run("writes through to the source", func(t *testing.T) {
		v, err := a.Slice(SliceRange{1, 3}, SliceRange{2, 5})
		require.NoError(t, err)

		v.Set(-1, 0, 1)
		assert.Equal(t, -1.0, a.At(1, 3))

		a.Set(-2, 2, 2)
		assert.Equal(t, -2.0, v.At(1, 0))
	})

	t.Run("range count must match rank", func(t *testing.T) {
		_, err := a.Slice(SliceRange{0, 1})
		assert.Error(t, err)
	})

	t.Run("rejects bad ranges", func(t *testing.T) {
		_, err := a.Slice(SliceRange{3, 1}, SliceRange{0, 5})
		assert.Error(t, err)

		_, err = a.Slice(SliceRange{0, 4}, SliceRange{0, 6})
		assert.Error(t, err)

		_, err = a.Slice(SliceRange{-1, 2}, SliceRange{0, 5})
		assert.Error(t, err)
	})
}

func TestFullRanges(t *testing.T) {
	assert.Equal(t, []SliceRange{{0, 4}, {0, 5}}, FullRanges(Shape{4, 5}))
	assert.Empty(t, FullRanges(Shape{}))
}
