package croppy

import "fmt"

// Shape is the length of each dimension of an array, one entry per axis.
type Shape []int

// NDim returns the number of axes.
func (s Shape) NDim() int { return len(s) }

// NumElements returns the total element count, 1 for a 0-d scalar.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// contiguousStrides computes row-major element strides: the last axis
// varies fastest, "C" order.
func contiguousStrides(s Shape) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Array is a dense rectangular N-dimensional array over a flat backing
// slice. Sub-arrays produced by Slice share the backing slice with
// their source: a write through one is observable through the other.
type Array[T any] struct {
	data    []T
	shape   Shape
	strides []int
	offset  int
}

// New wraps data as an array of the given shape, laid out in row-major
// order. The slice is retained, not copied.
func New[T any](data []T, shape Shape) (*Array[T], error) {
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("axis %d: negative dimension %d", i, d)
		}
	}
	if want := shape.NumElements(); len(data) != want {
		return nil, fmt.Errorf("%d elements cannot fill shape %v (%d)", len(data), shape, want)
	}
	return &Array[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: contiguousStrides(shape),
	}, nil
}

// Shape returns a copy of the array's dimensions.
func (a *Array[T]) Shape() Shape { return a.shape.Clone() }

// NDim returns the number of axes.
func (a *Array[T]) NDim() int { return len(a.shape) }

func (a *Array[T]) flatIndex(coords []int) int {
	if len(coords) != len(a.shape) {
		panic(fmt.Sprintf("croppy: %d coordinates for %d-dimensional array", len(coords), len(a.shape)))
	}
	ix := a.offset
	for i, c := range coords {
		if c < 0 || c >= a.shape[i] {
			panic(fmt.Sprintf("croppy: coordinate %d out of range on axis %d (dimension %d)", c, i, a.shape[i]))
		}
		ix += c * a.strides[i]
	}
	return ix
}

// At returns the element at the given coordinates, one per axis.
func (a *Array[T]) At(coords ...int) T {
	return a.data[a.flatIndex(coords)]
}

// Set stores v at the given coordinates. On a view this writes through
// to the source array's storage.
func (a *Array[T]) Set(v T, coords ...int) {
	a.data[a.flatIndex(coords)] = v
}
