package croppy

import "fmt"

// SliceRange is a half-open [Start, End) index range on a single axis.
type SliceRange struct {
	Start int
	End   int
}

// FullRanges returns one full-extent range per axis of shape, the base
// that ROI cropping selectively overwrites for the axes it bounds.
func FullRanges(shape Shape) []SliceRange {
	ranges := make([]SliceRange, len(shape))
	for i, d := range shape {
		ranges[i] = SliceRange{Start: 0, End: d}
	}
	return ranges
}

// Slice returns the sub-array selected by one range per axis, in axis
// order. The result is a view over a's storage, not a copy.
func (a *Array[T]) Slice(ranges ...SliceRange) (*Array[T], error) {
	if len(ranges) != len(a.shape) {
		return nil, fmt.Errorf("%d ranges for %d-dimensional array", len(ranges), len(a.shape))
	}
	shape := make(Shape, len(ranges))
	offset := a.offset
	for i, r := range ranges {
		if r.Start < 0 || r.Start > r.End || r.End > a.shape[i] {
			return nil, fmt.Errorf("axis %d: range [%d,%d) out of bounds for dimension %d", i, r.Start, r.End, a.shape[i])
		}
		shape[i] = r.End - r.Start
		offset += r.Start * a.strides[i]
	}
	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: a.strides,
		offset:  offset,
	}, nil
}
