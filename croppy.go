// Package croppy extracts rectangular sub-arrays from N-dimensional
// arrays: a centered crop to an exact target shape, and a crop to the
// bounding box of a boolean region-of-interest mask. Results are views
// sharing storage with the source array.
package croppy

import "fmt"

// AxisSpec selects the axes an operation applies to: every axis, a
// single axis, or an explicit set. The zero value selects every axis.
// Negative indices address axes from the end and are normalized modulo
// the array's rank once at entry.
type AxisSpec struct {
	axes  []int
	given bool
}

// AllAxes selects every axis of the array.
func AllAxes() AxisSpec { return AxisSpec{} }

// Axis selects a single axis.
func Axis(i int) AxisSpec { return AxisSpec{axes: []int{i}, given: true} }

// Axes selects an explicit set of axes, in order. Duplicates after
// normalization are tolerated. Axes() with no arguments selects
// nothing: no axis is bounded and ROI cropping keeps the full range
// everywhere.
func Axes(indices ...int) AxisSpec {
	return AxisSpec{axes: append([]int(nil), indices...), given: true}
}

func (s AxisSpec) resolve(ndim int) []int {
	if ndim == 0 {
		return nil
	}
	if !s.given {
		all := make([]int, ndim)
		for i := range all {
			all[i] = i
		}
		return all
	}
	norm := make([]int, len(s.axes))
	for i, ax := range s.axes {
		norm[i] = ((ax % ndim) + ndim) % ndim
	}
	return norm
}

// CropToShape crops a to target, centered within the original extents.
// Per axis the leading discard is (dim-target)/2 rounded down, so an
// odd surplus drops one more element from the trailing side than the
// leading side. The returned ranges are the per-axis [start,end) pairs
// used; applying them to a co-indexed array (a label mask aligned with
// a, say) reproduces the identical crop.
func CropToShape[T any](a *Array[T], target Shape) (*Array[T], []SliceRange, error) {
	if len(target) != a.NDim() {
		return nil, nil, fmt.Errorf("%w: target has %d dimensions, array has %d", ErrDimensionMismatch, len(target), a.NDim())
	}
	for i, t := range target {
		if t < 0 {
			return nil, nil, fmt.Errorf("axis %d: negative target dimension %d", i, t)
		}
		if t > a.shape[i] {
			return nil, nil, fmt.Errorf("%w: axis %d: %d > %d", ErrShapeTooLarge, i, t, a.shape[i])
		}
	}
	ranges := make([]SliceRange, a.NDim())
	for i, dim := range a.shape {
		delta := dim - target[i]
		start := delta / 2
		ranges[i] = SliceRange{Start: start, End: dim - (delta - start)}
	}
	cropped, err := a.Slice(ranges...)
	if err != nil {
		return nil, nil, err
	}
	return cropped, ranges, nil
}

// CropROI crops a to the extent of mask's true elements on the selected
// axes; unselected axes keep their full original range. Each axis is
// bounded independently, so the result covers the mask's per-axis
// extent rather than its exact footprint: positions where the mask is
// false can survive the crop.
func CropROI[T any](a *Array[T], mask *Array[bool], axes AxisSpec) (*Array[T], []SliceRange, error) {
	if !a.shape.Equal(mask.shape) {
		return nil, nil, fmt.Errorf("%w: array %v, mask %v", ErrShapeMismatch, a.shape, mask.shape)
	}
	ranges := FullRanges(a.shape)
	selected := axes.resolve(a.NDim())
	if len(selected) > 0 {
		lo, hi, ok := maskExtents(mask)
		if !ok {
			return nil, nil, fmt.Errorf("%w: mask has no true elements", ErrEmptyRegion)
		}
		for _, ax := range selected {
			ranges[ax] = SliceRange{Start: lo[ax], End: hi[ax] + 1}
		}
	}
	cropped, err := a.Slice(ranges...)
	if err != nil {
		return nil, nil, err
	}
	return cropped, ranges, nil
}

// maskExtents scans mask once in row-major order, tracking the smallest
// and largest true coordinate per axis. ok is false when no element is
// true.
func maskExtents(mask *Array[bool]) (lo, hi []int, ok bool) {
	ndim := mask.NDim()
	if mask.shape.NumElements() == 0 {
		return nil, nil, false
	}
	lo = make([]int, ndim)
	hi = make([]int, ndim)
	coords := make([]int, ndim)
	for {
		if mask.At(coords...) {
			if !ok {
				copy(lo, coords)
				copy(hi, coords)
				ok = true
			} else {
				for i, c := range coords {
					if c < lo[i] {
						lo[i] = c
					}
					if c > hi[i] {
						hi[i] = c
					}
				}
			}
		}
		axis := ndim - 1
		for ; axis >= 0; axis-- {
			coords[axis]++
			if coords[axis] < mask.shape[axis] {
				break
			}
			coords[axis] = 0
		}
		if axis < 0 {
			break
		}
	}
	if !ok {
		return nil, nil, false
	}
	return lo, hi, true
}
