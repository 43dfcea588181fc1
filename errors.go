package croppy

import "errors"

// Validation failures surfaced by the crop operations. Every failure is
// detected before any slicing happens and is wrapped with call-site
// detail; match with errors.Is.
var (
	// ErrDimensionMismatch reports a target shape whose rank differs
	// from the array's.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrShapeTooLarge reports a target dimension larger than the
	// corresponding array dimension.
	ErrShapeTooLarge = errors.New("target shape exceeds array shape")
	// ErrShapeMismatch reports an ROI mask whose shape differs from the
	// array it is applied against.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrEmptyRegion reports an ROI mask with no true element, for which
	// no bounding range exists.
	ErrEmptyRegion = errors.New("empty region of interest")
)
