package coordconv

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCRS is matched by errors returned for EPSG codes that do not
	// resolve to a coordinate reference system.
	ErrUnknownCRS = errors.New("unknown CRS")
	// ErrTransformConstruction is returned when no transformation exists
	// between two coordinate reference systems.
	ErrTransformConstruction = errors.New("transform construction failed")
	// ErrDataSizeMismatch is returned when paired coordinate slices differ
	// in length.
	ErrDataSizeMismatch = errors.New("data size mismatch")
	// ErrNotTransformable marks a single coordinate that has no image in the
	// destination CRS.
	ErrNotTransformable = errors.New("coordinate not transformable")
)

// UnknownCRSError reports a CRS identifier that could not be resolved.
type UnknownCRSError struct {
	Code  int
	Input string // original text when parsed from a string
}

func (e *UnknownCRSError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("unknown CRS %q", e.Input)
	}
	return fmt.Sprintf("unknown CRS EPSG:%d", e.Code)
}

// Is matches ErrUnknownCRS.
func (e *UnknownCRSError) Is(target error) bool {
	return target == ErrUnknownCRS
}

// PointError reports the first coordinate of a batch that failed to
// transform when error checking is enabled.
type PointError struct {
	Index int
	X, Y  float64
	Err   error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("%v at index %d (%g, %g): %v", ErrNotTransformable, e.Index, e.X, e.Y, e.Err)
}

// Unwrap returns the projection error.
func (e *PointError) Unwrap() error {
	return e.Err
}

// Is matches ErrNotTransformable.
func (e *PointError) Is(target error) bool {
	return target == ErrNotTransformable
}
