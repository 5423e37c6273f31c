package coordconv

import (
	"fmt"
	"math"
)

// Transformer converts coordinates from a source to a destination CRS.
// Input and output are always in x-then-y order: longitude before latitude
// and easting before northing, whatever the native axis order of the CRS
// definitions.
type Transformer struct {
	src      *CRS
	dst      *CRS
	errCheck bool
}

// TransformerOption configures a Transformer.
type TransformerOption func(*Transformer)

// WithErrCheck makes the transformer return a *PointError for the first
// coordinate that cannot be transformed instead of an infinite sentinel.
func WithErrCheck() TransformerOption {
	return func(t *Transformer) {
		t.errCheck = true
	}
}

// NewTransformer builds a transformer between two CRSs. Both must share the
// same ellipsoid: datum shifts are not supported.
func NewTransformer(src, dst *CRS, opts ...TransformerOption) (*Transformer, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("%w: missing source or destination CRS", ErrTransformConstruction)
	}
	if src.Ellipsoid.SemiMajorAxis != dst.Ellipsoid.SemiMajorAxis ||
		src.Ellipsoid.Flattening != dst.Ellipsoid.Flattening {
		return nil, fmt.Errorf("%w: %s (%s) and %s (%s) are on different ellipsoids",
			ErrTransformConstruction, src, src.Ellipsoid.Name, dst, dst.Ellipsoid.Name)
	}

	t := &Transformer{src: src, dst: dst}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// NewTransformerFromEPSG resolves both EPSG codes and builds a transformer.
func NewTransformerFromEPSG(src, dst int, opts ...TransformerOption) (*Transformer, error) {
	srcCRS, err := LookupCRS(src)
	if err != nil {
		return nil, err
	}
	dstCRS, err := LookupCRS(dst)
	if err != nil {
		return nil, err
	}
	return NewTransformer(srcCRS, dstCRS, opts...)
}

// Source returns the source CRS.
func (t *Transformer) Source() *CRS { return t.src }

// Destination returns the destination CRS.
func (t *Transformer) Destination() *CRS { return t.dst }

// Inverse returns a transformer for the opposite direction with the same
// options.
func (t *Transformer) Inverse() *Transformer {
	return &Transformer{src: t.dst, dst: t.src, errCheck: t.errCheck}
}

func (t *Transformer) String() string {
	return fmt.Sprintf("%s -> %s", t.src, t.dst)
}

func (t *Transformer) transformPoint(x, y float64) (float64, float64, error) {
	geodetic, err := t.src.toGeodetic(x, y)
	if err != nil {
		return 0, 0, err
	}
	return t.dst.fromGeodetic(geodetic)
}

// Transform converts a single coordinate. A coordinate without an image in
// the destination CRS yields +Inf for both components, or a *PointError when
// error checking is enabled.
func (t *Transformer) Transform(x, y float64) (float64, float64, error) {
	ox, oy, err := t.transformPoint(x, y)
	if err != nil {
		if t.errCheck {
			return math.Inf(1), math.Inf(1), &PointError{Index: 0, X: x, Y: y, Err: err}
		}
		return math.Inf(1), math.Inf(1), nil
	}
	return ox, oy, nil
}

// TransformSlice converts paired coordinate slices of equal length. Output
// element i corresponds to input element i.
func (t *Transformer) TransformSlice(xs, ys []float64) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: %d x values, %d y values", ErrDataSizeMismatch, len(xs), len(ys))
	}

	ox := make([]float64, len(xs))
	oy := make([]float64, len(ys))
	for i := range xs {
		x, y, err := t.transformPoint(xs[i], ys[i])
		if err != nil {
			if t.errCheck {
				return nil, nil, &PointError{Index: i, X: xs[i], Y: ys[i], Err: err}
			}
			x, y = math.Inf(1), math.Inf(1)
		}
		ox[i] = x
		oy[i] = y
	}
	return ox, oy, nil
}
