package coordconv

import (
	"errors"
	"math"
)

// Ellipsoid is a reference ellipsoid given by its semi-major axis in meters
// and its flattening.
type Ellipsoid struct {
	Name          string
	SemiMajorAxis float64
	Flattening    float64
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{
	Name:          "WGS 84",
	SemiMajorAxis: 6378137.0,
	Flattening:    1 / 298.257223563,
}

// Validate checks the ellipsoid parameters are usable by the projections in
// this package.
func (e Ellipsoid) Validate() error {
	if e.SemiMajorAxis <= 0.0 {
		return errors.New("Semi-major axis must be greater than zero")
	}
	invF := 1 / e.Flattening
	if (invF < 250) || (invF > 350) {
		return errors.New("Inverse flattening must be between 250 and 350")
	}
	return nil
}

// Eccentricity returns the first eccentricity of the ellipsoid.
func (e Ellipsoid) Eccentricity() float64 {
	return math.Sqrt(2*e.Flattening - e.Flattening*e.Flattening)
}
