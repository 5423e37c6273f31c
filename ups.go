package coordconv

import "fmt"

const upsScaleFactor = 0.994
const upsFalseEasting = 2000000
const upsFalseNorthing = 2000000

// NewUPS constructs the Universal Polar Stereographic projection for one
// hemisphere: a polar stereographic projection with a scale factor of 0.994
// at the pole and a 2,000 km false origin.
func NewUPS(ellipsoid Ellipsoid, hemisphere Hemisphere) (*PolarStereographic, error) {
	p, err := NewPolarStereographicScaleFactor(ellipsoid, 0, upsScaleFactor, hemisphere,
		upsFalseEasting, upsFalseNorthing)
	if err != nil {
		return nil, fmt.Errorf("ups %s: %w", hemisphere, err)
	}
	return p, nil
}
