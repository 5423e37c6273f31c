package coordconv

import "github.com/golang/geo/s2"

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "invalid"
}

// MapCoords is a projected coordinate in meters.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// Projection converts between geodetic coordinates on an ellipsoid and plane
// coordinates in meters.
type Projection interface {
	ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error)
	ConvertToGeodetic(mapProjectionCoordinates MapCoords) (s2.LatLng, error)
}
