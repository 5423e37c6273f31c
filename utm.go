package coordconv

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	utmScaleFactor        = 0.9996
	utmFalseEasting       = 500000.0
	utmSouthFalseNorthing = 10000000.0
)

// UTMZone is a single Universal Transverse Mercator zone. Unlike a grid
// reference system it does not pick a zone per point: every coordinate is
// projected into the zone it was built for.
type UTMZone struct {
	Zone       int
	Hemisphere Hemisphere

	transverseMercator *TransverseMercator
}

// NewUTMZone constructs the UTM projection for zone 1-60 in the given
// hemisphere.
func NewUTMZone(ellipsoid Ellipsoid, zone int, hemisphere Hemisphere) (*UTMZone, error) {
	if (zone < 1) || (zone > 60) {
		return nil, errors.New("zone out of range")
	}
	if (hemisphere != HemisphereSouth) && (hemisphere != HemisphereNorth) {
		return nil, errors.New("hemisphere out of range")
	}

	falseNorthing := 0.0
	if hemisphere == HemisphereSouth {
		falseNorthing = utmSouthFalseNorthing
	}

	tm, err := NewTransverseMercator(ellipsoid, UTMCentralMeridian(zone), 0,
		utmFalseEasting, falseNorthing, utmScaleFactor)
	if err != nil {
		return nil, fmt.Errorf("utm zone %d%s: %w", zone, hemisphere, err)
	}
	return &UTMZone{
		Zone:               zone,
		Hemisphere:         hemisphere,
		transverseMercator: tm,
	}, nil
}

// UTMCentralMeridian returns the central meridian of a UTM zone.
func UTMCentralMeridian(zone int) s1.Angle {
	return s1.Angle(6*zone-183) * s1.Degree
}

// ConvertFromGeodetic converts geodetic coordinates to easting and northing
// in this zone.
func (u *UTMZone) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	return u.transverseMercator.ConvertFromGeodetic(geodeticCoordinates)
}

// ConvertToGeodetic converts easting and northing in this zone to geodetic
// coordinates.
func (u *UTMZone) ConvertToGeodetic(utmCoordinates MapCoords) (s2.LatLng, error) {
	return u.transverseMercator.ConvertToGeodetic(utmCoordinates)
}
