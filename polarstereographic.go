package coordconv

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// PolarStereographic is an ellipsoidal polar stereographic projection. The
// southern aspect is handled by mirroring latitude and longitude onto the
// northern one.
type PolarStereographic struct {
	ellipsoid            Ellipsoid
	es                   float64 // Eccentricity of ellipsoid
	esOverTwo            float64 // es / 2.0
	isSouthernHemisphere bool
	polarTC              float64
	polarK90             float64
	polaraMc             float64 // Polar_a * mc
	twoPolarA            float64 // 2.0 * Polar_a

	polarStandardParallel float64 // Latitude of true scale in radians, folded north
	polarCentralMeridian  float64 // Longitude of origin in radians, folded north
	polarFalseEasting     float64
	polarFalseNorthing    float64

	polarScaleFactor float64
}

func newPolarStereographic(ellipsoid Ellipsoid, falseEasting, falseNorthing float64) *PolarStereographic {
	es := ellipsoid.Eccentricity()
	onePlusEs := 1.0 + es
	oneMinusEs := 1.0 - es
	return &PolarStereographic{
		ellipsoid:             ellipsoid,
		es:                    es,
		esOverTwo:             es / 2.0,
		polarTC:               1.0,
		polarK90:              math.Sqrt(math.Pow(onePlusEs, onePlusEs) * math.Pow(oneMinusEs, oneMinusEs)),
		polaraMc:              ellipsoid.SemiMajorAxis,
		twoPolarA:             2.0 * ellipsoid.SemiMajorAxis,
		polarStandardParallel: math.Pi / 2,
		polarFalseEasting:     falseEasting,
		polarFalseNorthing:    falseNorthing,
		polarScaleFactor:      1.0,
	}
}

// NewPolarStereographic builds a polar stereographic projection from the
// latitude of true scale (EPSG method 9829, variant B). A negative standard
// parallel selects the southern aspect.
func NewPolarStereographic(ellipsoid Ellipsoid, centralMeridian, standardParallel s1.Angle,
	falseEasting, falseNorthing float64) (*PolarStereographic, error) {
	if err := ellipsoid.Validate(); err != nil {
		return nil, err
	}
	lat := standardParallel.Radians()
	lon := centralMeridian.Radians()
	if (lat < -math.Pi/2) || (lat > math.Pi/2) {
		return nil, errors.New("Origin Latitude out of range")
	}
	if (lon < -math.Pi) || (lon > 2*math.Pi) {
		return nil, errors.New("Origin Longitude out of range")
	}

	p := newPolarStereographic(ellipsoid, falseEasting, falseNorthing)
	p.setOrigin(lon, lat)

	slat := math.Sin(math.Abs(lat))
	onePlusEs := 1.0 + p.es
	oneMinusEs := 1.0 - p.es
	p.polarScaleFactor = ((1 + slat) / 2) *
		(p.polarK90 / math.Sqrt(math.Pow(1.0+p.es*slat, onePlusEs)*
			math.Pow(1.0-p.es*slat, oneMinusEs)))
	return p, nil
}

// NewPolarStereographicScaleFactor builds a polar stereographic projection
// from the scale factor at the pole (EPSG method 9810, variant A).
func NewPolarStereographicScaleFactor(ellipsoid Ellipsoid, centralMeridian s1.Angle,
	scaleFactor float64, hemisphere Hemisphere,
	falseEasting, falseNorthing float64) (*PolarStereographic, error) {
	const minScaleFactor = 0.1
	const maxScaleFactor = 3.0

	if err := ellipsoid.Validate(); err != nil {
		return nil, err
	}
	lon := centralMeridian.Radians()
	if (scaleFactor < minScaleFactor) || (scaleFactor > maxScaleFactor) {
		return nil, errors.New("Scale factor out of range")
	}
	if (lon < -math.Pi) || (lon > 2*math.Pi) {
		return nil, errors.New("Origin Longitude out of range")
	}
	if (hemisphere != HemisphereNorth) && (hemisphere != HemisphereSouth) {
		return nil, errors.New("Hemisphere out of range")
	}

	p := newPolarStereographic(ellipsoid, falseEasting, falseNorthing)
	p.polarScaleFactor = scaleFactor

	// Solve for the standard parallel whose scale matches the pole scale factor.
	onePlusEs := 1.0 + p.es
	oneMinusEs := 1.0 - p.es
	tolerance := 1.0e-15
	count := 30
	sk := 0.0
	skPlus1 := -1 + 2*p.polarScaleFactor
	for math.Abs(skPlus1-sk) > tolerance && count != 0 {
		sk = skPlus1
		skPlus1 = ((2 * p.polarScaleFactor *
			math.Sqrt(math.Pow(1.0+p.es*sk, onePlusEs)*
				math.Pow(1.0-p.es*sk, oneMinusEs))) /
			p.polarK90) - 1
		count--
	}
	if count == 0 || skPlus1 < -1.0 || skPlus1 > 1.0 {
		return nil, errors.New("origin latitude error")
	}

	standardParallel := math.Asin(skPlus1)
	if hemisphere == HemisphereSouth {
		standardParallel *= -1.0
	}
	p.setOrigin(lon, standardParallel)
	return p, nil
}

func (p *PolarStereographic) setOrigin(centralMeridian, standardParallel float64) {
	if centralMeridian > math.Pi {
		centralMeridian -= 2 * math.Pi
	}
	if standardParallel < 0 {
		p.isSouthernHemisphere = true
		p.polarStandardParallel = -standardParallel
		p.polarCentralMeridian = -centralMeridian
	} else {
		p.isSouthernHemisphere = false
		p.polarStandardParallel = standardParallel
		p.polarCentralMeridian = centralMeridian
	}

	if math.Abs(math.Abs(p.polarStandardParallel)-math.Pi/2) > 1.0e-10 {
		sinolat := math.Sin(p.polarStandardParallel)
		essin := p.es * sinolat
		powEs := p.polarPow(essin)
		cosolat := math.Cos(p.polarStandardParallel)
		mc := cosolat / math.Sqrt(1.0-essin*essin)
		p.polaraMc = p.ellipsoid.SemiMajorAxis * mc
		p.polarTC = math.Tan(math.Pi/4-p.polarStandardParallel/2.0) / powEs
	}
}

// IsSouthern reports whether the projection is centred on the south pole.
func (p *PolarStereographic) IsSouthern() bool {
	return p.isSouthernHemisphere
}

// ScaleFactor returns the scale factor at the pole.
func (p *PolarStereographic) ScaleFactor() float64 {
	return p.polarScaleFactor
}

// StandardParallel returns the latitude of true scale.
func (p *PolarStereographic) StandardParallel() s1.Angle {
	if p.isSouthernHemisphere {
		return s1.Angle(-p.polarStandardParallel)
	}
	return s1.Angle(p.polarStandardParallel)
}

// ConvertFromGeodetic converts geodetic coordinates (latitude and longitude) to
// Polar Stereographic coordinates (easting and northing).
func (p *PolarStereographic) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	longitude := geodeticCoordinates.Lng.Radians()
	latitude := geodeticCoordinates.Lat.Radians()

	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return MapCoords{}, errors.New("coordinate is not a number")
	}
	if (latitude < -math.Pi/2) || (latitude > math.Pi/2) {
		return MapCoords{}, errors.New("latitude out of range")
	}

	if p.isSouthernHemisphere {
		longitude *= -1.0
		latitude *= -1.0
	}

	// The projection pole maps to the false origin, the opposite pole to
	// infinity. Every other latitude of either hemisphere has an image.
	if math.Abs(latitude-math.Pi/2) < 1.0e-10 {
		return MapCoords{Easting: p.polarFalseEasting, Northing: p.polarFalseNorthing}, nil
	}
	if math.Abs(latitude+math.Pi/2) < 1.0e-10 {
		return MapCoords{}, errors.New("opposite pole projects to infinity")
	}

	dlam := math.Remainder(longitude-p.polarCentralMeridian, 2*math.Pi)
	slat := math.Sin(latitude)
	powEs := p.polarPow(p.es * slat)
	t := math.Tan(math.Pi/4-latitude/2.0) / powEs

	var rho float64
	if math.Abs(math.Abs(p.polarStandardParallel)-math.Pi/2) > 1.0e-10 {
		rho = p.polaraMc * t / p.polarTC
	} else {
		rho = p.twoPolarA * t / p.polarK90 * p.polarScaleFactor
	}

	var easting, northing float64
	if p.isSouthernHemisphere {
		easting = -(rho*math.Sin(dlam) - p.polarFalseEasting)
		northing = rho*math.Cos(dlam) + p.polarFalseNorthing
	} else {
		easting = rho*math.Sin(dlam) + p.polarFalseEasting
		northing = -rho*math.Cos(dlam) + p.polarFalseNorthing
	}
	return MapCoords{Easting: easting, Northing: northing}, nil
}

// ConvertToGeodetic converts Polar Stereographic coordinates (easting and
// northing) to geodetic coordinates (latitude and longitude).
func (p *PolarStereographic) ConvertToGeodetic(mapProjectionCoordinates MapCoords) (s2.LatLng, error) {
	easting := mapProjectionCoordinates.Easting
	northing := mapProjectionCoordinates.Northing

	if math.IsNaN(easting) || math.IsNaN(northing) {
		return s2.LatLng{}, errors.New("coordinate is not a number")
	}
	if math.IsInf(easting, 0) || math.IsInf(northing, 0) {
		return s2.LatLng{}, errors.New("coordinate is not finite")
	}

	dy := northing - p.polarFalseNorthing
	dx := easting - p.polarFalseEasting

	// Radius of point with origin of false easting, false northing
	rho := math.Hypot(dx, dy)

	var latitude, longitude float64
	if (dy == 0.0) && (dx == 0.0) {
		latitude = math.Pi / 2
		longitude = p.polarCentralMeridian
	} else {
		if p.isSouthernHemisphere {
			dy *= -1.0
			dx *= -1.0
		}

		var t float64
		if math.Abs(math.Abs(p.polarStandardParallel)-math.Pi/2) > 1.0e-10 {
			t = rho * p.polarTC / p.polaraMc
		} else {
			t = rho * p.polarK90 / (p.twoPolarA * p.polarScaleFactor)
		}
		phi := math.Pi/2 - 2.0*math.Atan(t)
		tempPhi := 0.0
		for i := 0; math.Abs(phi-tempPhi) > 1.0e-10 && i < 30; i++ {
			tempPhi = phi
			powEs := p.polarPow(p.es * math.Sin(phi))
			phi = math.Pi/2 - 2.0*math.Atan(t*powEs)
		}
		latitude = phi
		longitude = p.polarCentralMeridian + math.Atan2(dx, -dy)

		if longitude > math.Pi {
			longitude -= 2 * math.Pi
		} else if longitude < -math.Pi {
			longitude += 2 * math.Pi
		}

		// force distorted values to the valid range
		latitude = math.Min(math.Max(latitude, -math.Pi/2), math.Pi/2)
		longitude = math.Min(math.Max(longitude, -math.Pi), math.Pi)
	}
	if p.isSouthernHemisphere {
		latitude *= -1.0
		longitude *= -1.0
	}

	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

func (p *PolarStereographic) polarPow(esSin float64) float64 {
	return math.Pow((1.0-esSin)/(1.0+esSin), p.esOverTwo)
}
