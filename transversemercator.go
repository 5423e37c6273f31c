package coordconv

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const nTerms = 6

// TransverseMercator provides conversions between Geodetic coordinates
// (latitude and longitude) and Transverse Mercator projection coordinates
// (easting and northing) using the Krüger series.
type TransverseMercator struct {
	ellipsoid Ellipsoid

	tranMercEps float64 // Eccentricity

	tranMercK0R4    float64 // SCALE_FACTOR*R4
	tranMercK0R4inv float64 // 1/(SCALE_FACTOR*R4)

	tranMercACoeff [8]float64
	tranMercBCoeff [8]float64

	tranMercOriginLat     float64 // Latitude of origin in radians
	tranMercOriginLong    float64 // Longitude of origin in radians
	tranMercFalseNorthing float64
	tranMercFalseEasting  float64
	tranMercScaleFactor   float64

	// offsets of the natural origin, non-zero when the origin latitude is
	originEasting  float64
	originNorthing float64

	// Maximum variance for easting and northing values
	tranMercDeltaEasting  float64
	tranMercDeltaNorthing float64
}

// NewTransverseMercator constructs a new TransverseMercator converter.
func NewTransverseMercator(ellipsoid Ellipsoid, centralMeridian, latitudeOfOrigin s1.Angle,
	falseEasting, falseNorthing, scaleFactor float64) (*TransverseMercator, error) {
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0

	lon := centralMeridian.Radians()
	lat := latitudeOfOrigin.Radians()
	invFlattening := 1.0 / ellipsoid.Flattening

	if err := ellipsoid.Validate(); err != nil {
		return nil, err
	}
	if (lat < -math.Pi/2) || (lat > math.Pi/2) {
		return nil, errors.New("latitudeOfOrigin out of range")
	}
	if (lon < -math.Pi) || (lon > (2 * math.Pi)) {
		return nil, errors.New("centralMeridian out of range")
	}
	if (scaleFactor < minScaleFactor) || (scaleFactor > maxScaleFactor) {
		return nil, errors.New("scale factor out of range")
	}
	if lon > math.Pi {
		lon -= (2 * math.Pi)
	}

	t := &TransverseMercator{
		ellipsoid:             ellipsoid,
		tranMercEps:           ellipsoid.Eccentricity(),
		tranMercOriginLong:    lon,
		tranMercOriginLat:     lat,
		tranMercFalseEasting:  falseEasting,
		tranMercFalseNorthing: falseNorthing,
		tranMercScaleFactor:   scaleFactor,
		tranMercDeltaEasting:  20000000.0,
		tranMercDeltaNorthing: 10000000.0,
	}

	r4oa := generateCoefficients(invFlattening, t.tranMercACoeff[:], t.tranMercBCoeff[:])
	t.tranMercK0R4 = r4oa * t.tranMercScaleFactor * ellipsoid.SemiMajorAxis
	t.tranMercK0R4inv = 1.0 / t.tranMercK0R4

	if err := t.latLonToNorthingEasting(t.tranMercOriginLat, t.tranMercOriginLong,
		&t.originNorthing, &t.originEasting); err != nil {
		return nil, err
	}
	return t, nil
}

// CentralMeridian returns the longitude of the natural origin.
func (t *TransverseMercator) CentralMeridian() s1.Angle {
	return s1.Angle(t.tranMercOriginLong)
}

// generateCoefficients fills the Krüger series coefficients for the given
// inverse flattening and returns R4/a, the meridional isoperimetric radius
// over the semi-major axis.
//
// aCoeff holds omega (rectifying latitude) as a trig series in chi
// (conformal latitude), bCoeff the reverse. Both depend only on the shape of
// the ellipsoid through Helmert's n = (a - b)/(a + b).
func generateCoefficients(invfla float64, aCoeff, bCoeff []float64) float64 {
	n1 := 1.0 / (2*invfla - 1.0)

	n2 := n1 * n1
	n3 := n2 * n1
	n4 := n3 * n1
	n5 := n4 * n1
	n6 := n5 * n1
	n7 := n6 * n1
	n8 := n7 * n1
	n10 := n8 * n2

	// a2 .. a16
	aCoeff[0] = (-18975107.0)*n8/50803200.0 + (72161.0)*n7/387072.0 +
		(7891.0)*n6/37800.0 + (-127.0)*n5/288.0 + (41.0)*n4/180.0 +
		(5.0)*n3/16.0 + (-2.0)*n2/3.0 + (1.0)*n1/2.0
	aCoeff[1] = (148003883.0)*n8/174182400.0 + (13769.0)*n7/28800.0 +
		(-1983433.0)*n6/1935360.0 + (281.0)*n5/630.0 + (557.0)*n4/1440.0 +
		(-3.0)*n3/5.0 + (13.0)*n2/48.0
	aCoeff[2] = (79682431.0)*n8/79833600.0 + (-67102379.0)*n7/29030400.0 +
		(167603.0)*n6/181440.0 + (15061.0)*n5/26880.0 + (-103.0)*n4/140.0 +
		(61.0)*n3/240.0
	aCoeff[3] = (-40176129013.0)*n8/7664025600.0 + (97445.0)*n7/49896.0 +
		(6601661.0)*n6/7257600.0 + (-179.0)*n5/168.0 + (49561.0)*n4/161280.0
	aCoeff[4] = (2605413599.0)*n8/622702080.0 + (14644087.0)*n7/9123840.0 +
		(-3418889.0)*n6/1995840.0 + (34729.0)*n5/80640.0
	aCoeff[5] = (175214326799.0)*n8/58118860800.0 + (-30705481.0)*n7/10378368.0 +
		(212378941.0)*n6/319334400.0
	aCoeff[6] = (-16759934899.0)*n8/3113510400.0 + (1522256789.0)*n7/1383782400.0
	aCoeff[7] = (1424729850961.0) * n8 / 743921418240.0

	// b2 .. b16
	bCoeff[0] = (-7944359.0)*n8/67737600.0 + (5406467.0)*n7/38707200.0 +
		(-96199.0)*n6/604800.0 + (81.0)*n5/512.0 + (1.0)*n4/360.0 +
		(-37.0)*n3/96.0 + (2.0)*n2/3.0 + (-1.0)*n1/2.0
	bCoeff[1] = (-24749483.0)*n8/348364800.0 + (-51841.0)*n7/1209600.0 +
		(1118711.0)*n6/3870720.0 + (-46.0)*n5/105.0 + (437.0)*n4/1440.0 +
		(-1.0)*n3/15.0 + (-1.0)*n2/48.0
	bCoeff[2] = (6457463.0)*n8/17740800.0 + (-9261899.0)*n7/58060800.0 +
		(-5569.0)*n6/90720.0 + (209.0)*n5/4480.0 + (37.0)*n4/840.0 +
		(-17.0)*n3/480.0
	bCoeff[3] = (-324154477.0)*n8/7664025600.0 + (-466511.0)*n7/2494800.0 +
		(830251.0)*n6/7257600.0 + (11.0)*n5/504.0 + (-4397.0)*n4/161280.0
	bCoeff[4] = (-22894433.0)*n8/124540416.0 + (8005831.0)*n7/63866880.0 +
		(108847.0)*n6/3991680.0 + (-4583.0)*n5/161280.0
	bCoeff[5] = (2204645983.0)*n8/12915302400.0 + (16363163.0)*n7/518918400.0 +
		(-20648693.0)*n6/638668800.0
	bCoeff[6] = (497323811.0)*n8/12454041600.0 + (-219941297.0)*n7/5535129600.0
	bCoeff[7] = (-191773887257.0) * n8 / 3719607091200.0

	coeff := 1 + n2/4 + n4/64 + n6/256 + 25*n8/16384.0 + 49*n10/65536.0
	return coeff / (1 + n1)
}

func (t *TransverseMercator) checkLatLon(latitude, deltaLon float64) error {
	// test is based on distance from central meridian = deltaLon
	if deltaLon > math.Pi {
		deltaLon -= (2 * math.Pi)
	}
	if deltaLon < -math.Pi {
		deltaLon += (2 * math.Pi)
	}

	testAngle := math.Abs(deltaLon)
	testAngle = math.Min(testAngle, math.Abs(deltaLon-math.Pi))
	testAngle = math.Min(testAngle, math.Abs(deltaLon+math.Pi))

	// Away from the equator, is also valid
	testAngle = math.Min(testAngle, math.Pi/2-latitude)
	testAngle = math.Min(testAngle, math.Pi/2+latitude)

	const maxDeltaLong = ((math.Pi * 70) / 180.0)
	if testAngle > maxDeltaLong {
		return errors.New("longitude out of range")
	}
	return nil
}

func (t *TransverseMercator) latLonToNorthingEasting(latitude, longitude float64, northing, easting *float64) error {
	lambda := math.Remainder(longitude-t.tranMercOriginLong, 2*math.Pi)
	if err := t.checkLatLon(latitude, lambda); err != nil {
		return err
	}

	cosLam := math.Cos(lambda)
	sinLam := math.Sin(lambda)
	cosPhi := math.Cos(latitude)
	sinPhi := math.Sin(latitude)

	var c2ku, s2ku [8]float64
	var c2kv, s2kv [8]float64

	// Geodetic latitude to conformal latitude; only its cosine and sine are needed.
	P := math.Exp(t.tranMercEps * math.Atanh(t.tranMercEps*sinPhi))
	part1 := (1 + sinPhi) / P
	part2 := (1 - sinPhi) * P
	denom := part1 + part2
	cosChi := 2 * cosPhi / denom
	sinChi := (part1 - part2) / denom

	// Spherical transverse Mercator on the conformal sphere
	U := math.Atanh(cosChi * sinLam)
	V := math.Atan2(sinChi, cosChi*cosLam)

	computeHyperbolicSeries(2.0*U, c2ku[:], s2ku[:])
	computeTrigSeries(2.0*V, c2kv[:], s2kv[:])

	xStar := 0.0
	yStar := 0.0
	for k := nTerms - 1; k >= 0; k-- {
		xStar += t.tranMercACoeff[k] * s2ku[k] * c2kv[k]
		yStar += t.tranMercACoeff[k] * c2ku[k] * s2kv[k]
	}
	xStar += U
	yStar += V

	*easting = t.tranMercK0R4 * xStar
	*northing = t.tranMercK0R4 * yStar
	return nil
}

// ConvertFromGeodetic converts geodetic coordinates to Transverse Mercator
// easting and northing.
func (t *TransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	longitude := geodeticCoordinates.Lng.Radians()
	latitude := geodeticCoordinates.Lat.Radians()

	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return MapCoords{}, errors.New("coordinate is not a number")
	}
	if math.Abs(latitude) > math.Pi/2 {
		return MapCoords{}, errors.New("latitude out of range")
	}

	var easting, northing float64
	if err := t.latLonToNorthingEasting(latitude, longitude, &northing, &easting); err != nil {
		return MapCoords{}, err
	}

	easting += t.tranMercFalseEasting - t.originEasting
	northing += t.tranMercFalseNorthing - t.originNorthing

	return MapCoords{
		Easting:  easting,
		Northing: northing,
	}, nil
}

// ConvertToGeodetic converts Transverse Mercator easting and northing to
// geodetic coordinates.
func (t *TransverseMercator) ConvertToGeodetic(mapProjectionCoordinates MapCoords) (s2.LatLng, error) {
	easting := mapProjectionCoordinates.Easting
	northing := mapProjectionCoordinates.Northing

	if math.IsNaN(easting) || math.IsNaN(northing) {
		return s2.LatLng{}, errors.New("coordinate is not a number")
	}
	if (easting < (t.tranMercFalseEasting - t.tranMercDeltaEasting)) ||
		(easting > (t.tranMercFalseEasting + t.tranMercDeltaEasting)) {
		return s2.LatLng{}, errors.New("easting out of range")
	}
	if (northing < (t.tranMercFalseNorthing - t.tranMercDeltaNorthing)) ||
		(northing > (t.tranMercFalseNorthing + t.tranMercDeltaNorthing)) {
		return s2.LatLng{}, errors.New("northing out of range")
	}

	easting -= (t.tranMercFalseEasting - t.originEasting)
	northing -= (t.tranMercFalseNorthing - t.originNorthing)

	var longitude, latitude float64
	t.northingEastingToLatLon(northing, easting, &latitude, &longitude)

	longitude = math.Remainder(longitude, 2*math.Pi)
	if math.Abs(latitude) > math.Pi/2 {
		return s2.LatLng{}, errors.New("northing out of range")
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

func (t *TransverseMercator) northingEastingToLatLon(northing, easting float64,
	latitude, longitude *float64) {
	var c2kx, s2kx, c2ky, s2ky [8]float64

	// Undo scale change and factor R4
	xStar := t.tranMercK0R4inv * easting
	yStar := t.tranMercK0R4inv * northing

	computeHyperbolicSeries(2.0*xStar, c2kx[:], s2kx[:])
	computeTrigSeries(2.0*yStar, c2ky[:], s2ky[:])

	// Second plane (x*, y*) to first plane (u, v)
	U := 0.0
	V := 0.0
	for k := nTerms - 1; k >= 0; k-- {
		U += t.tranMercBCoeff[k] * s2kx[k] * c2ky[k]
		V += t.tranMercBCoeff[k] * c2kx[k] * s2ky[k]
	}
	U += xStar
	V += yStar

	// First plane to sphere
	coshU := math.Cosh(U)
	sinhU := math.Sinh(U)
	cosV := math.Cos(V)
	sinV := math.Sin(V)

	var lambda float64
	if (math.Abs(cosV) < 10e-12) && (math.Abs(coshU) < 10e-12) {
		lambda = 0
	} else {
		lambda = math.Atan2(sinhU, cosV)
	}

	sinChi := sinV / coshU
	*latitude = geodeticLat(sinChi, t.tranMercEps)
	*longitude = t.tranMercOriginLong + lambda
}

// geodeticLat recovers geodetic latitude from the sine of conformal latitude.
func geodeticLat(sinChi, e float64) float64 {
	sOld := 1.0e99
	s := sinChi
	onePlusSinChi := 1.0 + sinChi
	oneMinusSinChi := 1.0 - sinChi

	for n := 0; n < 30; n++ {
		p := math.Exp(e * math.Atanh(e*s))
		pSq := p * p
		s = (onePlusSinChi*pSq - oneMinusSinChi) /
			(onePlusSinChi*pSq + oneMinusSinChi)

		if math.Abs(s-sOld) < 1.0e-12 {
			break
		}
		sOld = s
	}
	return math.Asin(s)
}

// computeHyperbolicSeries fills c2kx[k] = cosh(2(k+1)X), s2kx[k] = sinh(2(k+1)X).
func computeHyperbolicSeries(twoX float64, c2kx, s2kx []float64) {
	c2kx[0] = math.Cosh(twoX)
	s2kx[0] = math.Sinh(twoX)
	c2kx[1] = 2.0*c2kx[0]*c2kx[0] - 1.0
	s2kx[1] = 2.0 * c2kx[0] * s2kx[0]
	c2kx[2] = c2kx[0]*c2kx[1] + s2kx[0]*s2kx[1]
	s2kx[2] = c2kx[1]*s2kx[0] + c2kx[0]*s2kx[1]
	c2kx[3] = 2.0*c2kx[1]*c2kx[1] - 1.0
	s2kx[3] = 2.0 * c2kx[1] * s2kx[1]
	c2kx[4] = c2kx[0]*c2kx[3] + s2kx[0]*s2kx[3]
	s2kx[4] = c2kx[3]*s2kx[0] + c2kx[0]*s2kx[3]
	c2kx[5] = 2.0*c2kx[2]*c2kx[2] - 1.0
	s2kx[5] = 2.0 * c2kx[2] * s2kx[2]
	c2kx[6] = c2kx[0]*c2kx[5] + s2kx[0]*s2kx[5]
	s2kx[6] = c2kx[5]*s2kx[0] + c2kx[0]*s2kx[5]
	c2kx[7] = 2.0*c2kx[3]*c2kx[3] - 1.0
	s2kx[7] = 2.0 * c2kx[3] * s2kx[3]
}

// computeTrigSeries fills c2ky[k] = cos(2(k+1)Y), s2ky[k] = sin(2(k+1)Y).
func computeTrigSeries(twoY float64, c2ky, s2ky []float64) {
	c2ky[0] = math.Cos(twoY)
	s2ky[0] = math.Sin(twoY)
	c2ky[1] = 2.0*c2ky[0]*c2ky[0] - 1.0
	s2ky[1] = 2.0 * c2ky[0] * s2ky[0]
	c2ky[2] = c2ky[1]*c2ky[0] - s2ky[1]*s2ky[0]
	s2ky[2] = c2ky[1]*s2ky[0] + c2ky[0]*s2ky[1]
	c2ky[3] = 2.0*c2ky[1]*c2ky[1] - 1.0
	s2ky[3] = 2.0 * c2ky[1] * s2ky[1]
	c2ky[4] = c2ky[3]*c2ky[0] - s2ky[3]*s2ky[0]
	s2ky[4] = c2ky[3]*s2ky[0] + c2ky[0]*s2ky[3]
	c2ky[5] = 2.0*c2ky[2]*c2ky[2] - 1.0
	s2ky[5] = 2.0 * c2ky[2] * s2ky[2]
	c2ky[6] = c2ky[5]*c2ky[0] - s2ky[5]*s2ky[0]
	s2ky[6] = c2ky[5]*s2ky[0] + c2ky[0]*s2ky[5]
	c2ky[7] = 2.0*c2ky[3]*c2ky[3] - 1.0
	s2ky[7] = 2.0 * c2ky[3] * s2ky[3]
}
