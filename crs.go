package coordconv

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s2"
)

// CRSKind tells geographic (degrees) from projected (meters) systems apart.
type CRSKind int

// CRSKind constants
const (
	KindGeographic CRSKind = iota + 1
	KindProjected
)

// CRS is a resolved coordinate reference system. Coordinates are always
// exchanged easting-like first: (longitude, latitude) in degrees for a
// geographic CRS, (easting, northing) in meters for a projected one.
type CRS struct {
	Code      int // EPSG code, 0 for user defined systems
	Name      string
	Kind      CRSKind
	Ellipsoid Ellipsoid

	projection Projection
}

// NewGeographicCRS defines a longitude/latitude system on an ellipsoid.
func NewGeographicCRS(code int, name string, ellipsoid Ellipsoid) (*CRS, error) {
	if err := ellipsoid.Validate(); err != nil {
		return nil, err
	}
	return &CRS{Code: code, Name: name, Kind: KindGeographic, Ellipsoid: ellipsoid}, nil
}

// NewProjectedCRS defines a projected system. The projection must already be
// built on the given ellipsoid.
func NewProjectedCRS(code int, name string, ellipsoid Ellipsoid, projection Projection) (*CRS, error) {
	if projection == nil {
		return nil, errors.New("projected CRS requires a projection")
	}
	if err := ellipsoid.Validate(); err != nil {
		return nil, err
	}
	return &CRS{Code: code, Name: name, Kind: KindProjected, Ellipsoid: ellipsoid, projection: projection}, nil
}

// Projection returns the map projection of a projected CRS, nil for a
// geographic one.
func (c *CRS) Projection() Projection {
	return c.projection
}

// IsGeographic reports whether coordinates are longitude/latitude degrees.
func (c *CRS) IsGeographic() bool {
	return c.Kind == KindGeographic
}

func (c *CRS) String() string {
	if c.Code == 0 {
		return c.Name
	}
	return fmt.Sprintf("EPSG:%d", c.Code)
}

// toGeodetic reads an x-then-y coordinate of this CRS.
func (c *CRS) toGeodetic(x, y float64) (s2.LatLng, error) {
	if c.IsGeographic() {
		return s2.LatLngFromDegrees(y, x), nil
	}
	return c.projection.ConvertToGeodetic(MapCoords{Easting: x, Northing: y})
}

// fromGeodetic writes an x-then-y coordinate of this CRS.
func (c *CRS) fromGeodetic(geodeticCoordinates s2.LatLng) (float64, float64, error) {
	if c.IsGeographic() {
		return geodeticCoordinates.Lng.Degrees(), geodeticCoordinates.Lat.Degrees(), nil
	}
	mc, err := c.projection.ConvertFromGeodetic(geodeticCoordinates)
	if err != nil {
		return 0, 0, err
	}
	return mc.Easting, mc.Northing, nil
}
