package coordconv

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
)

// EPSG codes used by the conversion helpers.
const (
	EPSGWGS84     = 4326
	EPSGPS71South = 3031
)

type crsFactory func() (*CRS, error)

// registry maps EPSG codes to constructors. It is filled once in init and
// read-only afterwards; every lookup builds a fresh CRS.
var registry = map[int]crsFactory{}

func register(code int, factory crsFactory) {
	if _, ok := registry[code]; ok {
		panic(fmt.Sprintf("EPSG:%d registered twice", code))
	}
	registry[code] = factory
}

func registerPolarStereographic(code int, name string, centralMeridian, standardParallel float64, falseEasting, falseNorthing float64) {
	register(code, func() (*CRS, error) {
		p, err := NewPolarStereographic(WGS84, s1.Angle(centralMeridian)*s1.Degree,
			s1.Angle(standardParallel)*s1.Degree, falseEasting, falseNorthing)
		if err != nil {
			return nil, err
		}
		return NewProjectedCRS(code, name, WGS84, p)
	})
}

func init() {
	register(EPSGWGS84, func() (*CRS, error) {
		return NewGeographicCRS(EPSGWGS84, "WGS 84", WGS84)
	})

	registerPolarStereographic(EPSGPS71South, "WGS 84 / Antarctic Polar Stereographic", 0, -71, 0, 0)
	registerPolarStereographic(3032, "WGS 84 / Australian Antarctic Polar Stereographic", 70, -71, 6000000, 6000000)
	registerPolarStereographic(3976, "WGS 84 / NSIDC Sea Ice Polar Stereographic South", 0, -70, 0, 0)
	registerPolarStereographic(3413, "WGS 84 / NSIDC Sea Ice Polar Stereographic North", -45, 70, 0, 0)

	for zone := 1; zone <= 60; zone++ {
		for _, hemisphere := range []Hemisphere{HemisphereNorth, HemisphereSouth} {
			code := UTMEPSGCode(zone, hemisphere)
			name := fmt.Sprintf("WGS 84 / UTM zone %d%s", zone, hemisphere)
			register(code, func() (*CRS, error) {
				u, err := NewUTMZone(WGS84, zone, hemisphere)
				if err != nil {
					return nil, err
				}
				return NewProjectedCRS(code, name, WGS84, u)
			})
		}
	}

	register(32661, func() (*CRS, error) {
		p, err := NewUPS(WGS84, HemisphereNorth)
		if err != nil {
			return nil, err
		}
		return NewProjectedCRS(32661, "WGS 84 / UPS North (N,E)", WGS84, p)
	})
	register(32761, func() (*CRS, error) {
		p, err := NewUPS(WGS84, HemisphereSouth)
		if err != nil {
			return nil, err
		}
		return NewProjectedCRS(32761, "WGS 84 / UPS South (N,E)", WGS84, p)
	})
}

// UTMEPSGCode returns the WGS 84 UTM EPSG code for a zone: 326zz in the
// north, 327zz in the south.
func UTMEPSGCode(zone int, hemisphere Hemisphere) int {
	if hemisphere == HemisphereSouth {
		return 32700 + zone
	}
	return 32600 + zone
}

// LookupCRS resolves an EPSG code.
func LookupCRS(code int) (*CRS, error) {
	factory, ok := registry[code]
	if !ok {
		return nil, &UnknownCRSError{Code: code}
	}
	crs, err := factory()
	if err != nil {
		return nil, fmt.Errorf("EPSG:%d: %w", code, err)
	}
	return crs, nil
}

// ParseCRS resolves "EPSG:3031", "epsg:3031" or a bare "3031".
func ParseCRS(s string) (*CRS, error) {
	text := strings.TrimSpace(s)
	if len(text) > 5 && strings.EqualFold(text[:5], "EPSG:") {
		text = text[5:]
	}
	code, err := strconv.Atoi(text)
	if err != nil {
		return nil, &UnknownCRSError{Input: s}
	}
	return LookupCRS(code)
}

// Codes lists the registered EPSG codes in ascending order.
func Codes() []int {
	return slices.Sorted(maps.Keys(registry))
}
