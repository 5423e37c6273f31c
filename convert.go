package coordconv

// LLToXY converts geodetic longitude and latitude in degrees (EPSG:4326) to
// Antarctic Polar Stereographic x and y in meters (EPSG:3031).
func LLToXY(lon, lat float64) (x, y float64, err error) {
	t, err := NewTransformerFromEPSG(EPSGWGS84, EPSGPS71South)
	if err != nil {
		return 0, 0, err
	}
	return t.Transform(lon, lat)
}

// LLToXYSlice is the slice form of LLToXY.
func LLToXYSlice(lon, lat []float64) (x, y []float64, err error) {
	t, err := NewTransformerFromEPSG(EPSGWGS84, EPSGPS71South)
	if err != nil {
		return nil, nil, err
	}
	return t.TransformSlice(lon, lat)
}

// XYToLL converts Antarctic Polar Stereographic x and y in meters
// (EPSG:3031) to geodetic longitude and latitude in degrees (EPSG:4326).
func XYToLL(x, y float64) (lon, lat float64, err error) {
	t, err := NewTransformerFromEPSG(EPSGPS71South, EPSGWGS84)
	if err != nil {
		return 0, 0, err
	}
	return t.Transform(x, y)
}

// XYToLLSlice is the slice form of XYToLL.
func XYToLLSlice(x, y []float64) (lon, lat []float64, err error) {
	t, err := NewTransformerFromEPSG(EPSGPS71South, EPSGWGS84)
	if err != nil {
		return nil, nil, err
	}
	return t.TransformSlice(x, y)
}

// UTMToPS71 converts UTM easting and northing in the zone given by utmEPSG
// (for example 32713 for zone 13 south) to Antarctic Polar Stereographic x
// and y.
func UTMToPS71(utmX, utmY float64, utmEPSG int) (x, y float64, err error) {
	t, err := NewTransformerFromEPSG(utmEPSG, EPSGPS71South)
	if err != nil {
		return 0, 0, err
	}
	return t.Transform(utmX, utmY)
}

// UTMToPS71Slice is the slice form of UTMToPS71.
func UTMToPS71Slice(utmX, utmY []float64, utmEPSG int) (x, y []float64, err error) {
	t, err := NewTransformerFromEPSG(utmEPSG, EPSGPS71South)
	if err != nil {
		return nil, nil, err
	}
	return t.TransformSlice(utmX, utmY)
}

// PS71ToUTM converts Antarctic Polar Stereographic x and y to UTM easting and
// northing in the zone given by utmEPSG.
func PS71ToUTM(x, y float64, utmEPSG int) (utmX, utmY float64, err error) {
	t, err := NewTransformerFromEPSG(EPSGPS71South, utmEPSG)
	if err != nil {
		return 0, 0, err
	}
	return t.Transform(x, y)
}

// PS71ToUTMSlice is the slice form of PS71ToUTM.
func PS71ToUTMSlice(x, y []float64, utmEPSG int) (utmX, utmY []float64, err error) {
	t, err := NewTransformerFromEPSG(EPSGPS71South, utmEPSG)
	if err != nil {
		return nil, nil, err
	}
	return t.TransformSlice(x, y)
}
