package coordconv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swot-tools/coordconv"
)

// McMurdo Station, 77.846 S 166.676 E.
const (
	mcmurdoLon  = 166.676
	mcmurdoLat  = -77.846
	mcmurdoX    = 305433.405
	mcmurdoY    = -1289661.030
	mcmurdoUTMX = 539386.134
	mcmurdoUTMY = 1358253.613
	utm58South  = 32758
)

func TestLLToXYRoundTrip(t *testing.T) {
	t.Parallel()

	for lon := -179.5; lon < 180; lon += 7.5 {
		for _, lat := range []float64{-0.01, -1, -15.5, -45, -60, -71, -80.25, -89, -89.99} {
			x, y, err := coordconv.LLToXY(lon, lat)
			require.NoError(t, err)

			lon2, lat2, err := coordconv.XYToLL(x, y)
			require.NoError(t, err)
			assert.InDelta(t, lon, lon2, 1e-6, "lon at %f %f", lon, lat)
			assert.InDelta(t, lat, lat2, 1e-6, "lat at %f %f", lon, lat)
		}
	}
}

func TestUTMToPS71RoundTrip(t *testing.T) {
	t.Parallel()

	for _, code := range []int{32713, 32758, 32721, 32701} {
		for utmX := 300000.0; utmX <= 700000; utmX += 100000 {
			for utmY := 1200000.0; utmY <= 2400000; utmY += 200000 {
				x, y, err := coordconv.UTMToPS71(utmX, utmY, code)
				require.NoError(t, err)
				require.False(t, math.IsInf(x, 0), "EPSG:%d %f %f", code, utmX, utmY)

				utmX2, utmY2, err := coordconv.PS71ToUTM(x, y, code)
				require.NoError(t, err)
				assert.InDelta(t, utmX, utmX2, 1e-3, "EPSG:%d %f %f", code, utmX, utmY)
				assert.InDelta(t, utmY, utmY2, 1e-3, "EPSG:%d %f %f", code, utmX, utmY)
			}
		}
	}
}

func TestSlicePreservesShapeAndOrder(t *testing.T) {
	t.Parallel()

	lon := []float64{-110, 0, 45, -150, 90}
	lat := []float64{-75, -60, -80, -85, -71}
	wantX := []float64{-1539952.516, 0, 770166.179, -271796.649, 2082760.109}
	wantY := []float64{-560496.878, 3333134.028, 770166.179, -470765.605, 0}

	x, y, err := coordconv.LLToXYSlice(lon, lat)
	require.NoError(t, err)
	require.Len(t, x, len(lon))
	require.Len(t, y, len(lat))
	for i := range lon {
		assert.InDelta(t, wantX[i], x[i], 1e-3, "x[%d]", i)
		assert.InDelta(t, wantY[i], y[i], 1e-3, "y[%d]", i)

		// each element matches its scalar conversion
		sx, sy, err := coordconv.LLToXY(lon[i], lat[i])
		require.NoError(t, err)
		assert.Equal(t, sx, x[i])
		assert.Equal(t, sy, y[i])
	}

	lon2, lat2, err := coordconv.XYToLLSlice(x, y)
	require.NoError(t, err)
	require.Len(t, lon2, len(lon))
	require.Len(t, lat2, len(lat))
	assert.InDeltaSlice(t, lon, lon2, 1e-6)
	assert.InDeltaSlice(t, lat, lat2, 1e-6)

	utmX, utmY, err := coordconv.PS71ToUTMSlice(x, y, 32731)
	require.NoError(t, err)
	require.Len(t, utmX, len(lon))
	require.Len(t, utmY, len(lat))

	x2, y2, err := coordconv.UTMToPS71Slice(utmX, utmY, 32731)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x, x2, 1e-3)
	assert.InDeltaSlice(t, y, y2, 1e-3)
}

func TestSouthPole(t *testing.T) {
	t.Parallel()

	x, y, err := coordconv.LLToXY(0, -90)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	_, lat, err := coordconv.XYToLL(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -90, lat, 1e-9)
}

func TestAxisOrder(t *testing.T) {
	t.Parallel()

	// 90 E lies on the positive x axis, Greenwich on the positive y axis.
	x, y, err := coordconv.LLToXY(90, -71)
	require.NoError(t, err)
	assert.Greater(t, x, 2e6)
	assert.InDelta(t, 0, y, 1e-6)

	x, y, err = coordconv.LLToXY(0, -71)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-6)
	assert.Greater(t, y, 2e6)
}

func TestMcMurdoReference(t *testing.T) {
	t.Parallel()

	x, y, err := coordconv.LLToXY(mcmurdoLon, mcmurdoLat)
	require.NoError(t, err)
	assert.InDelta(t, mcmurdoX, x, 1e-2)
	assert.InDelta(t, mcmurdoY, y, 1e-2)

	lon, lat, err := coordconv.XYToLL(mcmurdoX, mcmurdoY)
	require.NoError(t, err)
	assert.InDelta(t, mcmurdoLon, lon, 1e-6)
	assert.InDelta(t, mcmurdoLat, lat, 1e-6)

	x, y, err = coordconv.UTMToPS71(mcmurdoUTMX, mcmurdoUTMY, utm58South)
	require.NoError(t, err)
	assert.InDelta(t, mcmurdoX, x, 1e-2)
	assert.InDelta(t, mcmurdoY, y, 1e-2)

	utmX, utmY, err := coordconv.PS71ToUTM(mcmurdoX, mcmurdoY, utm58South)
	require.NoError(t, err)
	assert.InDelta(t, mcmurdoUTMX, utmX, 1e-2)
	assert.InDelta(t, mcmurdoUTMY, utmY, 1e-2)
}

func TestUnknownUTMCode(t *testing.T) {
	t.Parallel()

	for _, code := range []int{0, 99999, -32713} {
		_, _, err := coordconv.UTMToPS71(500000, 1500000, code)
		require.ErrorIs(t, err, coordconv.ErrUnknownCRS, "EPSG:%d", code)

		_, _, err = coordconv.PS71ToUTM(0, 0, code)
		require.ErrorIs(t, err, coordconv.ErrUnknownCRS, "EPSG:%d", code)

		_, _, err = coordconv.UTMToPS71Slice([]float64{500000}, []float64{1500000}, code)
		require.ErrorIs(t, err, coordconv.ErrUnknownCRS, "EPSG:%d", code)

		_, _, err = coordconv.PS71ToUTMSlice([]float64{0}, []float64{0}, code)
		require.ErrorIs(t, err, coordconv.ErrUnknownCRS, "EPSG:%d", code)
	}
}

func TestSliceLengthMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := coordconv.LLToXYSlice([]float64{0, 10}, []float64{-80})
	require.ErrorIs(t, err, coordconv.ErrDataSizeMismatch)

	_, _, err = coordconv.XYToLLSlice([]float64{0}, nil)
	require.ErrorIs(t, err, coordconv.ErrDataSizeMismatch)

	_, _, err = coordconv.UTMToPS71Slice([]float64{500000}, []float64{1, 2, 3}, 32713)
	require.ErrorIs(t, err, coordconv.ErrDataSizeMismatch)

	_, _, err = coordconv.PS71ToUTMSlice(nil, []float64{0}, 32713)
	require.ErrorIs(t, err, coordconv.ErrDataSizeMismatch)
}

func TestEmptySlices(t *testing.T) {
	t.Parallel()

	x, y, err := coordconv.LLToXYSlice(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Empty(t, y)
}

func TestNorthernHemisphereHasAnImage(t *testing.T) {
	t.Parallel()

	for _, lat := range []float64{0, 0.5, 10, 45, 89} {
		x, y, err := coordconv.LLToXY(0, lat)
		require.NoError(t, err)
		require.False(t, math.IsInf(x, 0), "lat %f", lat)
		require.False(t, math.IsInf(y, 0), "lat %f", lat)
		assert.Greater(t, y, 1.2e7, "lat %f", lat)

		lon2, lat2, err := coordconv.XYToLL(x, y)
		require.NoError(t, err)
		assert.InDelta(t, 0, lon2, 1e-6, "lat %f", lat)
		assert.InDelta(t, lat, lat2, 1e-6, "lat %f", lat)
	}

	// just past the image of the equator lies about 2 degrees north
	lon, lat, err := coordconv.XYToLL(0, 1.3e7)
	require.NoError(t, err)
	assert.InDelta(t, 0, lon, 1e-9)
	assert.Greater(t, lat, 1.0)
	assert.Less(t, lat, 3.0)
}

func TestNorthPoleIsNotTransformable(t *testing.T) {
	t.Parallel()

	x, y, err := coordconv.LLToXY(0, 90)
	require.NoError(t, err)
	assert.True(t, math.IsInf(x, 1))
	assert.True(t, math.IsInf(y, 1))

	xs, ys, err := coordconv.LLToXYSlice([]float64{0, 0, 0}, []float64{-80, 90, 45})
	require.NoError(t, err)
	assert.False(t, math.IsInf(xs[0], 0))
	assert.True(t, math.IsInf(xs[1], 1))
	assert.True(t, math.IsInf(ys[1], 1))
	assert.False(t, math.IsInf(ys[2], 0))

	// sentinels propagate through the inverse
	lon, lat, err := coordconv.XYToLL(x, y)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lon, 1))
	assert.True(t, math.IsInf(lat, 1))
}
