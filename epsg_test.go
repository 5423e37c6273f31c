package coordconv_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swot-tools/coordconv"
)

func TestLookupCRS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code       int
		name       string
		geographic bool
	}{
		{code: 4326, name: "WGS 84", geographic: true},
		{code: 3031, name: "WGS 84 / Antarctic Polar Stereographic"},
		{code: 3032, name: "WGS 84 / Australian Antarctic Polar Stereographic"},
		{code: 3413, name: "WGS 84 / NSIDC Sea Ice Polar Stereographic North"},
		{code: 3976, name: "WGS 84 / NSIDC Sea Ice Polar Stereographic South"},
		{code: 32601, name: "WGS 84 / UTM zone 1N"},
		{code: 32660, name: "WGS 84 / UTM zone 60N"},
		{code: 32713, name: "WGS 84 / UTM zone 13S"},
		{code: 32760, name: "WGS 84 / UTM zone 60S"},
		{code: 32661, name: "WGS 84 / UPS North (N,E)"},
		{code: 32761, name: "WGS 84 / UPS South (N,E)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			crs, err := coordconv.LookupCRS(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.code, crs.Code)
			assert.Equal(t, tt.name, crs.Name)
			assert.Equal(t, tt.geographic, crs.IsGeographic())
			assert.Equal(t, coordconv.WGS84, crs.Ellipsoid)
			if tt.geographic {
				assert.Nil(t, crs.Projection())
			} else {
				assert.NotNil(t, crs.Projection())
			}
		})
	}
}

func TestLookupCRSBuildsFreshValues(t *testing.T) {
	t.Parallel()

	a, err := coordconv.LookupCRS(3031)
	require.NoError(t, err)
	b, err := coordconv.LookupCRS(3031)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestLookupCRSUnknown(t *testing.T) {
	t.Parallel()

	for _, code := range []int{0, 99999, 32600, 32661 + 1, 32700, 32761 + 1, 4258} {
		_, err := coordconv.LookupCRS(code)
		require.ErrorIs(t, err, coordconv.ErrUnknownCRS, "EPSG:%d", code)

		var ue *coordconv.UnknownCRSError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, code, ue.Code)
	}
}

func TestParseCRS(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"EPSG:3031", "epsg:3031", "3031", " EPSG:3031 "} {
		crs, err := coordconv.ParseCRS(s)
		require.NoError(t, err, s)
		assert.Equal(t, 3031, crs.Code)
		assert.Equal(t, "EPSG:3031", crs.String())
	}

	for _, s := range []string{"", "EPSG:", "ps71", "EPSG:abc", "EPSG:99999"} {
		_, err := coordconv.ParseCRS(s)
		require.ErrorIs(t, err, coordconv.ErrUnknownCRS, s)
	}

	_, err := coordconv.ParseCRS("ps71")
	assert.EqualError(t, err, `unknown CRS "ps71"`)
}

func TestCodes(t *testing.T) {
	t.Parallel()

	codes := coordconv.Codes()
	// 4326, four polar stereographic systems, 120 UTM zones, two UPS systems
	assert.Len(t, codes, 127)
	assert.IsIncreasing(t, codes)
	assert.Contains(t, codes, coordconv.EPSGWGS84)
	assert.Contains(t, codes, coordconv.EPSGPS71South)
}

func TestUTMEPSGCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 32613, coordconv.UTMEPSGCode(13, coordconv.HemisphereNorth))
	assert.Equal(t, 32713, coordconv.UTMEPSGCode(13, coordconv.HemisphereSouth))
}
