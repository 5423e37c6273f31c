package pointio

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		wantX []float64
		wantY []float64
	}{
		{
			name:  "comma separated",
			input: "166.676,-77.846\n0,-90\n",
			wantX: []float64{166.676, 0},
			wantY: []float64{-77.846, -90},
		},
		{
			name:  "whitespace separated",
			input: "305433.405 -1289661.03\n\t1e5\t-2.5e5\n",
			wantX: []float64{305433.405, 1e5},
			wantY: []float64{-1289661.03, -2.5e5},
		},
		{
			name:  "comma and space",
			input: "10, -80\n20 ,-70\n",
			wantX: []float64{10, 20},
			wantY: []float64{-80, -70},
		},
		{
			name:  "header comments and blank lines",
			input: "lon,lat\n# McMurdo\n\n166.676,-77.846\n   \n# pole\n0,-90\n",
			wantX: []float64{166.676, 0},
			wantY: []float64{-77.846, -90},
		},
		{
			name:  "crlf line endings",
			input: "x;y\r\n1;2\r\n",
			wantX: []float64{1},
			wantY: []float64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pairs, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantX, pairs.X)
			assert.Equal(t, tt.wantY, pairs.Y)
			assert.Equal(t, len(tt.wantX), pairs.Len())
		})
	}
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()

	pairs, err := Read(strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	assert.Zero(t, pairs.Len())
}

func TestReadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine string
	}{
		{name: "single value", input: "1,2\n3\n", wantLine: "line 2"},
		{name: "three values", input: "1,2\n3,4,5\n", wantLine: "line 2"},
		{name: "bad number after header", input: "x,y\n1,2\nfoo,4\n", wantLine: "line 3"},
		{name: "bad second value", input: "1,2\n\n3,bar\n", wantLine: "line 3"},
		{name: "typo in first data line", input: "166.676,-77.8x6\n0,-90\n", wantLine: "line 1"},
		{name: "typo in first line after comments", input: "# points\n\n1x,-80\n", wantLine: "line 3"},
		{name: "single number first line", input: "42\n1,2\n", wantLine: "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformedLine)
			assert.Contains(t, err.Error(), tt.wantLine)
		})
	}
}

func TestReadSourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Read(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}
