package dataset_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartscope/dataset"
)

const sample = `{
  "columns": [
    ["x", 1542412800000, 1542499200000, 1542585600000, 1542672000000],
    ["y0", 37, 20, 32, 39],
    ["y1", 22, 12, 30, 40]
  ],
  "types": {"y0": "line", "y1": "line", "x": "x"},
  "names": {"y0": "#0", "y1": "#1"},
  "colors": {"y0": "#3DC23F", "y1": "#F34C44"}
}`

func TestParse(t *testing.T) {
	ds, err := dataset.Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 4, ds.Len())
	require.Len(t, ds.Series, 2)

	y0, ok := ds.Lookup("y0")
	require.True(t, ok)
	assert.Equal(t, "#0", y0.Title)
	assert.Equal(t, []float64{37, 20, 32, 39}, y0.Data)
	assert.Equal(t, color.NRGBA{R: 0x3d, G: 0xc2, B: 0x3f, A: 0xff}, y0.Color)
	assert.True(t, y0.Visible)
	assert.Equal(t, int64(1542412800000), ds.X[0])
}

func TestParseWithoutTypesUsesUnnamedColumnAsXAxis(t *testing.T) {
	ds, err := dataset.Parse([]byte(`{
	  "columns": [["y0", 1, 2], ["t", 10, 20]],
	  "names": {"y0": "Zero"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, ds.X)
	require.Len(t, ds.Series, 1)
	assert.Equal(t, "Zero", ds.Series[0].Title)
	// no color declared: falls back to the palette
	assert.NotNil(t, ds.Series[0].Color)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"no x axis": {
			in:   `{"columns": [["y0", 1, 2]], "types": {"y0": "line"}}`,
			want: dataset.ErrNoXAxis,
		},
		"length mismatch": {
			in:   `{"columns": [["x", 1, 2, 3], ["y0", 1, 2]], "types": {"x": "x", "y0": "line"}}`,
			want: dataset.ErrLengthMismatch,
		},
		"empty column": {
			in:   `{"columns": [["x"], ["y0", 1]], "types": {"x": "x", "y0": "line"}}`,
			want: dataset.ErrEmptyColumn,
		},
		"no series": {
			in:   `{"columns": [["x", 1, 2]], "types": {"x": "x"}}`,
			want: dataset.ErrNoSeries,
		},
		"one sample": {
			in:   `{"columns": [["x", 1], ["y0", 1]], "types": {"x": "x", "y0": "line"}}`,
			want: dataset.ErrTooFewSamples,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Parse([]byte(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dataset.Parse([]byte(`{not json`))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestIndexOf(t *testing.T) {
	ds := dataset.New([]int64{100, 200, 300, 400},
		&dataset.Series{Name: "y0", Data: []float64{1, 2, 3, 4}})

	assert.Equal(t, 0, ds.IndexOf(50))
	assert.Equal(t, 0, ds.IndexOf(100))
	assert.Equal(t, 1, ds.IndexOf(250))
	assert.Equal(t, 3, ds.IndexOf(10_000))
}

func TestParseColor(t *testing.T) {
	c, ok := dataset.ParseColor("#fff")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	c, ok = dataset.ParseColor("#10203040")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	_, ok = dataset.ParseColor("tomato")
	assert.True(t, ok)

	_, ok = dataset.ParseColor("#12345")
	assert.False(t, ok)
	_, ok = dataset.ParseColor("")
	assert.False(t, ok)
}

func TestDefaultColorIsStable(t *testing.T) {
	assert.Equal(t, dataset.DefaultColor("y0"), dataset.DefaultColor("y0"))
}
