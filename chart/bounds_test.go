package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chartscope/dataset"
)

func TestBoundsOfMonotonicSeries(t *testing.T) {
	up := []*dataset.Series{{Name: "up", Data: []float64{1, 2, 3, 4, 5}, Visible: true}}
	down := []*dataset.Series{{Name: "down", Data: []float64{5, 4, 3, 2, 1}, Visible: true}}

	assert.Equal(t, Bounds{Min: 2, Max: 5}, detailedBounds(up, Window{Left: 1, Right: 4}))
	assert.Equal(t, Bounds{Min: 1, Max: 4}, detailedBounds(down, Window{Left: 1, Right: 4}))
}

func TestBoundsInvariant(t *testing.T) {
	ds := testDataset()
	for left := 1; left < 9; left++ {
		for right := left + 1; right <= 9; right++ {
			b := detailedBounds(ds.Series, Window{Left: left, Right: right})
			assert.LessOrEqual(t, b.Min, b.Max, "[%d,%d]", left, right)
			for _, s := range ds.Series {
				for _, v := range s.Data[left : right+1] {
					assert.GreaterOrEqual(t, v, b.Min)
					assert.LessOrEqual(t, v, b.Max)
				}
			}
		}
	}
}

func TestBoundsSkipHiddenSeries(t *testing.T) {
	ds := testDataset()
	y1, _ := ds.Lookup("y1")
	y1.Visible = false

	assert.Equal(t, Bounds{Min: 8, Max: 40}, detailedBounds(ds.Series, Window{Left: 2, Right: 8}))

	for _, s := range ds.Series {
		s.Visible = false
	}
	b := detailedBounds(ds.Series, Window{Left: 2, Right: 8})
	assert.True(t, b.Empty())
}

func TestOverviewBoundsExcludeRight(t *testing.T) {
	series := []*dataset.Series{{Name: "s", Data: []float64{3, 1, 2, 99}, Visible: true}}

	assert.Equal(t, Bounds{Min: 1, Max: 3}, overviewBounds(series, Window{Left: 0, Right: 3}))
	assert.Equal(t, Bounds{Min: 1, Max: 99}, detailedBounds(series, Window{Left: 0, Right: 3}))
}

func TestNormalizeWindow(t *testing.T) {
	cases := []struct {
		in   Window
		n    int
		want Window
	}{
		{Window{2, 5}, 10, Window{2, 5}},
		{Window{-4, 50}, 10, Window{1, 9}},
		{Window{6, 6}, 10, Window{6, 7}},
		{Window{9, 9}, 10, Window{8, 9}},
		{Window{0, 0}, 2, Window{0, 1}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.normalize(c.n), "%+v n=%d", c.in, c.n)
	}
}

func TestScanBoundsFirstSampleSetsBoth(t *testing.T) {
	rising := []*dataset.Series{{Name: "r", Data: []float64{1, 5, 9}, Visible: true}}
	assert.Equal(t, Bounds{Min: 1, Max: 9}, scanBounds(rising, 0, 3))

	single := []*dataset.Series{{Name: "s", Data: []float64{4}, Visible: true}}
	assert.Equal(t, Bounds{Min: 4, Max: 4}, scanBounds(single, 0, 1))
}
