package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartscope/event"
)

func newTestRenderer(t *testing.T) (*SeriesRenderer, *recCanvas, *Notifier, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	n := NewNotifier(0, clk.Now)
	s, c := newTestSurface(KindSeries, Padding{Top: 10, Bottom: 10}, 0.5, clk)
	s.Resize(90)
	r := NewSeriesRenderer(s, testDataset(), n, 2, 300*time.Millisecond)
	r.ChangeView(Window{Left: 0, Right: 9}, Bounds{Min: 0, Max: 100}, 0)
	s.Tick(clk.Now())
	return r, c, n, clk
}

func TestSeriesDrawsVisibleLines(t *testing.T) {
	r, c, _, _ := newTestRenderer(t)

	require.Equal(t, 2, c.count("polyline"))
	pts := c.ops[0].args
	assert.Len(t, pts, 20)
	f := r.frame()
	assert.InDelta(t, f.X(4), float64(pts[8]), 1e-4)
	assert.InDelta(t, f.Y(20), float64(pts[9]), 1e-4)
}

func TestSeriesFirstBoundsAreBaseline(t *testing.T) {
	r, _, _, _ := newTestRenderer(t)
	s := r.Surface()

	assert.Equal(t, 0.0, s.Get(PropMin))
	assert.Equal(t, 100.0, s.Get(PropMax))
	assert.False(t, s.Animating())

	r.ChangeBounds(0, 200, 300*time.Millisecond)
	assert.True(t, s.Animating())
	assert.Equal(t, 100.0, s.Get(PropMax))
}

func TestSeriesIgnoresInfiniteBounds(t *testing.T) {
	r, _, _, _ := newTestRenderer(t)
	b := emptyBounds()

	r.ChangeBounds(b.Min, b.Max, 0)
	assert.False(t, r.Surface().Animating())
}

func TestSeriesFadeSurvivesBoundsAnimation(t *testing.T) {
	r, c, _, clk := newTestRenderer(t)
	s := r.Surface()

	r.SetLineState("y1", false)
	s.Tick(clk.Advance(150 * time.Millisecond))
	assert.InDelta(t, 0.5, r.LineAlpha("y1"), 1e-9)

	r.ChangeBounds(0, 50, 300*time.Millisecond)
	s.Tick(clk.Advance(150 * time.Millisecond))
	assert.Equal(t, 0.0, r.LineAlpha("y1"), "fade completes on its own clock")

	for s.Tick(clk.Advance(100 * time.Millisecond)) {
	}
	assert.Equal(t, 1, c.count("polyline"))
	assert.Equal(t, 1.0, r.LineAlpha("y0"))
}

func TestSeriesFadeOutlivesShorterAnimation(t *testing.T) {
	r, _, _, clk := newTestRenderer(t)
	s := r.Surface()

	r.ChangeRange(2, 8)
	r.SetLineState("y1", false)
	require.True(t, s.Tick(clk.Advance(100*time.Millisecond)))
	assert.True(t, s.Animating(), "draw keeps the surface ticking while y1 fades")
	assert.InDelta(t, 2.0/3, r.LineAlpha("y1"), 1e-9)

	s.Tick(clk.Advance(200 * time.Millisecond))
	assert.Equal(t, 0.0, r.LineAlpha("y1"))
	assert.False(t, s.Animating())
}

func TestSeriesHoverPublishesDetails(t *testing.T) {
	r, _, n, _ := newTestRenderer(t)
	var got []event.Details
	n.Subscribe(event.ToggleDetails, func(p any) { got = append(got, p.(event.Details)) })

	f := r.frame()
	r.MouseMove(f.X(4)+3, false)
	require.Len(t, got, 1)
	d := got[0]
	assert.True(t, d.Show)
	assert.Equal(t, 4, d.Index)
	assert.Equal(t, f.X(4), d.X)
	assert.Equal(t, r.xs[4], d.Unix)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, "y0", d.Lines[0].Name)
	assert.Equal(t, "Joined", d.Lines[0].Title)
	assert.Equal(t, 20.0, d.Lines[0].Value)
	assert.Equal(t, f.Y(20), d.Lines[0].Y)

	r.MouseMove(f.X(5), true)
	assert.Len(t, got, 1, "no tooltip while dragging")

	r.SetLineState("y1", false)
	r.MouseMove(f.X(5), false)
	require.Len(t, got, 2)
	assert.Len(t, got[1].Lines, 1)

	r.MouseLeave()
	require.Len(t, got, 3)
	assert.False(t, got[2].Show)
}
