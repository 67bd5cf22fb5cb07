package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartscope/event"
)

// newTestScope is a 90px scope over indices 0..9 with 8px handles.
func newTestScope(t *testing.T, w Window) (*ScopeSelector, *[]event.Range, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	n := NewNotifier(0, clk.Now)
	var got []event.Range
	n.Subscribe(event.ChangeRange, func(p any) { got = append(got, p.(event.Range)) })

	s, _ := newTestSurface(KindScope, Padding{Top: 2, Bottom: 2}, 0.1, clk)
	s.Resize(90)
	sc := NewScopeSelector(s, n, 9, 8, 2, DefaultTheme)
	sc.SetWindow(w)
	s.Tick(clk.Now())
	return sc, &got, clk
}

func TestScopeWindowMapping(t *testing.T) {
	sc, _, _ := newTestScope(t, Window{Left: 3, Right: 6})

	start, end := sc.Edges()
	assert.InDelta(t, 20, start, 1e-9)
	assert.InDelta(t, 60, end, 1e-9)
	assert.Equal(t, Window{Left: 3, Right: 6}, sc.Window())
}

func TestScopeDragClampsAndKeepsWidth(t *testing.T) {
	sc, got, _ := newTestScope(t, Window{Left: 3, Right: 6})

	sc.MouseDown(40)
	sc.MouseMove(0, -100)
	start, end := sc.Edges()
	assert.Equal(t, 0.0, start)
	assert.InDelta(t, 40, end, 1e-9)
	require.Len(t, *got, 1)
	assert.Equal(t, event.Range{Start: 1, End: 4}, (*got)[0])

	sc.MouseMove(90, 500)
	start, end = sc.Edges()
	assert.InDelta(t, 50, start, 1e-9)
	assert.Equal(t, 90.0, end)
	require.Len(t, *got, 2)
	assert.Equal(t, event.Range{Start: 6, End: 9}, (*got)[1])

	sc.MouseMove(90, 5)
	assert.Len(t, *got, 2, "no change at the edge")
}

func TestScopeResizeBelowMinimumIsRejected(t *testing.T) {
	sc, got, _ := newTestScope(t, Window{Left: 3, Right: 6})
	require.False(t, sc.Surface().Animating())

	sc.MouseDown(22)
	sc.MouseMove(52, 30)

	start, end := sc.Edges()
	assert.InDelta(t, 20, start, 1e-9)
	assert.InDelta(t, 60, end, 1e-9)
	assert.False(t, sc.Surface().Animating(), "no redraw")
	assert.Empty(t, *got)

	sc.MouseMove(30, 8)
	start, _ = sc.Edges()
	assert.InDelta(t, 28, start, 1e-9)
	assert.True(t, sc.Surface().Animating())
	require.Len(t, *got, 1)
	assert.Equal(t, event.Range{Start: 3, End: 6}, (*got)[0])
}

func TestScopeResizeRightEdge(t *testing.T) {
	sc, got, _ := newTestScope(t, Window{Left: 1, Right: 9})

	sc.MouseDown(87)
	sc.MouseMove(52, -35)
	_, end := sc.Edges()
	assert.InDelta(t, 55, end, 1e-9)
	require.Len(t, *got, 1)
	assert.Equal(t, event.Range{Start: 1, End: 5}, (*got)[0])

	sc.MouseUp()
	sc.MouseMove(40, -10)
	assert.Len(t, *got, 1, "released scope ignores movement")
}

func TestScopeCursor(t *testing.T) {
	sc, _, _ := newTestScope(t, Window{Left: 3, Right: 6})

	sc.MouseMove(22, 0)
	assert.Equal(t, CursorResize, sc.Cursor())
	sc.MouseMove(40, 0)
	assert.Equal(t, CursorMove, sc.Cursor())
	sc.MouseMove(80, 0)
	assert.Equal(t, CursorDefault, sc.Cursor())

	sc.MouseDown(40)
	sc.MouseMove(58, 0)
	assert.Equal(t, CursorMove, sc.Cursor(), "a drag keeps its cursor over a handle")

	sc.MouseLeave()
	assert.Equal(t, CursorDefault, sc.Cursor())
}

func TestScopeDrawMasksOutsideWindow(t *testing.T) {
	sc, _, clk := newTestScope(t, Window{Left: 3, Right: 6})
	c := sc.Surface().Canvas().(*recCanvas)
	sc.Surface().Animate(sc.Draw, 0)
	sc.Surface().Tick(clk.Now())

	require.GreaterOrEqual(t, c.count("rect"), 4)
	left := c.ops[0].args
	assert.Equal(t, float32(0), left[0])
	assert.InDelta(t, 20, left[2], 1e-4)
}
