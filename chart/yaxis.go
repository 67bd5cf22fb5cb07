package chart

import (
	"time"

	"chartscope/format"
)

type grid struct {
	min  float64
	step float64
}

// YAxis renders horizontal gridlines with value labels. Every bounds change
// crossfades the previous grid into a freshly computed one.
type YAxis struct {
	surface *Surface
	lines   int
	format  format.Formatter
	theme   Theme

	cur    grid
	prev   grid
	bounds Bounds
	ready  bool
	drawFn DrawFunc
}

func NewYAxis(s *Surface, lines int, f format.Formatter, theme Theme) *YAxis {
	a := &YAxis{
		surface: s,
		lines:   max(1, lines),
		format:  f,
		theme:   theme,
	}
	a.drawFn = a.Draw
	return a
}

func (a *YAxis) Surface() *Surface { return a.surface }

func (a *YAxis) grid(b Bounds) grid {
	return grid{min: b.Min, step: (b.Max - b.Min) / float64(a.lines)}
}

// SetBounds animates to b. Empty bounds are ignored.
func (a *YAxis) SetBounds(b Bounds, d time.Duration) {
	if b.Empty() {
		return
	}
	s := a.surface
	if !a.ready {
		a.ready = true
		a.bounds = b
		a.cur = a.grid(b)
		a.prev = a.cur
		s.Set(PropMin, b.Min)
		s.Set(PropMax, b.Max)
		s.Set(PropOpacity, 1)
		s.Animate(a.drawFn, 0)
		return
	}
	if b == a.bounds {
		return
	}
	a.bounds = b
	a.prev = a.cur
	a.cur = a.grid(b)
	s.Set(PropOpacity, 0)
	s.AnimateProperties(a.drawFn, []Target{
		{Prop: PropMin, Value: b.Min},
		{Prop: PropMax, Value: b.Max},
		{Prop: PropOpacity, Value: 1},
	}, d)
}

func (a *YAxis) Draw(_ float64) {
	s := a.surface
	s.Canvas().Clear()
	if !a.ready {
		return
	}
	f := s.Frame(0, 1, s.Get(PropMin), s.Get(PropMax))
	op := s.Get(PropOpacity)
	if op < 1 {
		a.drawGrid(f, a.prev, 1-op)
	}
	a.drawGrid(f, a.cur, op)
}

func (a *YAxis) drawGrid(f Frame, g grid, alpha float64) {
	if alpha <= 0 {
		return
	}
	s := a.surface
	c := s.Canvas()
	n := a.lines
	if g.step == 0 {
		n = 1
	}
	for k := 0; k < n; k++ {
		v := g.min + float64(k)*g.step
		y := f.Y(v)
		if y < s.Top()-1 || y > s.Bottom()+1 {
			continue
		}
		c.StrokeLine(float32(s.Left()), float32(y), float32(s.Right()), float32(y), 1, withAlpha(a.theme.Grid, alpha))
		label := a.format.Value(v)
		_, th := c.MeasureText(label)
		c.Text(label, s.Left(), y-th-4, withAlpha(a.theme.Label, alpha), AlignLeft)
	}
}
