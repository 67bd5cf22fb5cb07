package chart

import (
	"math"
	"time"

	"chartscope/format"
)

const labelMargin = 8

// XAxis renders evenly spaced time labels under the detailed view. Labels
// sit on multiples of a power-of-two index step so a pan only shifts them.
type XAxis struct {
	surface *Surface
	xs      []int64
	count   int
	format  format.Formatter
	theme   Theme

	window   Window
	panFrom  Window
	step     float64
	prevStep float64
	zooming  bool
	ready    bool
	drawFn   DrawFunc
}

func NewXAxis(s *Surface, xs []int64, count int, f format.Formatter, theme Theme) *XAxis {
	a := &XAxis{
		surface: s,
		xs:      xs,
		count:   max(1, count),
		format:  f,
		theme:   theme,
	}
	a.drawFn = a.Draw
	return a
}

func (a *XAxis) Surface() *Surface { return a.surface }

// labelStep is the smallest power of two covering width/count indices.
func labelStep(width, count int) float64 {
	if width <= 0 || count <= 0 {
		return 1
	}
	raw := float64(width) / float64(count)
	if raw <= 1 {
		return 1
	}
	return math.Exp2(math.Ceil(math.Log2(raw)))
}

// SetRange moves the axis to w. A pan keeps the label step and slides the
// labels in from their old pixel offset while entering labels fade in; a
// zoom crossfades the old and the new label sets.
func (a *XAxis) SetRange(w Window, d time.Duration) {
	s := a.surface
	if !a.ready {
		a.ready = true
		a.window = w
		a.panFrom = w
		a.step = labelStep(w.Width(), a.count)
		s.Set(PropLeft, float64(w.Left))
		s.Set(PropRight, float64(w.Right))
		s.Set(PropOffset, 0)
		s.Set(PropOpacity, 1)
		s.Animate(a.drawFn, 0)
		return
	}
	if w == a.window {
		return
	}
	old := a.window
	a.window = w

	if w.Width() == old.Width() && !(a.zooming && s.Animating()) {
		a.zooming = false
		a.panFrom = old
		pxStep := 0.0
		if old.Width() > 0 {
			pxStep = s.DrawableWidth() / float64(old.Width())
		}
		s.Set(PropOffset, s.Get(PropOffset)+float64(w.Left-old.Left)*pxStep)
		s.Set(PropLeft, float64(w.Left))
		s.Set(PropRight, float64(w.Right))
		s.Set(PropOpacity, 0)
		s.AnimateProperties(a.drawFn, []Target{
			{Prop: PropOffset, Value: 0},
			{Prop: PropOpacity, Value: 1},
		}, d)
		return
	}

	a.zooming = true
	a.prevStep = a.step
	a.step = labelStep(w.Width(), a.count)
	s.Set(PropOpacity, 0)
	s.AnimateProperties(a.drawFn, []Target{
		{Prop: PropLeft, Value: float64(w.Left)},
		{Prop: PropRight, Value: float64(w.Right)},
		{Prop: PropOffset, Value: 0},
		{Prop: PropOpacity, Value: 1},
	}, d)
}

func (a *XAxis) Draw(_ float64) {
	s := a.surface
	c := s.Canvas()
	c.Clear()
	if len(a.xs) == 0 {
		return
	}
	f := s.Frame(s.Get(PropLeft), s.Get(PropRight), 0, 0)
	op := s.Get(PropOpacity)
	if a.zooming {
		if a.prevStep != a.step {
			a.drawLabels(f, a.prevStep, func(float64) float64 { return 1 - op })
			a.drawLabels(f, a.step, func(float64) float64 { return op })
			return
		}
		a.drawLabels(f, a.step, func(float64) float64 { return 1 })
		return
	}
	from, to := float64(a.panFrom.Left), float64(a.panFrom.Right)
	a.drawLabels(f, a.step, func(idx float64) float64 {
		if idx < from || idx > to {
			return op
		}
		return 1
	})
}

func (a *XAxis) drawLabels(f Frame, step float64, alpha func(idx float64) float64) {
	s := a.surface
	c := s.Canvas()
	off := s.Get(PropOffset)
	left, right := s.Get(PropLeft), s.Get(PropRight)
	if off > 0 {
		left -= off / math.Max(f.Step, 1e-9)
	} else {
		right -= off / math.Max(f.Step, 1e-9)
	}
	y := s.Bottom() + labelMargin
	for idx := math.Ceil(math.Max(0, left)/step) * step; idx <= right && int(idx) < len(a.xs); idx += step {
		x := f.X(idx) + off
		if x < 0 || x > float64(s.Width()) {
			continue
		}
		a1 := alpha(idx)
		if a1 <= 0 {
			continue
		}
		c.Text(a.format.Axis(a.xs[int(idx)]), x, y, withAlpha(a.theme.Label, a1), AlignCenter)
	}
}
