package chart

import (
	"math"
	"time"
)

// Kind tags the role a Surface plays in a chart.
type Kind int

const (
	KindSeries Kind = iota
	KindOverview
	KindXAxis
	KindYAxis
	KindScope
	KindDetails
)

func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindOverview:
		return "overview"
	case KindXAxis:
		return "xaxis"
	case KindYAxis:
		return "yaxis"
	case KindScope:
		return "scope"
	case KindDetails:
		return "details"
	default:
		return "unknown"
	}
}

type Padding struct {
	Top, Bottom, Left, Right int
}

// DrawFunc renders a surface at the given animation progress in [0, 1].
type DrawFunc func(progress float64)

type task struct {
	start    time.Time
	duration time.Duration
	from, to props
	mask     propMask
	draw     DrawFunc
}

// Surface is a drawable region backed by a Canvas. It owns the padding-aware
// geometry helpers and a single animation slot advanced by Tick.
type Surface struct {
	kind    Kind
	canvas  Canvas
	padding Padding
	ratio   float64
	width   int
	height  int
	clock   func() time.Time

	props     props
	task      task
	scheduled bool
}

func NewSurface(kind Kind, canvas Canvas, padding Padding, ratio float64, clock func() time.Time) *Surface {
	if clock == nil {
		clock = time.Now
	}
	return &Surface{
		kind:    kind,
		canvas:  canvas,
		padding: padding,
		ratio:   ratio,
		clock:   clock,
	}
}

func (s *Surface) Kind() Kind            { return s.kind }
func (s *Surface) Canvas() Canvas        { return s.canvas }
func (s *Surface) Now() time.Time        { return s.clock() }
func (s *Surface) Animating() bool       { return s.scheduled }
func (s *Surface) Get(p Prop) float64    { return s.props[p] }
func (s *Surface) Set(p Prop, v float64) { s.props[p] = v }

// Goal is the value p is animating towards, or its current value when no
// animation in flight moves it.
func (s *Surface) Goal(p Prop) float64 {
	if s.scheduled && s.task.mask.has(p) {
		return s.task.to[p]
	}
	return s.props[p]
}

// Resize derives the canvas size from the container width. The drawable
// height is ratio times the container width; padding is added around it.
func (s *Surface) Resize(containerWidth int) {
	if containerWidth < 0 {
		containerWidth = 0
	}
	w := containerWidth
	h := int(math.Round(float64(containerWidth)*s.ratio)) + s.padding.Top + s.padding.Bottom
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.canvas.Resize(w, h)
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

func (s *Surface) DrawableWidth() float64 {
	return math.Max(0, float64(s.width-s.padding.Left-s.padding.Right))
}

func (s *Surface) DrawableHeight() float64 {
	return math.Max(0, float64(s.height-s.padding.Top-s.padding.Bottom))
}

func (s *Surface) Left() float64   { return float64(s.padding.Left) }
func (s *Surface) Right() float64  { return s.Left() + s.DrawableWidth() }
func (s *Surface) Top() float64    { return float64(s.padding.Top) }
func (s *Surface) Bottom() float64 { return s.Top() + s.DrawableHeight() }

// AnimateProperties interpolates the listed properties from their current
// values to the targets over d, calling draw after every step. It replaces
// any animation in flight; the current values become the new start point.
func (s *Surface) AnimateProperties(draw DrawFunc, targets []Target, d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.task = task{
		start:    s.clock(),
		duration: d,
		from:     s.props,
		to:       s.props,
		draw:     draw,
	}
	for _, t := range targets {
		s.task.to[t.Prop] = t.Value
		s.task.mask |= 1 << t.Prop
	}
	s.scheduled = true
}

// Animate runs draw with the elapsed fraction of d and no property
// interpolation. A zero d draws once at progress 1 on the next Tick.
func (s *Surface) Animate(draw DrawFunc, d time.Duration) {
	s.AnimateProperties(draw, nil, d)
}

// Tick advances the animation in flight, if any, and reports whether it
// drew. The final step always runs at progress 1 and clears the slot.
func (s *Surface) Tick(now time.Time) bool {
	if !s.scheduled {
		return false
	}
	t := &s.task
	progress := 1.0
	if t.duration > 0 {
		progress = float64(now.Sub(t.start)) / float64(t.duration)
		progress = math.Min(1, math.Max(0, progress))
	}
	for p := Prop(0); p < numProps; p++ {
		if !t.mask.has(p) {
			continue
		}
		if progress >= 1 {
			s.props[p] = t.to[p]
		} else {
			s.props[p] = t.from[p] + (t.to[p]-t.from[p])*progress
		}
	}
	draw := t.draw
	if progress >= 1 {
		s.scheduled = false
		s.task = task{}
	}
	if draw != nil {
		draw(progress)
	}
	return true
}
