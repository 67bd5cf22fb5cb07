package chart

import (
	"math"
	"time"

	"chartscope/dataset"
	"chartscope/event"
)

type line struct {
	series    *dataset.Series
	visible   bool
	fading    bool
	fadeStart time.Time
}

// alpha is the line opacity at now. A fade runs on its own clock so it
// completes even when a bounds animation replaces the one that started it.
func (l *line) alpha(now time.Time, fade time.Duration) float64 {
	if !l.fading {
		if l.visible {
			return 1
		}
		return 0
	}
	p := 1.0
	if fade > 0 {
		p = math.Min(1, math.Max(0, float64(now.Sub(l.fadeStart))/float64(fade)))
	}
	if p >= 1 {
		l.fading = false
	}
	if l.visible {
		return p
	}
	return 1 - p
}

// SeriesRenderer draws the visible lines of a dataset into a surface using
// the surface's left/right/min/max properties as the mapping.
type SeriesRenderer struct {
	surface  *Surface
	notifier *Notifier
	xs       []int64
	lines    []*line
	width    float32
	fade     time.Duration

	boundsSet bool
	pts       []float32
	drawFn    DrawFunc
}

func NewSeriesRenderer(s *Surface, ds *dataset.Dataset, n *Notifier, width float32, fade time.Duration) *SeriesRenderer {
	r := &SeriesRenderer{
		surface:  s,
		notifier: n,
		xs:       ds.X,
		width:    width,
		fade:     fade,
		pts:      make([]float32, 0, 2*len(ds.X)),
	}
	for _, sr := range ds.Series {
		r.lines = append(r.lines, &line{series: sr, visible: sr.Visible})
	}
	r.drawFn = r.Draw
	return r
}

func (r *SeriesRenderer) Surface() *Surface { return r.surface }

func (r *SeriesRenderer) frame() Frame {
	s := r.surface
	return s.Frame(s.Get(PropLeft), s.Get(PropRight), s.Get(PropMin), s.Get(PropMax))
}

// Draw clears the canvas and strokes every visible or fading line.
func (r *SeriesRenderer) Draw(_ float64) {
	s := r.surface
	c := s.Canvas()
	c.Clear()
	if len(r.xs) == 0 {
		return
	}
	f := r.frame()
	from := max(0, int(math.Floor(s.Get(PropLeft))))
	to := min(len(r.xs)-1, int(math.Ceil(s.Get(PropRight))))
	if from > to {
		return
	}
	now := s.Now()
	var remaining time.Duration
	for _, l := range r.lines {
		a := l.alpha(now, r.fade)
		if l.fading {
			remaining = max(remaining, l.fadeStart.Add(r.fade).Sub(now))
		}
		if a <= 0 {
			continue
		}
		pts := r.pts[:0]
		for i := from; i <= to; i++ {
			pts = append(pts, float32(f.X(float64(i))), float32(f.Y(l.series.Data[i])))
		}
		r.pts = pts
		c.Polyline(pts, r.width, withAlpha(l.series.Color, a))
	}
	// Keep ticking until every fade has finished.
	if remaining > 0 && !s.Animating() {
		s.Animate(r.drawFn, remaining)
	}
}

// ChangeRange moves the visible window without animation.
func (r *SeriesRenderer) ChangeRange(left, right int) {
	r.surface.Set(PropLeft, float64(left))
	r.surface.Set(PropRight, float64(right))
	r.surface.Animate(r.drawFn, 0)
}

// ChangeBounds animates the value range. The very first call only sets the
// baseline.
func (r *SeriesRenderer) ChangeBounds(min, max float64, d time.Duration) {
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return
	}
	if !r.boundsSet {
		r.boundsSet = true
		r.surface.Set(PropMin, min)
		r.surface.Set(PropMax, max)
		r.surface.Animate(r.drawFn, 0)
		return
	}
	s := r.surface
	s.AnimateProperties(r.drawFn, []Target{
		{Prop: PropLeft, Value: s.Goal(PropLeft)},
		{Prop: PropRight, Value: s.Goal(PropRight)},
		{Prop: PropMin, Value: min},
		{Prop: PropMax, Value: max},
	}, d)
}

// ChangeView animates window and bounds together. Empty bounds keep the
// value range heading where it was going.
func (r *SeriesRenderer) ChangeView(w Window, b Bounds, d time.Duration) {
	if !r.boundsSet {
		r.surface.Set(PropLeft, float64(w.Left))
		r.surface.Set(PropRight, float64(w.Right))
		r.ChangeBounds(b.Min, b.Max, d)
		if !r.boundsSet {
			r.surface.Animate(r.drawFn, 0)
		}
		return
	}
	s := r.surface
	if b.Empty() {
		b = Bounds{Min: s.Goal(PropMin), Max: s.Goal(PropMax)}
	}
	s.AnimateProperties(r.drawFn, []Target{
		{Prop: PropLeft, Value: float64(w.Left)},
		{Prop: PropRight, Value: float64(w.Right)},
		{Prop: PropMin, Value: b.Min},
		{Prop: PropMax, Value: b.Max},
	}, d)
}

// SetLineState fades the named line in or out, redrawing on every tick. An
// animation already in flight is left alone; Draw extends it while a fade
// is still running.
func (r *SeriesRenderer) SetLineState(name string, visible bool) {
	for _, l := range r.lines {
		if l.series.Name != name || l.visible == visible {
			continue
		}
		l.visible = visible
		l.fading = true
		l.fadeStart = r.surface.Now()
		if !r.surface.Animating() {
			r.surface.Animate(r.drawFn, r.fade)
		}
	}
}

// LineAlpha is the opacity the named line is drawn with right now.
func (r *SeriesRenderer) LineAlpha(name string) float64 {
	for _, l := range r.lines {
		if l.series.Name == name {
			return l.alpha(r.surface.Now(), r.fade)
		}
	}
	return 0
}

// MouseMove publishes the samples nearest to pixel x while no button is
// pressed.
func (r *SeriesRenderer) MouseMove(x float64, pressed bool) {
	if pressed || r.notifier == nil || len(r.xs) == 0 {
		return
	}
	s := r.surface
	f := r.frame()
	i := f.Index(x)
	if float64(i) < math.Ceil(s.Get(PropLeft)) || float64(i) > math.Floor(s.Get(PropRight)) {
		return
	}
	if i < 0 || i >= len(r.xs) {
		return
	}
	lines := make([]event.Line, 0, len(r.lines))
	for _, l := range r.lines {
		if !l.visible {
			continue
		}
		v := l.series.Data[i]
		lines = append(lines, event.Line{
			Name:  l.series.Name,
			Title: l.series.Title,
			Color: l.series.Color,
			Y:     f.Y(v),
			Value: v,
		})
	}
	r.notifier.Notify(event.ToggleDetails, event.Details{
		Show:  true,
		X:     f.X(float64(i)),
		Index: i,
		Unix:  r.xs[i],
		Lines: lines,
	})
}

func (r *SeriesRenderer) MouseLeave() {
	if r.notifier == nil {
		return
	}
	r.notifier.Notify(event.ToggleDetails, event.Details{})
}
