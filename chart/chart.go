package chart

import (
	"time"

	"chartscope/dataset"
	"chartscope/event"
	"chartscope/format"

	"github.com/charmbracelet/log"
)

type view struct {
	surface *Surface
	draw    DrawFunc
}

// Chart wires a dataset to a detailed view (lines, axes, tooltip) and an
// overview (thin lines under a scope selector). All surfaces share one
// Notifier; the scope drives the detailed window through changeRange and
// series toggles arrive as seriaToggle.
type Chart struct {
	opts     Options
	ds       *dataset.Dataset
	notifier *Notifier

	window      Window
	bounds      Bounds
	overview    Bounds
	recomputes  int
	unsubscribe []func()

	lines    *SeriesRenderer
	xAxis    *XAxis
	yAxis    *YAxis
	details  *Details
	thumb    *SeriesRenderer
	scope    *ScopeSelector
	detailed []view
	mini     []view
}

func New(ds *dataset.Dataset, factory CanvasFactory, opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Formatter == nil {
		o.Formatter = format.New("en")
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}

	c := &Chart{
		opts:     o,
		ds:       ds,
		notifier: NewNotifier(o.Debounce, o.Clock),
	}
	surface := func(kind Kind, p Padding, ratio float64) *Surface {
		return NewSurface(kind, factory(kind), p, ratio, o.Clock)
	}

	c.yAxis = NewYAxis(surface(KindYAxis, o.Padding, o.Ratio), o.YLines, o.Formatter, o.Theme)
	c.lines = NewSeriesRenderer(surface(KindSeries, o.Padding, o.Ratio), ds, c.notifier, o.LineWidth, o.Duration)
	c.xAxis = NewXAxis(surface(KindXAxis, o.Padding, o.Ratio), ds.X, o.XLabels, o.Formatter, o.Theme)
	c.details = NewDetails(surface(KindDetails, o.Padding, o.Ratio), c.notifier, o.Formatter, o.Theme)
	c.thumb = NewSeriesRenderer(surface(KindOverview, o.OverviewPadding, o.OverviewRatio), ds, nil, o.OverviewLineWidth, o.Duration)
	c.scope = NewScopeSelector(surface(KindScope, o.OverviewPadding, o.OverviewRatio), c.notifier, c.maxIndex(), o.ScopeStroke, o.ScopeHStroke, o.Theme)

	c.detailed = []view{
		{c.yAxis.Surface(), c.yAxis.Draw},
		{c.lines.Surface(), c.lines.Draw},
		{c.xAxis.Surface(), c.xAxis.Draw},
		{c.details.Surface(), c.details.Draw},
	}
	c.mini = []view{
		{c.thumb.Surface(), c.thumb.Draw},
		{c.scope.Surface(), c.scope.Draw},
	}

	c.unsubscribe = append(c.unsubscribe,
		c.notifier.Subscribe(event.ChangeRange, c.onChangeRange),
		c.notifier.Subscribe(event.SeriaToggle, c.onSeriesToggle),
	)

	c.window = c.initialWindow()
	c.bounds = detailedBounds(ds.Series, c.window)
	c.overview = overviewBounds(ds.Series, c.overviewRange())

	c.lines.ChangeView(c.window, c.bounds, 0)
	c.xAxis.SetRange(c.window, 0)
	c.yAxis.SetBounds(c.bounds, 0)
	c.thumb.ChangeView(Window{Left: 0, Right: c.maxIndex()}, c.overview, 0)
	c.scope.SetWindow(c.window)
	return c
}

func (c *Chart) maxIndex() int { return max(0, c.ds.Len()-1) }

// overviewRange is the range the overview's bounds scan. The overview draws
// [0, maxIndex]; with the exclusive right end the scan needs N to include
// the last sample.
func (c *Chart) overviewRange() Window { return Window{Left: 0, Right: c.ds.Len()} }

// initialWindow is the configured window or the last quarter of the data.
func (c *Chart) initialWindow() Window {
	n := c.ds.Len()
	if c.opts.Window != nil {
		return c.opts.Window.normalize(n)
	}
	right := n - 1
	return Window{Left: right - max(1, right/4), Right: right}.normalize(n)
}

func (c *Chart) onChangeRange(p any) {
	r, ok := p.(event.Range)
	if !ok {
		return
	}
	w := Window{Left: r.Start, Right: r.End}.normalize(c.ds.Len())
	if w == c.window {
		return
	}
	c.window = w
	c.bounds = detailedBounds(c.ds.Series, w)
	c.recomputes++
	log.Debug("range changed", "left", w.Left, "right", w.Right, "min", c.bounds.Min, "max", c.bounds.Max)

	d := c.opts.Duration
	c.lines.ChangeView(w, c.bounds, d)
	c.xAxis.SetRange(w, d)
	c.yAxis.SetBounds(c.bounds, d)
}

func (c *Chart) onSeriesToggle(p any) {
	t, ok := p.(event.Toggle)
	if !ok {
		return
	}
	s, ok := c.ds.Lookup(t.Name)
	if !ok {
		log.Warn("toggle of unknown series", "name", t.Name)
		return
	}
	if s.Visible == t.Value {
		return
	}
	s.Visible = t.Value
	c.bounds = detailedBounds(c.ds.Series, c.window)
	c.overview = overviewBounds(c.ds.Series, c.overviewRange())
	c.recomputes++
	log.Debug("series toggled", "name", t.Name, "visible", t.Value, "min", c.bounds.Min, "max", c.bounds.Max)

	d := c.opts.Duration
	c.lines.SetLineState(t.Name, t.Value)
	c.thumb.SetLineState(t.Name, t.Value)
	// Retarget the whole view so a pan in flight is not frozen halfway.
	c.lines.ChangeView(c.window, c.bounds, d)
	c.thumb.ChangeView(Window{Left: 0, Right: c.maxIndex()}, c.overview, d)
	if !c.bounds.Empty() {
		c.yAxis.SetBounds(c.bounds, d)
	}
}

// ToggleSeries shows or hides a series. Toggles are never coalesced.
func (c *Chart) ToggleSeries(name string, visible bool) {
	c.notifier.Emit(event.SeriaToggle, event.Toggle{Name: name, Value: visible})
}

// SetWindow moves the scope and the detailed view to [left, right].
func (c *Chart) SetWindow(left, right int) {
	w := Window{Left: left, Right: right}.normalize(c.ds.Len())
	c.scope.SetWindow(w)
	c.notifier.Emit(event.ChangeRange, event.Range{Start: w.Left, End: w.Right})
}

// SetTimeWindow selects the samples between from and to.
func (c *Chart) SetTimeWindow(from, to time.Time) {
	c.SetWindow(c.ds.IndexOf(from.UnixMilli()), c.ds.IndexOf(to.UnixMilli()))
}

func (c *Chart) Window() Window   { return c.window }
func (c *Chart) Bounds() Bounds   { return c.bounds }
func (c *Chart) Options() Options { return c.opts }

func (c *Chart) Dataset() *dataset.Dataset { return c.ds }

// Resize fits every surface to the container width. Animations in flight
// keep running against the new geometry; idle surfaces redraw once. The
// scope keeps its own window, which may be ahead of the detailed view while
// a changeRange is still debounced.
func (c *Chart) Resize(width int) {
	w := c.window
	if c.scope.Surface().Width() > 0 {
		w = c.scope.Window().normalize(c.ds.Len())
	}
	for _, v := range c.views() {
		v.surface.Resize(width)
	}
	c.scope.SetWindow(w)
	for _, v := range c.views() {
		if !v.surface.Animating() {
			v.surface.Animate(v.draw, 0)
		}
	}
}

// Tick flushes debounced notifications and advances every surface. It
// reports whether anything was drawn.
func (c *Chart) Tick(now time.Time) bool {
	c.notifier.Tick(now)
	drew := false
	for _, v := range c.views() {
		if v.surface.Tick(now) {
			drew = true
		}
	}
	return drew
}

func (c *Chart) views() []view {
	return append(append(make([]view, 0, len(c.detailed)+len(c.mini)), c.detailed...), c.mini...)
}

// Surfaces returns every surface, detailed view first, in paint order.
func (c *Chart) Surfaces() []*Surface {
	return surfacesOf(c.views())
}

// Detailed returns the detailed view's surfaces in paint order.
func (c *Chart) Detailed() []*Surface { return surfacesOf(c.detailed) }

// Overview returns the overview's surfaces in paint order.
func (c *Chart) Overview() []*Surface { return surfacesOf(c.mini) }

func surfacesOf(vs []view) []*Surface {
	out := make([]*Surface, len(vs))
	for i, v := range vs {
		out[i] = v.surface
	}
	return out
}

func (c *Chart) Lines() *SeriesRenderer         { return c.lines }
func (c *Chart) OverviewLines() *SeriesRenderer { return c.thumb }
func (c *Chart) Scope() *ScopeSelector          { return c.scope }
func (c *Chart) Details() *Details              { return c.details }
func (c *Chart) XAxis() *XAxis                  { return c.xAxis }
func (c *Chart) YAxis() *YAxis                  { return c.yAxis }

// Subscribe attaches h to the chart's notifier.
func (c *Chart) Subscribe(name event.Name, h Handler) func() {
	return c.notifier.Subscribe(name, h)
}

// Close detaches the chart's own handlers from its notifier.
func (c *Chart) Close() {
	for _, u := range c.unsubscribe {
		u()
	}
	c.unsubscribe = nil
}
