package app

import (
	img "image"
	"slices"
	"time"

	"chartscope/chart"
	"chartscope/dataset"
	"chartscope/format"
	"chartscope/settings"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type ChartWidget struct {
	*widget.Container

	chart    *chart.Chart
	opts     []chart.Option
	width    int
	toolbar  *widget.Container
	locales  *widget.ListComboButton
	locale   string
	canvases map[chart.Kind]*imageCanvas

	scopeGrabbed bool
	hovering     bool
}

func NewChartWidget(ds *dataset.Dataset, opts ...chart.Option) *ChartWidget {
	cw := &ChartWidget{
		opts: append([]chart.Option{chart.WithTheme(settings.ChartTheme)}, opts...),
	}
	cw.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.CursorMoveHandler(cw.onMouseMove),
			widget.WidgetOpts.MouseButtonPressedHandler(cw.onMousePressed),
			widget.WidgetOpts.MouseButtonReleasedHandler(cw.onMouseReleased),
			widget.WidgetOpts.CursorExitHandler(cw.onContainerLeave),
			widget.WidgetOpts.MinSize(settings.ChartMinWidth, 0),
		),
	)
	cw.toolbar = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	cw.SetDataset(ds)
	if l, ok := cw.chart.Options().Formatter.(*format.Locale); ok {
		cw.locale = l.Tag().String()
	}
	cw.locales = localeDropdown(cw.locale, cw.SetLocale)
	cw.rebuildToolbar()
	return cw
}

// SetDataset replaces the chart, keeping the widget's options.
func (cw *ChartWidget) SetDataset(ds *dataset.Dataset) {
	cw.build(ds)
}

// SetLocale rebuilds the chart with labels in tag, keeping the visible
// window and series visibility.
func (cw *ChartWidget) SetLocale(tag string) {
	if tag == cw.locale {
		return
	}
	cw.locale = tag
	w := cw.chart.Window()
	cw.build(cw.chart.Dataset(), chart.WithWindow(w.Left, w.Right))
}

func (cw *ChartWidget) build(ds *dataset.Dataset, extra ...chart.Option) {
	if cw.chart != nil {
		cw.chart.Close()
	}
	opts := slices.Clone(cw.opts)
	if cw.locale != "" {
		opts = append(opts, chart.WithLocale(cw.locale))
	}
	opts = append(opts, extra...)

	cw.canvases = make(map[chart.Kind]*imageCanvas)
	factory := func(kind chart.Kind) chart.Canvas {
		c := newCanvas(settings.FontSM)
		cw.canvases[kind] = c
		return c
	}
	cw.chart = chart.New(ds, factory, opts...)
	if cw.width > 0 {
		cw.chart.Resize(cw.width)
	}
	cw.rebuildToolbar()
	log.Info("chart ready", "samples", ds.Len(), "series", len(ds.Series), "window", cw.chart.Window(), "locale", cw.locale)
}

func (cw *ChartWidget) Chart() *chart.Chart { return cw.chart }

func (cw *ChartWidget) GetWidget() *widget.Widget {
	return cw.Container.GetWidget()
}

func (cw *ChartWidget) Update() {
	cw.Container.Update()

	if w := cw.GetWidget().Rect.Dx(); w != cw.width && w > 0 {
		cw.width = w
		cw.chart.Resize(w)
	}
	cw.chart.Tick(time.Now())
}

func (cw *ChartWidget) detailedHeight() int {
	h := 0
	for _, s := range cw.chart.Detailed() {
		h = max(h, s.Height())
	}
	return h
}

func (cw *ChartWidget) overviewOrigin() img.Point {
	rect := cw.GetWidget().Rect
	return img.Pt(rect.Min.X, rect.Min.Y+cw.detailedHeight()+settings.ChartOverviewGap)
}

// cursor returns the cursor position relative to the detailed view and
// reports which view it is over.
func (cw *ChartWidget) cursor() (p img.Point, inDetailed, inOverview bool) {
	x, y := ebiten.CursorPosition()
	rect := cw.GetWidget().Rect
	p = img.Pt(x-rect.Min.X, y-rect.Min.Y)
	o := cw.overviewOrigin()
	overviewH := 0
	for _, s := range cw.chart.Overview() {
		overviewH = max(overviewH, s.Height())
	}
	inDetailed = p.X >= 0 && p.X < rect.Dx() && p.Y >= 0 && p.Y < cw.detailedHeight()
	inOverview = p.X >= 0 && p.X < rect.Dx() && y >= o.Y && y < o.Y+overviewH
	return p, inDetailed, inOverview
}

func (cw *ChartWidget) onMouseMove(args *widget.WidgetCursorMoveEventArgs) {
	p, inDetailed, inOverview := cw.cursor()
	scope := cw.chart.Scope()
	pressed := ebiten.IsMouseButtonPressed(settings.ScopeButton)

	if cw.scopeGrabbed || inOverview {
		scope.MouseMove(float64(p.X), float64(args.DiffX))
	} else {
		scope.MouseLeave()
	}
	setCursorShape(scope.Cursor())

	switch {
	case inDetailed && !cw.scopeGrabbed:
		cw.hovering = true
		cw.chart.Lines().MouseMove(float64(p.X), pressed)
	case cw.hovering:
		cw.hovering = false
		cw.chart.Lines().MouseLeave()
	}
}

func (cw *ChartWidget) onMousePressed(args *widget.WidgetMouseButtonPressedEventArgs) {
	if args.Button != settings.ScopeButton {
		return
	}
	p, _, inOverview := cw.cursor()
	if inOverview {
		cw.scopeGrabbed = true
		cw.chart.Scope().MouseDown(float64(p.X))
	}
}

func (cw *ChartWidget) onMouseReleased(args *widget.WidgetMouseButtonReleasedEventArgs) {
	if args.Button != settings.ScopeButton {
		return
	}
	cw.scopeGrabbed = false
	cw.chart.Scope().MouseUp()
}

func (cw *ChartWidget) onContainerLeave(_ *widget.WidgetCursorExitEventArgs) {
	cw.scopeGrabbed = false
	cw.hovering = false
	cw.chart.Scope().MouseLeave()
	cw.chart.Lines().MouseLeave()
	setCursorShape(chart.CursorDefault)
}

func setCursorShape(c chart.Cursor) {
	switch c {
	case chart.CursorMove:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	case chart.CursorResize:
		ebiten.SetCursorShape(ebiten.CursorShapeEWResize)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (cw *ChartWidget) Render(screen *ebiten.Image) {
	cw.Container.Render(screen)

	origin := cw.GetWidget().Rect.Min
	for _, s := range cw.chart.Detailed() {
		cw.canvases[s.Kind()].drawAt(screen, origin)
	}
	o := cw.overviewOrigin()
	for _, s := range cw.chart.Overview() {
		cw.canvases[s.Kind()].drawAt(screen, o)
	}
}

func (cw *ChartWidget) PreferredSize() (int, int) {
	return settings.ChartMinWidth, 0
}

func (cw *ChartWidget) Close() {
	cw.chart.Close()
}

func (cw *ChartWidget) Toolbar() *widget.Container {
	return cw.toolbar
}

// rebuildToolbar adds one toggle button per series, colored while visible,
// followed by the locale picker.
func (cw *ChartWidget) rebuildToolbar() {
	cw.toolbar.RemoveChildren()
	defer func() {
		if cw.locales != nil {
			cw.toolbar.AddChild(cw.locales)
		}
	}()
	for _, s := range cw.chart.Dataset().Series {
		button := newToolbarButton(s.Title)
		paint := func() {
			if s.Visible {
				button.TextColor.Idle = s.Color
			} else {
				button.TextColor.Idle = settings.SeriesHiddenColor
			}
		}
		paint()
		button.ClickedEvent.AddHandler(func(_ any) {
			cw.chart.ToggleSeries(s.Name, !s.Visible)
			paint()
		})
		cw.toolbar.AddChild(button)
	}
}
