package app

import (
	"math"
	"sync"
	"time"

	"chartscope/actor/feed"
	"chartscope/chart"
	"chartscope/settings"

	"github.com/anthdm/hollywood/actor"
	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var app *App

type App struct {
	ui *ebitenui.UI

	contentContainer *widget.Container
	statusBar        *StatusBarWidget
	chartWidget      *ChartWidget
	engine           *actor.Engine
	feedPID          *actor.PID
	eventCh          chan any

	mu       sync.Mutex
	incoming []any

	title     string
	opts      []chart.Option
	lastFrame time.Time
}

func New(e *actor.Engine, dataPath, title string, opts ...chart.Option) *App {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Spacing(0, 0),
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch(
				[]bool{true, true, true},
				[]bool{false, true, false}),
		)),
	)
	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	app = &App{
		ui: &ebitenui.UI{
			Container: root,
		},
		contentContainer: content,
		statusBar:        NewStatusBarWidget(),
		engine:           e,
		eventCh:          make(chan any, 1),
		title:            title,
		opts:             opts,
	}

	root.AddChild(NewMenuBarWidget(), content, app.statusBar)

	app.feedPID = e.Spawn(feed.New(app.eventCh, dataPath), "feed")
	go app.receiveData()

	return app
}

// receiveData queues feed results for the next Update; widgets are only
// touched from the game loop.
func (app *App) receiveData() {
	for ev := range app.eventCh {
		app.mu.Lock()
		app.incoming = append(app.incoming, ev)
		app.mu.Unlock()
	}
}

func (app *App) Draw(screen *ebiten.Image) {
	app.ui.Draw(screen)
}

func (app *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		if app.chartWidget != nil {
			app.chartWidget.Close()
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		app.reload()
	}

	now := time.Now()
	if !app.lastFrame.IsZero() {
		app.statusBar.Record(now.Sub(app.lastFrame))
	}
	app.lastFrame = now

	app.ui.Update()
	app.drain()

	return nil
}

func (app *App) reload() {
	log.Info("reloading dataset")
	app.engine.Send(app.feedPID, feed.Reload{})
}

func (app *App) drain() {
	app.mu.Lock()
	events := app.incoming
	app.incoming = nil
	app.mu.Unlock()

	for _, ev := range events {
		switch msg := ev.(type) {
		case feed.Loaded:
			app.statusBar.SetMessage(msg.Path)
			if app.chartWidget == nil {
				app.openChart(msg)
				continue
			}
			app.chartWidget.SetDataset(msg.Dataset)
		case feed.Failed:
			app.statusBar.SetMessage("load failed: " + msg.Err.Error())
		}
	}
}

func (app *App) openChart(msg feed.Loaded) {
	app.chartWidget = NewChartWidget(msg.Dataset, app.opts...)
	app.contentContainer.AddChild(NewPanel(app.chartWidget, app.title))
}

// Chart is the chart on screen, nil until the first dataset arrives.
func (app *App) Chart() *chart.Chart {
	if app.chartWidget == nil {
		return nil
	}
	return app.chartWidget.Chart()
}

func (app *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	panic("chartscope running with an unsupported Ebiten Engine version")
}

func (app *App) LayoutF(logicWidth, logicHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	canvasWidth := math.Ceil(logicWidth * scale)
	canvasHeight := math.Ceil(logicHeight * scale)
	return canvasWidth, canvasHeight
}
