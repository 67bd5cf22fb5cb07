package app

import (
	"fmt"
	"image/color"
	"time"

	"chartscope/pkg/ring"
	"chartscope/settings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const frameSamples = 120

type StatusBarWidget struct {
	*widget.Container

	fpsLabel     *widget.Text
	messageLabel *widget.Text
	frames       *ring.Buffer[time.Duration]
}

func NewStatusBarWidget() *StatusBarWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{
				Left:  int(settings.PanelPadding),
				Right: int(settings.PanelPadding),
			}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(settings.AppFooterHeight)),
		),
	)
	fpsLabel := widget.NewText(
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				HorizontalPosition: widget.AnchorLayoutPositionStart,
			}),
		),
		widget.TextOpts.Text("60", settings.FontSM, color.White),
	)
	messageLabel := widget.NewText(
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.TextOpts.Text("loading", settings.FontSM, color.White),
	)
	container.AddChild(fpsLabel, messageLabel)

	return &StatusBarWidget{
		Container:    container,
		fpsLabel:     fpsLabel,
		messageLabel: messageLabel,
		frames:       ring.NewBuffer[time.Duration](frameSamples),
	}
}

// Record adds the duration of one game loop iteration.
func (w *StatusBarWidget) Record(d time.Duration) {
	w.frames.Push(d)
}

func (w *StatusBarWidget) SetMessage(msg string) {
	w.messageLabel.Label = msg
}

func (w *StatusBarWidget) averageFrame() time.Duration {
	if w.frames.Len() == 0 {
		return 0
	}
	items := w.frames.Items()
	var sum time.Duration
	for _, d := range items {
		sum += d
	}
	return sum / time.Duration(len(items))
}

func (w *StatusBarWidget) Render(screen *ebiten.Image) {
	w.Container.Render(screen)

	fps := ebiten.ActualFPS()
	avg := w.averageFrame()
	last := w.frames.Last()
	w.fpsLabel.Label = fmt.Sprintf("FPS %d  frame %.1fms  avg %.1fms", int(fps), ms(last), ms(avg))
}

func (w *StatusBarWidget) PreferredSize() (int, int) {
	return 0, int(settings.AppFooterHeight)
}

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
