package app

import (
	"image/color"

	"chartscope/settings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// NewPanel stacks a header bar over widg and stretches both to fill the
// parent. A widget that implements Toolbar gets its toolbar next to the
// title.
func NewPanel(widg widget.PreferredSizeLocateableWidget, title string) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true}),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(int(2*settings.Scale))),
			widget.GridLayoutOpts.Spacing(0, int(2*settings.Scale)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)

	header := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(int(12*settings.Scale)),
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.Insets{Left: int(settings.PanelPadding)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(settings.PanelHeaderHeight)),
		),
	)
	header.AddChild(widget.NewText(
		widget.TextOpts.Text(title, settings.FontSM, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))
	if tb, ok := widg.(Toolbar); ok {
		header.AddChild(tb.Toolbar())
	}

	panel.AddChild(header, widg)
	return panel
}
