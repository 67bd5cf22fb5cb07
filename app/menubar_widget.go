package app

import (
	img "image"
	"image/color"
	"time"

	"chartscope/settings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/colornames"
)

type MenuBarWidget struct {
	*widget.Container
}

func NewMenuBarWidget() *MenuBarWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Left: int(settings.PanelPadding)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(settings.AppHeaderHeight)),
		),
	)

	innerContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),

		widget.ContainerOpts.WidgetOpts(
			// Make the toolbar fill the whole horizontal space of the screen.
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal:  true,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	reloadButton := newToolbarButton("Reload")
	reloadButton.ClickedEvent.AddHandler(func(_ any) {
		app.reload()
	})
	innerContainer.AddChild(
		reloadButton,
		makeWindowButton(),
	)

	container.AddChild(innerContainer)

	return &MenuBarWidget{
		Container: container,
	}
}

func (w *MenuBarWidget) PreferredSize() (int, int) {
	return 0, int(settings.AppHeaderHeight)
}

type windowPreset struct {
	label string
	span  time.Duration
}

var windowPresets = []windowPreset{
	{label: "All"},
	{label: "Last 90 days", span: 90 * 24 * time.Hour},
	{label: "Last 30 days", span: 30 * 24 * time.Hour},
	{label: "Last 7 days", span: 7 * 24 * time.Hour},
}

// makeWindowButton opens a menu of preset windows for the chart on screen.
func makeWindowButton() *widget.Button {
	windowButton := newToolbarButton("Window")
	entries := make([]*widget.Button, len(windowPresets))
	for i, preset := range windowPresets {
		entry := newToolbarMenuEntry(preset.label)
		entry.ClickedEvent.AddHandler(func(_ any) {
			c := app.Chart()
			if c == nil {
				return
			}
			xs := c.Dataset().X
			if preset.span == 0 {
				c.SetWindow(1, len(xs)-1)
				return
			}
			last := time.UnixMilli(xs[len(xs)-1])
			c.SetTimeWindow(last.Add(-preset.span), last)
		})
		entries[i] = entry
	}
	windowButton.ClickedEvent.AddHandler(func(_ any) {
		openToolbarMenu(windowButton.GetWidget(), app.ui, entries...)
	})
	return windowButton
}

func newToolbarButton(label string) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.Transparent),
			Hover:   image.NewNineSliceColor(settings.MenuButtonHoverBg),
			Pressed: image.NewNineSliceColor(settings.MenuButtonClickBg),
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Text(label, settings.FontSM, &widget.ButtonTextColor{
			Idle:     color.White,
			Disabled: colornames.Gray,
			Hover:    color.Black,
			Pressed:  color.Black,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Top:    4,
			Left:   12,
			Right:  12,
			Bottom: 4,
		}),
	)
}

func newToolbarMenuEntry(label string) *widget.Button {
	// Create a button for a menu entry.
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.Transparent),
			Hover:   image.NewNineSliceColor(settings.MenuButtonHoverBg),
			Pressed: image.NewNineSliceColor(colornames.White),
		}),
		widget.ButtonOpts.Text(label, settings.FontSM, &widget.ButtonTextColor{
			Idle:     color.White,
			Disabled: colornames.Gray,
			Hover:    color.Black,
			Pressed:  color.Black,
		}),
		widget.ButtonOpts.TextPosition(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.ButtonOpts.TextPadding(widget.Insets{Left: 16, Right: 16}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Top:    4,
			Left:   12,
			Right:  12,
			Bottom: 4,
		}),
	)
}

func openToolbarMenu(opener *widget.Widget, ui *ebitenui.UI, entries ...*widget.Button) {
	c := widget.NewContainer(
		// Set the background to a translucent black.
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(settings.BackgroundColor)),

		// Menu entries should be arranged vertically.
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
				widget.RowLayoutOpts.Padding(widget.Insets{Top: 1, Bottom: 1}),
			),
		),

		// Set the minimum size for the menu.
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 0)),
	)

	for _, entry := range entries {
		c.AddChild(entry)
	}

	w, h := c.PreferredSize()

	window := widget.NewWindow(
		// Set the menu to be a modal. This makes it block UI interactions to anything ese.
		widget.WindowOpts.Modal(),
		widget.WindowOpts.Contents(c),

		// Close the menu if the user clicks outside of it.
		widget.WindowOpts.CloseMode(widget.CLICK),

		// Position the menu below the menu button that it belongs to.
		widget.WindowOpts.Location(
			img.Rect(
				opener.Rect.Min.X,
				opener.Rect.Min.Y+opener.Rect.Max.Y,
				opener.Rect.Min.X+w,
				opener.Rect.Min.Y+opener.Rect.Max.Y+opener.Rect.Min.Y+h,
			),
		),
	)

	// Immediately add the menu to the UI.
	ui.AddWindow(window)
}
