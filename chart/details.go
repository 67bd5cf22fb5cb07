package chart

import (
	"chartscope/event"
	"chartscope/format"
)

const (
	markerRadius  = 4
	detailsPad    = 8
	detailsOffset = 16
	detailsGap    = 4
)

// Details draws the tooltip for the hovered index: a vertical guide, a
// marker on every visible line and a box with the date and values.
type Details struct {
	surface *Surface
	format  format.Formatter
	theme   Theme

	payload event.Details
	drawFn  DrawFunc
}

func NewDetails(s *Surface, n *Notifier, f format.Formatter, theme Theme) *Details {
	d := &Details{surface: s, format: f, theme: theme}
	d.drawFn = d.Draw
	if n != nil {
		n.Subscribe(event.ToggleDetails, d.onToggle)
	}
	return d
}

func (d *Details) Surface() *Surface { return d.surface }

// Shown returns the payload currently on screen.
func (d *Details) Shown() event.Details { return d.payload }

func (d *Details) onToggle(p any) {
	ev, ok := p.(event.Details)
	if !ok {
		return
	}
	d.payload = ev
	d.surface.Animate(d.drawFn, 0)
}

func (d *Details) Draw(_ float64) {
	s := d.surface
	c := s.Canvas()
	c.Clear()
	if !d.payload.Show {
		return
	}
	x := d.payload.X
	c.StrokeLine(float32(x), float32(s.Top()), float32(x), float32(s.Bottom()), 1, d.theme.Grid)
	for _, l := range d.payload.Lines {
		c.FillCircle(float32(x), float32(l.Y), markerRadius, d.theme.Background)
		c.StrokeCircle(float32(x), float32(l.Y), markerRadius, 2, l.Color)
	}
	d.drawBox(x)
}

func (d *Details) drawBox(x float64) {
	s := d.surface
	c := s.Canvas()

	title := d.format.Title(d.payload.Unix)
	rows := make([]string, len(d.payload.Lines))
	boxW, lineH := c.MeasureText(title)
	for i, l := range d.payload.Lines {
		rows[i] = d.format.Value(l.Value) + "  " + l.Title
		w, h := c.MeasureText(rows[i])
		boxW = max(boxW, w)
		lineH = max(lineH, h)
	}
	boxW += 2 * detailsPad
	boxH := 2*detailsPad + float64(len(rows)+1)*(lineH+detailsGap) - detailsGap

	bx := x + detailsOffset
	if bx+boxW > s.Right() {
		bx = x - detailsOffset - boxW
	}
	if bx < s.Left() {
		bx = s.Left()
	}
	by := s.Top()

	c.FillRect(float32(bx), float32(by), float32(boxW), float32(boxH), d.theme.DetailsBox)
	ty := by + detailsPad
	c.Text(title, bx+detailsPad, ty, d.theme.DetailsText, AlignLeft)
	for i, l := range d.payload.Lines {
		ty += lineH + detailsGap
		c.Text(rows[i], bx+detailsPad, ty, l.Color, AlignLeft)
	}
}
