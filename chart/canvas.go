package chart

import (
	"image/color"
	"math"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is the pixel buffer a Surface draws into. The app backs it with an
// *ebiten.Image; tests use a recording fake.
type Canvas interface {
	Resize(w, h int)
	Size() (w, h int)
	Clear()
	// Polyline strokes the connected points (x0, y0, x1, y1, ...).
	Polyline(pts []float32, width float32, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	FillRect(x, y, w, h float32, clr color.Color)
	FillCircle(cx, cy, r float32, clr color.Color)
	StrokeCircle(cx, cy, r, width float32, clr color.Color)
	Text(s string, x, y float64, clr color.Color, align Align)
	MeasureText(s string) (w, h float64)
}

// CanvasFactory creates the canvas backing a surface of the given kind.
type CanvasFactory func(kind Kind) Canvas

// withAlpha scales the alpha of c by a in [0, 1].
func withAlpha(c color.Color, a float64) color.Color {
	if a >= 1 {
		return c
	}
	if a <= 0 || math.IsNaN(a) {
		return color.NRGBA{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * a)
	return n
}
