package chart

import "math"

// Frame maps data indices and values onto a surface's pixel space:
//
//	x(i) = (i - left) * Step + originX
//	y(v) = bottom - (v - min) * Ratio
//
// Every renderer goes through a Frame so points, gridlines and the cursor
// stay pixel aligned.
type Frame struct {
	Step  float64
	Ratio float64

	left    float64
	min     float64
	originX float64
	bottom  float64
}

// MapFrame builds a Frame for a drawable area starting at originX with the
// given width, bottom edge and height. Zero or non-finite ranges map to a
// zero step or ratio.
func MapFrame(originX, width, bottom, height, left, right, min, max float64) Frame {
	f := Frame{left: left, min: min, originX: originX, bottom: bottom}
	if span := right - left; span > 0 && !math.IsInf(span, 0) {
		f.Step = width / span
	}
	if span := max - min; span > 0 && !math.IsInf(span, 0) {
		f.Ratio = height / span
	}
	if math.IsInf(min, 0) || math.IsNaN(min) {
		f.min = 0
	}
	return f
}

// Frame maps [left, right] x [min, max] onto the surface's drawable area.
func (s *Surface) Frame(left, right, min, max float64) Frame {
	return MapFrame(s.Left(), s.DrawableWidth(), s.Bottom(), s.DrawableHeight(), left, right, min, max)
}

func (f Frame) X(index float64) float64 {
	return (index-f.left)*f.Step + f.originX
}

func (f Frame) Y(value float64) float64 {
	return f.bottom - (value-f.min)*f.Ratio
}

// Index is the nearest data index at pixel x.
func (f Frame) Index(x float64) int {
	if f.Step == 0 {
		return int(math.Round(f.left))
	}
	return int(math.Round(f.left + (x-f.originX)/f.Step))
}

// Value is the data value at pixel y.
func (f Frame) Value(y float64) float64 {
	if f.Ratio == 0 {
		return f.min
	}
	return f.min + (f.bottom-y)/f.Ratio
}
