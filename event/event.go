package event

import "image/color"

// Name identifies a notification kind crossing the chart widget boundary.
type Name string

const (
	ToggleDetails Name = "toggleDetails"
	ChangeRange   Name = "changeRange"
	SeriaToggle   Name = "seriaToggle"
)

// Line is one series sample under the cursor.
type Line struct {
	Name  string
	Title string
	Color color.Color
	// Y is the pixel position of the sample on the detailed surface.
	Y     float64
	Value float64
}

// Details is the payload of ToggleDetails. X, Index, Unix and Lines are
// only meaningful when Show is true.
type Details struct {
	Show  bool
	X     float64
	Index int
	Unix  int64
	Lines []Line
}

// Range is the payload of ChangeRange: an inclusive index window.
type Range struct {
	Start int
	End   int
}

// Toggle is the payload of SeriaToggle.
type Toggle struct {
	Name  string
	Value bool
}
