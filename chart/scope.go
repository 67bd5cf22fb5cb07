package chart

import (
	"math"

	"chartscope/event"
)

// Cursor is the pointer shape a surface asks for.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResize
)

type scopeZone int

const (
	zoneNone scopeZone = iota
	zoneInside
	zoneLeftEdge
	zoneRightEdge
)

// indexEpsilon absorbs float error when pixel positions derived from an
// index window are converted back.
const indexEpsilon = 1e-9

// ScopeSelector is the draggable and resizable window over the overview.
// Its pixel edges translate to the detailed view's index window.
type ScopeSelector struct {
	surface  *Surface
	notifier *Notifier
	maxIndex int
	stroke   float64
	hstroke  float64
	theme    Theme

	start float64
	end   float64

	canDrag      bool
	shouldDrag   bool
	canResize    bool
	shouldResize bool
	leftSide     bool
	cursor       Cursor

	drawFn DrawFunc
}

func NewScopeSelector(s *Surface, n *Notifier, maxIndex int, stroke, hstroke float64, theme Theme) *ScopeSelector {
	sc := &ScopeSelector{
		surface:  s,
		notifier: n,
		maxIndex: maxIndex,
		stroke:   stroke,
		hstroke:  hstroke,
		theme:    theme,
	}
	sc.drawFn = sc.Draw
	return sc
}

func (sc *ScopeSelector) Surface() *Surface { return sc.surface }
func (sc *ScopeSelector) Cursor() Cursor    { return sc.cursor }

// Edges returns the scope's left and right pixel positions.
func (sc *ScopeSelector) Edges() (start, end float64) { return sc.start, sc.end }

func (sc *ScopeSelector) canvasWidth() float64 { return float64(sc.surface.Width()) }

func (sc *ScopeSelector) ratio() float64 {
	w := sc.canvasWidth()
	if w <= 0 {
		return 0
	}
	return float64(sc.maxIndex) / w
}

// Window converts the pixel edges to an index window: the left edge maps to
// floor(1 + ratio*start), the right edge to floor(ratio*end).
func (sc *ScopeSelector) Window() Window {
	r := sc.ratio()
	return Window{
		Left:  int(math.Floor(1 + r*sc.start + indexEpsilon)),
		Right: int(math.Floor(r*sc.end + indexEpsilon)),
	}
}

// SetWindow positions the edges from an index window and redraws.
func (sc *ScopeSelector) SetWindow(w Window) {
	r := sc.ratio()
	if r == 0 {
		sc.start, sc.end = 0, 0
	} else {
		sc.start = float64(w.Left-1) / r
		sc.end = float64(w.Right) / r
	}
	sc.surface.Animate(sc.drawFn, 0)
}

func (sc *ScopeSelector) zone(x float64) scopeZone {
	switch {
	case x >= sc.start && x <= sc.start+sc.stroke:
		return zoneLeftEdge
	case x >= sc.end-sc.stroke && x <= sc.end:
		return zoneRightEdge
	case x > sc.start && x < sc.end:
		return zoneInside
	default:
		return zoneNone
	}
}

// MouseDown engages a drag or a resize depending on where x falls.
func (sc *ScopeSelector) MouseDown(x float64) {
	sc.shouldDrag, sc.shouldResize = false, false
	switch sc.zone(x) {
	case zoneInside:
		sc.shouldDrag = true
	case zoneLeftEdge:
		sc.shouldResize = true
		sc.leftSide = true
	case zoneRightEdge:
		sc.shouldResize = true
		sc.leftSide = false
	}
}

func (sc *ScopeSelector) MouseUp() {
	sc.shouldDrag = false
	sc.shouldResize = false
}

func (sc *ScopeSelector) MouseLeave() {
	sc.MouseUp()
	sc.canDrag, sc.canResize = false, false
	sc.cursor = CursorDefault
}

// MouseMove updates the hover state at x and applies dx to an engaged drag
// or resize.
func (sc *ScopeSelector) MouseMove(x, dx float64) {
	z := sc.zone(x)
	sc.canDrag = z == zoneInside
	sc.canResize = z == zoneLeftEdge || z == zoneRightEdge
	switch {
	case sc.shouldResize || (!sc.shouldDrag && sc.canResize):
		sc.cursor = CursorResize
	case sc.shouldDrag || sc.canDrag:
		sc.cursor = CursorMove
	default:
		sc.cursor = CursorDefault
	}

	if dx == 0 {
		return
	}
	var changed bool
	if sc.shouldDrag {
		changed = sc.drag(dx)
	} else if sc.shouldResize {
		changed = sc.resize(dx)
	}
	if !changed {
		return
	}
	sc.surface.Animate(sc.drawFn, 0)
	if sc.notifier != nil {
		w := sc.Window()
		sc.notifier.Notify(event.ChangeRange, event.Range{Start: w.Left, End: w.Right})
	}
}

func (sc *ScopeSelector) drag(dx float64) bool {
	width := sc.end - sc.start
	start := sc.start + dx
	if start < 0 {
		start = 0
	}
	if start+width > sc.canvasWidth() {
		start = sc.canvasWidth() - width
	}
	if start == sc.start {
		return false
	}
	sc.start = start
	sc.end = start + width
	return true
}

func (sc *ScopeSelector) resize(dx float64) bool {
	w := sc.canvasWidth()
	if sc.leftSide {
		start := math.Min(w, math.Max(0, sc.start+dx))
		if sc.end-start < 2*sc.stroke || start == sc.start {
			return false
		}
		sc.start = start
		return true
	}
	end := math.Min(w, math.Max(0, sc.end+dx))
	if end-sc.start < 2*sc.stroke || end == sc.end {
		return false
	}
	sc.end = end
	return true
}

func (sc *ScopeSelector) Draw(_ float64) {
	s := sc.surface
	c := s.Canvas()
	c.Clear()
	w, h := float32(s.Width()), float32(s.Height())
	start, end := float32(sc.start), float32(sc.end)
	stroke, hstroke := float32(sc.stroke), float32(sc.hstroke)

	c.FillRect(0, 0, start, h, sc.theme.ScopeMask)
	c.FillRect(end, 0, w-end, h, sc.theme.ScopeMask)

	c.FillRect(start, 0, stroke, h, sc.theme.ScopeFrame)
	c.FillRect(end-stroke, 0, stroke, h, sc.theme.ScopeFrame)
	inner := end - start - 2*stroke
	if inner > 0 {
		c.FillRect(start+stroke, 0, inner, hstroke, sc.theme.ScopeFrame)
		c.FillRect(start+stroke, h-hstroke, inner, hstroke, sc.theme.ScopeFrame)
	}
}
