package chart

import (
	"image/color"
	"time"

	"chartscope/dataset"
)

type drawOp struct {
	kind string
	args []float32
	text string
	clr  color.Color
}

// recCanvas records the draw calls made since the last Clear.
type recCanvas struct {
	w, h    int
	resizes int
	clears  int
	ops     []drawOp
}

func (c *recCanvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.resizes++
}

func (c *recCanvas) Size() (int, int) { return c.w, c.h }

func (c *recCanvas) Clear() {
	c.clears++
	c.ops = c.ops[:0]
}

func (c *recCanvas) Polyline(pts []float32, width float32, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "polyline", args: append([]float32(nil), pts...), clr: clr})
}

func (c *recCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "line", args: []float32{x0, y0, x1, y1}, clr: clr})
}

func (c *recCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", args: []float32{x, y, w, h}, clr: clr})
}

func (c *recCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "circle", args: []float32{cx, cy, r}, clr: clr})
}

func (c *recCanvas) StrokeCircle(cx, cy, r, width float32, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "ring", args: []float32{cx, cy, r}, clr: clr})
}

func (c *recCanvas) Text(s string, x, y float64, clr color.Color, align Align) {
	c.ops = append(c.ops, drawOp{kind: "text", args: []float32{float32(x), float32(y)}, text: s, clr: clr})
}

func (c *recCanvas) MeasureText(s string) (float64, float64) {
	return float64(6 * len(s)), 12
}

func (c *recCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (c *recCanvas) texts() []string {
	var out []string
	for _, op := range c.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

type canvases map[Kind]*recCanvas

func (cs canvases) factory(kind Kind) Canvas {
	c := &recCanvas{}
	cs[kind] = c
	return c
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// testDataset has ten daily samples: y0 rises, y1 is a spike at index 7.
func testDataset() *dataset.Dataset {
	start := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	x := make([]int64, 10)
	for i := range x {
		x[i] = start + int64(i)*24*60*60*1000
	}
	return dataset.New(x,
		&dataset.Series{Name: "y0", Title: "Joined", Data: []float64{5, 10, 12, 8, 20, 16, 30, 25, 40, 35}, Visible: true},
		&dataset.Series{Name: "y1", Title: "Left", Data: []float64{1, 2, 3, 4, 5, 6, 7, 900, 9, 10}, Visible: true},
	)
}

func newTestSurface(kind Kind, p Padding, ratio float64, clk *fakeClock) (*Surface, *recCanvas) {
	c := &recCanvas{}
	return NewSurface(kind, c, p, ratio, clk.Now), c
}

// settle ticks until no surface is animating.
func settle(clk *fakeClock, tick func(time.Time) bool) {
	for i := 0; i < 100; i++ {
		if !tick(clk.Advance(50 * time.Millisecond)) {
			return
		}
	}
}
