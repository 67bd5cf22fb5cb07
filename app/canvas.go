package app

import (
	"image"
	"image/color"

	"chartscope/chart"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// imageCanvas backs a chart surface with an offscreen ebiten image.
type imageCanvas struct {
	img  *ebiten.Image
	w, h int
	face text.Face

	vs []ebiten.Vertex
	is []uint16
}

func newCanvas(face text.Face) *imageCanvas {
	return &imageCanvas{face: face}
}

func (c *imageCanvas) Resize(w, h int) {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

func (c *imageCanvas) Size() (int, int) { return c.w, c.h }

func (c *imageCanvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *imageCanvas) Polyline(pts []float32, width float32, clr color.Color) {
	if c.img == nil || len(pts) < 4 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(pts[i], pts[i+1])
	}
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	r, g, b, a := clr.RGBA()
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(r) / 0xffff
		c.vs[i].ColorG = float32(g) / 0xffff
		c.vs[i].ColorB = float32(b) / 0xffff
		c.vs[i].ColorA = float32(a) / 0xffff
	}
	c.img.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, x0, y0, x1, y1, width, clr, true)
}

func (c *imageCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	if c.img == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.img, x, y, w, h, clr, false)
}

func (c *imageCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, cx, cy, r, clr, true)
}

func (c *imageCanvas) StrokeCircle(cx, cy, r, width float32, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.StrokeCircle(c.img, cx, cy, r, width, clr, true)
}

func (c *imageCanvas) Text(s string, x, y float64, clr color.Color, align chart.Align) {
	if c.img == nil {
		return
	}
	switch align {
	case chart.AlignCenter:
		w, _ := c.MeasureText(s)
		x -= w / 2
	case chart.AlignRight:
		w, _ := c.MeasureText(s)
		x -= w
	}
	DrawText(c.img, s, c.face, x, y, clr)
}

func (c *imageCanvas) MeasureText(s string) (float64, float64) {
	return text.Measure(s, c.face, c.face.Metrics().VLineGap)
}

// drawAt blits the canvas onto dst with its top left corner at p.
func (c *imageCanvas) drawAt(dst *ebiten.Image, p image.Point) {
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	dst.DrawImage(c.img, op)
}
