package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func DrawText(screen *ebiten.Image, str string, font text.Face, x, y float64, color color.Color) {
	ops := text.DrawOptions{}
	ops.GeoM.Translate(x, y)
	ops.ColorScale.ScaleWithColor(color)
	text.Draw(screen, str, font, &ops)
}
