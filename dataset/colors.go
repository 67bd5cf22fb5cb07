package dataset

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/tidwall/murmur3"
	material "golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/colornames"
)

var palette = []color.RGBA{
	material.Green500,
	material.Red400,
	material.Blue500,
	material.Amber600,
	material.Purple400,
	material.Teal400,
	material.DeepOrange400,
	material.Indigo300,
}

// DefaultColor picks a stable palette color for a series without one.
func DefaultColor(name string) color.Color {
	return palette[murmur3.Sum32Bytes([]byte(name))%uint32(len(palette))]
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa and SVG color names.
func ParseColor(s string) (color.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		return c, ok
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, true
}
