package settings

import (
	"bytes"
	"image/color"

	"chartscope/chart"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	Scale = float32(ebiten.Monitor().DeviceScaleFactor())

	// Colors
	Black = color.RGBA{12, 14, 17, 255}
	Grey  = color.RGBA{52, 59, 71, 255}
	Green = color.RGBA{45, 189, 133, 255}

	ColorPrimary        = colornames.Orange300
	ColorPrimaryLighter = colornames.Orange100
	ColorPrimaryDarker  = colornames.Orange600

	// APP
	BackgroundColor  = Black
	BackgroundColor2 = color.RGBA{23, 26, 32, 255}

	// App header
	AppHeaderHeight = 40 * Scale

	// App footer
	AppFooterHeight = 24 * Scale

	PanelBackgroundColor = BackgroundColor2
	PanelHeaderHeight    = 40 * Scale
	PanelPadding         = 12 * Scale

	// Chart
	ChartOverviewGap = int(12 * Scale)
	ChartMinWidth    = int(320 * Scale)
	ChartTheme       = chart.Theme{
		Grid:        Grey,
		Label:       colornames.BlueGrey300,
		ScopeMask:   color.NRGBA{R: 12, G: 14, B: 17, A: 0xb0},
		ScopeFrame:  color.NRGBA{R: 0x56, G: 0x6f, B: 0x86, A: 0xc0},
		DetailsBox:  BackgroundColor2,
		DetailsText: colornames.White,
		Background:  PanelBackgroundColor,
	}
	SeriesHiddenColor = colornames.Grey600

	// Locales offered by the chart toolbar.
	Locales = []string{"en", "de", "fr", "es", "ru"}

	FontSM   text.Face
	FontBase text.Face

	// Buttons
	ScopeButton = ebiten.MouseButton0

	MenuButtonHoverBg = colornames.Orange300
	MenuButtonClickBg = colornames.Orange600
)

func init() {
	var err error
	if FontSM, err = LoadFont(12); err != nil {
		log.Fatal(err)
	}
	if FontBase, err = LoadFont(13); err != nil {
		log.Fatal(err)
	}
}

func LoadFont(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}

	return &text.GoTextFace{
		Source: s,
		Size:   size * float64(Scale),
	}, nil
}
