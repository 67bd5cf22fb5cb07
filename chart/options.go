package chart

import (
	"image/color"
	"time"

	"chartscope/format"

	"golang.org/x/exp/shiny/materialdesign/colornames"
)

type Theme struct {
	Grid        color.Color
	Label       color.Color
	ScopeMask   color.Color
	ScopeFrame  color.Color
	DetailsBox  color.Color
	DetailsText color.Color
	Background  color.Color
}

var DefaultTheme = Theme{
	Grid:        color.NRGBA{R: 0x29, G: 0x3a, B: 0x4c, A: 0xff},
	Label:       colornames.BlueGrey300,
	ScopeMask:   color.NRGBA{R: 0x1a, G: 0x20, B: 0x2a, A: 0xb0},
	ScopeFrame:  color.NRGBA{R: 0x56, G: 0x6f, B: 0x86, A: 0xc0},
	DetailsBox:  color.NRGBA{R: 0x17, G: 0x1a, B: 0x20, A: 0xf0},
	DetailsText: colornames.White,
	Background:  color.NRGBA{R: 0x17, G: 0x1a, B: 0x20, A: 0xff},
}

type Options struct {
	Padding         Padding
	OverviewPadding Padding
	// Ratio is the drawable height of the detailed view relative to its width.
	Ratio         float64
	OverviewRatio float64

	LineWidth         float32
	OverviewLineWidth float32
	XLabels           int
	YLines            int
	// ScopeStroke is the width of the scope's vertical resize handles.
	ScopeStroke  float64
	ScopeHStroke float64

	Duration time.Duration
	Debounce time.Duration
	Window   *Window

	Theme     Theme
	Formatter format.Formatter
	Clock     func() time.Time
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Padding:           Padding{Top: 20, Bottom: 30, Left: 16, Right: 16},
		OverviewPadding:   Padding{Top: 2, Bottom: 2},
		Ratio:             0.5,
		OverviewRatio:     0.1,
		LineWidth:         2,
		OverviewLineWidth: 1,
		XLabels:           6,
		YLines:            5,
		ScopeStroke:       8,
		ScopeHStroke:      2,
		Duration:          300 * time.Millisecond,
		Debounce:          DefaultDebounce,
		Theme:             DefaultTheme,
		Clock:             time.Now,
	}
}

func WithPadding(p Padding) Option {
	return func(o *Options) { o.Padding = p }
}

func WithOverviewPadding(p Padding) Option {
	return func(o *Options) { o.OverviewPadding = p }
}

func WithRatio(detailed, overview float64) Option {
	return func(o *Options) {
		if detailed > 0 {
			o.Ratio = detailed
		}
		if overview > 0 {
			o.OverviewRatio = overview
		}
	}
}

func WithLineWidth(w float32) Option {
	return func(o *Options) {
		if w > 0 {
			o.LineWidth = w
		}
	}
}

// WithLabels sets the number of time labels and value gridlines.
func WithLabels(xLabels, yLines int) Option {
	return func(o *Options) {
		if xLabels > 0 {
			o.XLabels = xLabels
		}
		if yLines > 0 {
			o.YLines = yLines
		}
	}
}

func WithScopeStroke(vertical, horizontal float64) Option {
	return func(o *Options) {
		o.ScopeStroke = vertical
		o.ScopeHStroke = horizontal
	}
}

func WithDuration(d time.Duration) Option {
	return func(o *Options) { o.Duration = d }
}

func WithDebounce(d time.Duration) Option {
	return func(o *Options) { o.Debounce = d }
}

// WithWindow sets the initial visible index window.
func WithWindow(left, right int) Option {
	return func(o *Options) { o.Window = &Window{Left: left, Right: right} }
}

func WithTheme(t Theme) Option {
	return func(o *Options) { o.Theme = t }
}

func WithFormatter(f format.Formatter) Option {
	return func(o *Options) { o.Formatter = f }
}

// WithLocale formats labels for the given BCP 47 language tag.
func WithLocale(tag string) Option {
	return func(o *Options) { o.Formatter = format.New(tag) }
}

func WithClock(clock func() time.Time) Option {
	return func(o *Options) { o.Clock = clock }
}
