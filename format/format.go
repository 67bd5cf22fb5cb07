package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter turns axis samples into label text.
type Formatter interface {
	// Axis is the short label under the time axis.
	Axis(unixMilli int64) string
	// Title heads the details popup.
	Title(unixMilli int64) string
	// Value labels gridlines and popup values.
	Value(v float64) string
}

type Locale struct {
	tag     language.Tag
	printer *message.Printer
	loc     *time.Location
}

// New returns a Formatter for the BCP 47 tag. Unknown tags fall back to
// English. Times are rendered in UTC.
func New(tag string) *Locale {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return &Locale{
		tag:     t,
		printer: message.NewPrinter(t),
		loc:     time.UTC,
	}
}

func (l *Locale) Tag() language.Tag { return l.tag }

func (l *Locale) Axis(ms int64) string {
	return time.UnixMilli(ms).In(l.loc).Format("Jan 2")
}

func (l *Locale) Title(ms int64) string {
	return time.UnixMilli(ms).In(l.loc).Format("Mon, Jan 2")
}

func (l *Locale) Value(v float64) string {
	abs := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case math.IsInf(v, 0) || math.IsNaN(v):
		return "-"
	case abs >= 1_000_000:
		return l.printer.Sprintf("%.1fM", v/1_000_000)
	case abs >= 10_000:
		return l.printer.Sprintf("%.1fk", v/1_000)
	case v == math.Trunc(v):
		return l.printer.Sprintf("%d", int64(v))
	case abs < 1:
		return l.printer.Sprintf("%.3f", v)
	default:
		return l.printer.Sprintf("%.2f", v)
	}
}
