package dataset

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/tidwall/btree"
	"github.com/valyala/fastjson"
)

var (
	ErrNoXAxis         = errors.New("dataset: no x axis column")
	ErrLengthMismatch  = errors.New("dataset: column length mismatch")
	ErrEmptyColumn     = errors.New("dataset: empty column")
	ErrNoSeries        = errors.New("dataset: no series columns")
	ErrTooFewSamples   = errors.New("dataset: at least two samples required")
	errMalformedColumn = errors.New("dataset: malformed column")
)

// Series is one named line. Data is aligned with Dataset.X and never
// mutated after Parse.
type Series struct {
	Name    string
	Title   string
	Hex     string
	Color   color.Color
	Data    []float64
	Visible bool
}

type Dataset struct {
	// X holds unix millisecond timestamps shared by every series.
	X      []int64
	Series []*Series

	byName map[string]*Series
	index  *btree.Map[int64, int]
}

// New builds a Dataset from already normalized columns.
func New(x []int64, series ...*Series) *Dataset {
	ds := &Dataset{
		X:      x,
		Series: series,
		byName: make(map[string]*Series, len(series)),
		index:  btree.NewMap[int64, int](0),
	}
	for _, s := range series {
		if s.Title == "" {
			s.Title = s.Name
		}
		if s.Color == nil {
			s.Color = DefaultColor(s.Name)
		}
		ds.byName[s.Name] = s
	}
	for i, ts := range x {
		ds.index.Set(ts, i)
	}
	return ds
}

func (d *Dataset) Len() int { return len(d.X) }

func (d *Dataset) Lookup(name string) (*Series, bool) {
	s, ok := d.byName[name]
	return s, ok
}

// IndexOf returns the index of the last sample at or before unixMilli,
// or 0 when unixMilli precedes the first sample.
func (d *Dataset) IndexOf(unixMilli int64) int {
	idx := 0
	d.index.Descend(unixMilli, func(_ int64, i int) bool {
		idx = i
		return false
	})
	return idx
}

func Load(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse normalizes the columnar chart format:
//
//	{
//	  "columns": [["x", 1542412800000, ...], ["y0", 37, ...]],
//	  "types":   {"y0": "line", "x": "x"},
//	  "names":   {"y0": "Joined"},
//	  "colors":  {"y0": "#3DC23F"}
//	}
//
// The x axis is the column typed "x" or, without types, the column whose id
// is not a named series.
func Parse(b []byte) (*Dataset, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(b)
	if err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", err)
	}

	names := stringMap(v.GetObject("names"))
	colors := stringMap(v.GetObject("colors"))
	types := stringMap(v.GetObject("types"))

	var (
		xs     []int64
		series []*Series
		xFound bool
	)
	for _, col := range v.GetArray("columns") {
		cells, err := col.Array()
		if err != nil || len(cells) == 0 {
			return nil, errMalformedColumn
		}
		id := string(cells[0].GetStringBytes())
		if id == "" {
			return nil, fmt.Errorf("%w: missing id", errMalformedColumn)
		}
		samples := cells[1:]
		if len(samples) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyColumn, id)
		}

		if isXAxis(id, types, names) {
			if xFound {
				return nil, fmt.Errorf("%w: duplicate x axis %s", errMalformedColumn, id)
			}
			xFound = true
			xs = make([]int64, len(samples))
			for i, c := range samples {
				ts, err := c.Int64()
				if err != nil {
					f, ferr := c.Float64()
					if ferr != nil {
						return nil, fmt.Errorf("%w: %s[%d]: %v", errMalformedColumn, id, i, err)
					}
					ts = int64(f)
				}
				xs[i] = ts
			}
			continue
		}

		s := &Series{
			Name:    id,
			Title:   id,
			Data:    make([]float64, len(samples)),
			Visible: true,
		}
		if t, ok := names[id]; ok {
			s.Title = t
		}
		s.Hex = colors[id]
		if c, ok := ParseColor(s.Hex); ok {
			s.Color = c
		} else {
			s.Color = DefaultColor(id)
		}
		for i, c := range samples {
			f, err := c.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %v", errMalformedColumn, id, i, err)
			}
			s.Data[i] = f
		}
		series = append(series, s)
	}

	if !xFound {
		return nil, ErrNoXAxis
	}
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	if len(xs) < 2 {
		return nil, ErrTooFewSamples
	}
	for _, s := range series {
		if len(s.Data) != len(xs) {
			return nil, fmt.Errorf("%w: %s has %d samples, x has %d", ErrLengthMismatch, s.Name, len(s.Data), len(xs))
		}
	}
	return New(xs, series...), nil
}

func isXAxis(id string, types, names map[string]string) bool {
	if t, ok := types[id]; ok {
		return t == "x"
	}
	if len(names) > 0 {
		_, named := names[id]
		return !named
	}
	return id == "x"
}

func stringMap(o *fastjson.Object) map[string]string {
	m := map[string]string{}
	if o == nil {
		return m
	}
	o.Visit(func(key []byte, v *fastjson.Value) {
		m[string(key)] = string(v.GetStringBytes())
	})
	return m
}
