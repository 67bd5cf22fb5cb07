package chart

import (
	"math"

	"chartscope/dataset"
)

// Window is the visible index range, inclusive on both ends.
type Window struct {
	Left, Right int
}

func (w Window) Width() int { return w.Right - w.Left }

// normalize clamps w into [1, n-1] keeping Right-Left >= 1.
func (w Window) normalize(n int) Window {
	if n < 3 {
		return Window{Left: 0, Right: max(1, n-1)}
	}
	w.Left = min(max(w.Left, 1), n-2)
	w.Right = min(max(w.Right, w.Left+1), n-1)
	return w
}

type Bounds struct {
	Min, Max float64
}

func emptyBounds() Bounds {
	return Bounds{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Empty reports whether no sample contributed to the bounds.
func (b Bounds) Empty() bool { return b.Min > b.Max }

// scanBounds tracks the running min and max of every visible series over
// data[from:to]. Both comparisons run for every sample so a sample that
// raises the max can still lower the min.
func scanBounds(series []*dataset.Series, from, to int) Bounds {
	b := emptyBounds()
	for _, s := range series {
		if !s.Visible {
			continue
		}
		lo, hi := max(from, 0), min(to, len(s.Data))
		for _, v := range s.Data[lo:max(lo, hi)] {
			if v > b.Max {
				b.Max = v
			}
			if v < b.Min {
				b.Min = v
			}
		}
	}
	return b
}

// detailedBounds covers the inclusive window [left, right].
func detailedBounds(series []*dataset.Series, w Window) Bounds {
	return scanBounds(series, w.Left, w.Right+1)
}

// overviewBounds covers [left, right), right exclusive. The chart passes
// [0, N) so every sample the overview draws is inside the bounds.
func overviewBounds(series []*dataset.Series, w Window) Bounds {
	return scanBounds(series, w.Left, w.Right)
}
