package tem

import "math"

// Sink marks a cell with no downslope neighbour; such cells root the flow
// forest.
const Sink = -1

// Order is one topologically-ordered traversal of (a part of) the flow
// forest: Stack holds cell ids, receivers always ahead of their donors, and
// Levels holds the prefix boundaries of mutually-independent cell sets.
// Levels is strictly increasing and its last entry equals len(Stack).
type Order struct {
	Stack  []int
	Levels []int
}

// Level returns the cells of the k-th level slice.
func (o *Order) Level(k int) []int { return o.Stack[o.Levels[k]:o.Levels[k+1]] }

// Nlevels number of level slices
func (o *Order) Nlevels() int { return len(o.Levels) - 1 }

// Flow is the topologic elevation model of a raster DEM: single
// steepest-descent receiver per cell, the donor inversion of those receivers,
// and level-partitioned topological orderings of the resulting forest. All
// arrays are allocated once and rewritten every step.
//
// Neighbour directions are numbered
//
//	1 2 3
//	0   4
//	7 6 5
//
// so that direction d and d^4 are opposites.
type Flow struct {
	Nshift [8]int     // index offset to each neighbour
	Dr     [8]float64 // distance to each neighbour [cell widths]
	Rec    []int      // receiver direction per cell (0-7), Sink where none
	Ndon   []int      // donor count per cell
	Donor  []int      // donor cell ids, 8 slots per cell, first Ndon[c] valid
	Ord    []Order    // current ordering; one entry per shard

	W, H, Size    int
	stack, levels []int // backing arrays shared by the Ord builders
}

// NewFlow allocates the flow model of a WxH raster.
func NewFlow(w, h int) *Flow {
	size := w * h
	t := &Flow{
		Nshift: [8]int{-1, -w - 1, -w, -w + 1, 1, w + 1, w, w - 1},
		Dr:     [8]float64{1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2},
		Rec:    make([]int, size),
		Ndon:   make([]int, size),
		Donor:  make([]int, 8*size),
		stack:  make([]int, size),
		levels: make([]int, size+1),
		W:      w,
		H:      h,
		Size:   size,
	}
	for i := range t.Rec {
		t.Rec[i] = Sink
	}
	return t
}

// Downslope returns the receiving cell of c, or Sink where c roots the
// forest.
func (t *Flow) Downslope(c int) int {
	if t.Rec[c] == Sink {
		return Sink
	}
	return c + t.Nshift[t.Rec[c]]
}
