package tem

// OrderSerial rebuilds the traversal order as a single stack: a
// level-synchronous breadth-first search over the donor graph, seeded by the
// frame cells with no receiver (the forest roots). Cells within one level sit
// at the same depth from the root set, so none receives from another and all
// may be processed concurrently once earlier levels are final.
func (t *Flow) OrderSerial() {
	n := 0
	t.levels[0] = 0

	for y := 1; y < t.H-1; y++ {
		for x := 1; x < t.W-1; x++ {
			c := y*t.W + x
			if t.Rec[c] == Sink {
				t.stack[n] = c
				n++
			}
		}
	}

	if n == 0 { // unreachable under the halo convention; kept for safety
		t.Ord = append(t.Ord[:0], Order{Stack: t.stack[:0], Levels: t.levels[:1]})
		return
	}

	t.levels[1] = n
	nl := 2

	bottom, top := 0, n
	for {
		for si := bottom; si < top; si++ {
			c := t.stack[si]
			for k := 0; k < t.Ndon[c]; k++ {
				t.stack[n] = t.Donor[8*c+k]
				n++
			}
		}
		if n == top { // no donors added; the forest is exhausted
			break
		}
		bottom, top = top, n
		t.levels[nl] = n
		nl++
	}

	if t.levels[nl-1] != n {
		panic("tem.OrderSerial: level boundaries do not close the stack")
	}
	t.Ord = append(t.Ord[:0], Order{Stack: t.stack[:n], Levels: t.levels[:nl]})
}
