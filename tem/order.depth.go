package tem

import "github.com/maseology/mmaths/slice"

// OrderByDepth groups the frame cells of the flow forest by receiver-chain
// depth: roots at depth 0, every donor one deeper than its receiver. Because
// each cell has a single receiver the grouping is identical to the
// level-synchronous search of OrderSerial, which makes it a useful
// cross-check; cell order within a depth class is unspecified.
func (t *Flow) OrderByDepth() [][]int {
	cnt := make(map[int]int, (t.W-2)*(t.H-2))
	path := make([]int, 0, 64)

	for y := 1; y < t.H-1; y++ {
		for x := 1; x < t.W-1; x++ {
			c := y*t.W + x
			path = path[:0]
			for {
				if _, ok := cnt[c]; ok {
					break
				}
				if t.Rec[c] == Sink {
					cnt[c] = 0
					break
				}
				path = append(path, c)
				c = c + t.Nshift[t.Rec[c]]
			}
			d := cnt[c]
			for i := len(path) - 1; i >= 0; i-- {
				d++
				cnt[path[i]] = d
			}
		}
	}

	mord, lord := slice.InvertMap(cnt)
	ord := make([][]int, len(lord))
	for i, k := range lord {
		cpy := make([]int, len(mord[k]))
		copy(cpy, mord[k])
		ord[i] = cpy
	}
	return ord
}
