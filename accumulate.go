package fastscape

import (
	"sync"

	"github.com/maseology/fastscape/tem"
)

// resetAccum reseeds every cell, halo included, with its own area.
func (d *Domain) resetAccum() {
	for i := range d.Accum {
		d.Accum[i] = d.Par.Acell
	}
}

// accumulate computes drainage area over one ordering shard by walking its
// levels from the headwaters down, each cell pulling the totals of its
// donors. Donors sit one level higher and are final by the time their
// receiver reads them; each cell writes only its own total, so levels may be
// split across workers without atomics.
func (d *Domain) accumulate(o *tem.Order) {
	top := d.Top
	for li := o.Nlevels() - 1; li >= 0; li-- {
		for _, c := range o.Level(li) {
			for k := 0; k < top.Ndon[c]; k++ {
				d.Accum[c] += d.Accum[top.Donor[8*c+k]]
			}
		}
	}
}

// accumulateConc is the within-level concurrent form used with a single-stack
// ordering: a barrier separates levels, chunks of one level fan out.
func (d *Domain) accumulateConc(o *tem.Order, nw int) {
	top := d.Top
	var wg sync.WaitGroup
	for li := o.Nlevels() - 1; li >= 0; li-- {
		lvl := o.Level(li)
		for _, chk := range chunks(len(lvl), nw) {
			wg.Add(1)
			go func(cells []int) {
				defer wg.Done()
				for _, c := range cells {
					for k := 0; k < top.Ndon[c]; k++ {
						d.Accum[c] += d.Accum[top.Donor[8*c+k]]
					}
				}
			}(lvl[chk[0]:chk[1]])
		}
		wg.Wait()
	}
}

// chunks splits [0,n) into at most nw near-equal half-open intervals.
func chunks(n, nw int) [][2]int {
	if n == 0 {
		return nil
	}
	if nw < 1 {
		nw = 1
	}
	sz := (n + nw - 1) / nw
	out := make([][2]int, 0, nw)
	for i := 0; i < n; i += sz {
		j := i + sz
		if j > n {
			j = n
		}
		out = append(out, [2]int{i, j})
	}
	return out
}
