package fastscape

import (
	"math"
	"sync"

	"github.com/maseology/fastscape/tem"
)

// erodeCells applies the implicit stream-power update to a set of cells from
// one level. Each non-sink cell replaces its elevation with the root of
//
//	F(h) = h - h0 + K·Δt·A^m·(h - hn)^n / L^n
//
// found by Newton-Raphson from h0, where hn is its receiver's
// already-updated elevation. Receivers live in earlier levels, so reads and
// writes never collide within a level.
func (d *Domain) erodeCells(cells []int) {
	top, p := d.Top, &d.Par
	for _, c := range cells {
		if top.Rec[c] == tem.Sink {
			continue
		}
		n := c + top.Nshift[top.Rec[c]]
		length := top.Dr[top.Rec[c]]
		fact := p.K * p.Dt * math.Pow(d.Accum[c], p.M) / math.Pow(length, p.N)
		h0, hn := d.H[c], d.H[n]
		hnew, hp := h0, h0
		diff := 2 * p.Tol
		for math.Abs(diff) > p.Tol {
			hnew -= (hnew - h0 + fact*math.Pow(hnew-hn, p.N)) / (1. + fact*p.N*math.Pow(hnew-hn, p.N-1))
			diff = hnew - hp
			hp = hnew
		}
		d.H[c] = hnew
	}
}

// erode walks one ordering shard from its roots toward the headwaters.
func (d *Domain) erode(o *tem.Order) {
	for li := 0; li < o.Nlevels(); li++ {
		d.erodeCells(o.Level(li))
	}
}

// erodeConc is the within-level concurrent form used with a single-stack
// ordering.
func (d *Domain) erodeConc(o *tem.Order, nw int) {
	var wg sync.WaitGroup
	for li := 0; li < o.Nlevels(); li++ {
		lvl := o.Level(li)
		for _, chk := range chunks(len(lvl), nw) {
			wg.Add(1)
			go func(cells []int) {
				defer wg.Done()
				d.erodeCells(cells)
			}(lvl[chk[0]:chk[1]])
		}
		wg.Wait()
	}
}
