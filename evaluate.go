package fastscape

import (
	"fmt"
	"runtime"
	"sync"
)

// Evaluate advances the landscape through steps 0..nstep inclusive with
// data-parallel stages: receivers, donors and uplift fan out over row bands;
// accumulation and erosion fan out within levels (single-stack ordering) or
// over independent shards (Par.Nshard > 1). Stage boundaries are barriers.
// Results are identical to EvaluateSerial for any worker count: every stage
// writes disjoint cells and cell updates commute within a level.
func (d *Domain) Evaluate(nstep int, prnt bool) {
	d.tmr.overall.start()
	defer d.tmr.overall.stop()
	nw := runtime.GOMAXPROCS(0)
	h := d.GD.Nrow

	var wg sync.WaitGroup
	byRows := func(y0, y1 int, f func(a, b int)) {
		for _, b := range chunks(y1-y0, nw) {
			wg.Add(1)
			go func(a, b int) {
				defer wg.Done()
				f(a, b)
			}(y0+b[0], y0+b[1])
		}
		wg.Wait()
	}

	for step := 0; step <= nstep; step++ {
		d.tmr.receivers.start()
		byRows(2, h-2, func(a, b int) { d.Top.Receivers(d.H, a, b) })
		d.tmr.receivers.stop()

		d.tmr.donors.start()
		byRows(1, h-1, func(a, b int) { d.Top.Donors(a, b) })
		d.tmr.donors.stop()

		d.tmr.order.start()
		if d.Par.Nshard > 1 {
			d.Top.OrderSharded(d.Par.Nshard)
		} else {
			d.Top.OrderSerial()
		}
		d.tmr.order.stop()

		d.tmr.flowacc.start()
		d.resetAccum()
		d.eachShard(func(i int) { d.accumulateConc(&d.Top.Ord[i], nw) }, func(i int) { d.accumulate(&d.Top.Ord[i]) })
		d.tmr.flowacc.stop()

		d.tmr.uplift.start()
		byRows(2, h-2, func(a, b int) { d.uplift(a, b) })
		d.tmr.uplift.stop()

		d.tmr.erosion.start()
		d.eachShard(func(i int) { d.erodeConc(&d.Top.Ord[i], nw) }, func(i int) { d.erode(&d.Top.Ord[i]) })
		d.tmr.erosion.stop()

		if prnt && step%20 == 0 {
			fmt.Printf("p Step = %d\n", step)
		}
	}
}

// eachShard runs a level-stage over the current ordering: within-level
// concurrency when a single stack holds the whole forest, shard-level
// concurrency when the forest is partitioned (shards share no cells, so each
// may be walked serially alongside the others).
func (d *Domain) eachShard(single func(i int), sharded func(i int)) {
	if len(d.Top.Ord) == 1 {
		single(0)
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(d.Top.Ord))
	for i := range d.Top.Ord {
		go func(i int) {
			defer wg.Done()
			sharded(i)
		}(i)
	}
	wg.Wait()
}
