package fastscape

import "fmt"

// EvaluateSerial advances the landscape on a single thread: steps 0..nstep
// inclusive of the six-stage pipeline, hard-ordered, no concurrency. This is
// the reference path the concurrent drivers are checked against.
func (d *Domain) EvaluateSerial(nstep int, prnt bool) {
	d.tmr.overall.start()
	defer d.tmr.overall.stop()
	h := d.GD.Nrow

	for step := 0; step <= nstep; step++ {
		d.tmr.receivers.start()
		d.Top.Receivers(d.H, 2, h-2)
		d.tmr.receivers.stop()

		d.tmr.donors.start()
		d.Top.Donors(1, h-1)
		d.tmr.donors.stop()

		d.tmr.order.start()
		d.Top.OrderSerial()
		d.tmr.order.stop()

		d.tmr.flowacc.start()
		d.resetAccum()
		for i := range d.Top.Ord {
			d.accumulate(&d.Top.Ord[i])
		}
		d.tmr.flowacc.stop()

		d.tmr.uplift.start()
		d.uplift(2, h-2)
		d.tmr.uplift.stop()

		d.tmr.erosion.start()
		for i := range d.Top.Ord {
			d.erode(&d.Top.Ord[i])
		}
		d.tmr.erosion.stop()

		if prnt && step%20 == 0 {
			fmt.Printf("p Step = %d\n", step)
		}
	}
}
