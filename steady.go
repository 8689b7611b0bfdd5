package fastscape

// Steady advances the landscape until uplift and erosion balance: blocks of
// chk steps run until the mean interior elevation, sampled at the end of each
// block, drifts by less than tol from one block to the next, or until maxstep
// steps in total. onstep, when non-nil, is called after
// every step (progress reporting). Returns the number of steps taken and the
// final mean relief.
func (d *Domain) Steady(tol float64, chk, maxstep int, onstep func(step int)) (int, float64) {
	if chk < 1 {
		chk = 1
	}
	zlast, step := d.MeanRelief(), 0
	for step < maxstep {
		for i := 0; i < chk && step < maxstep; i++ {
			d.Evaluate(0, false) // a single pipeline pass
			step++
			if onstep != nil {
				onstep(step)
			}
		}
		z := d.MeanRelief()
		if z-zlast < tol && zlast-z < tol {
			return step, z
		}
		zlast = z
	}
	return step, zlast
}
