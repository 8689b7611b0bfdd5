package fastscape

// uplift raises rows [y0,y1) of the mutable interior by U·Δt. The second
// boundary ring is excluded, leaving a fixed-elevation collar that drains the
// rising interior.
func (d *Domain) uplift(y0, y1 int) {
	w := d.GD.Ncol
	if y0 < 2 {
		y0 = 2
	}
	if y1 > d.GD.Nrow-2 {
		y1 = d.GD.Nrow - 2
	}
	udt := d.Par.U * d.Par.Dt
	for y := y0; y < y1; y++ {
		for x := 2; x < w-2; x++ {
			d.H[y*w+x] += udt
		}
	}
}
