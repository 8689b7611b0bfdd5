package tem

// Receivers assigns each cell of rows [y0,y1) its steepest-descent neighbour
// direction, or Sink where no neighbour lies strictly below. Slopes are
// scaled by neighbour distance so axial descent beats an equal diagonal drop;
// ties keep the first (lowest-numbered) direction. Only cells inside both
// boundary rings are assigned, so receivers always land in the frame.
//
// Writes are disjoint per cell; callers may split [2,H-2) across workers.
func (t *Flow) Receivers(h []float64, y0, y1 int) {
	if y0 < 2 {
		y0 = 2
	}
	if y1 > t.H-2 {
		y1 = t.H - 2
	}
	for y := y0; y < y1; y++ {
		for x := 2; x < t.W-2; x++ {
			c := y*t.W + x
			maxslope, maxn := 0., Sink
			for n := 0; n < 8; n++ {
				slope := (h[c] - h[c+t.Nshift[n]]) / t.Dr[n]
				if slope > maxslope {
					maxslope = slope
					maxn = n
				}
			}
			t.Rec[c] = maxn
		}
	}
}
