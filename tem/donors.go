package tem

// Donors inverts the receiver graph for rows [y0,y1) of the frame: each cell
// lists the neighbours that receive into it. The inversion is pulled rather
// than pushed so every cell has sole write access to its own donor slots and
// no atomics are needed when rows are split across workers.
func (t *Flow) Donors(y0, y1 int) {
	if y0 < 1 {
		y0 = 1
	}
	if y1 > t.H-1 {
		y1 = t.H - 1
	}
	for y := y0; y < y1; y++ {
		for x := 1; x < t.W-1; x++ {
			c := y*t.W + x
			t.Ndon[c] = 0
			for ni := 0; ni < 8; ni++ {
				n := c + t.Nshift[ni]
				if t.Rec[n] != Sink && n+t.Nshift[t.Rec[n]] == c {
					t.Donor[8*c+t.Ndon[c]] = n
					t.Ndon[c]++
				}
			}
		}
	}
}
