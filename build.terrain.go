package fastscape

import (
	"math/rand"

	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// BuildTerrain fills the domain with uniform random relief on [0,1). Draws
// are made in row-major cell order so a given seed always reproduces the same
// surface; both boundary rings are forced to zero after their draw so the
// collar drains the interior regardless of the realization.
func (d *Domain) BuildTerrain(seed uint64) {
	d.tmr.initialize.start()
	defer d.tmr.initialize.stop()

	rng := rand.New(mrg63k3a.New())
	rng.Seed(int64(seed))

	w, h := d.GD.Ncol, d.GD.Nrow
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := y*w + x
			d.H[c] = rng.Float64()
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				d.H[c] = 0.
			}
			if x == 1 || y == 1 || x == w-2 || y == h-2 {
				d.H[c] = 0.
			}
		}
	}
}
