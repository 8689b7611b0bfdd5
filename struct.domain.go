package fastscape

import (
	"github.com/maseology/fastscape/dem"
	"github.com/maseology/fastscape/tem"
)

// Domain is the simulation state: the elevation model, its flow topology and
// drainage accumulation, and the model constants. It exclusively owns all
// arrays; they are allocated once here and rewritten in place every step.
type Domain struct {
	GD    *dem.Definition
	Top   *tem.Flow
	H     []float64 // elevation [m]
	Accum []float64 // drainage area [m²]
	Par   Params
	tmr   stepTimers
}

// NewDomain allocates a dim x dim simulation domain.
func NewDomain(dim int, par Params) *Domain {
	d := &Domain{GD: dem.New(dim), Par: par}
	d.tmr.initialize.start()
	d.Top = tem.NewFlow(dim, dim)
	d.H = make([]float64, dim*dim)
	d.Accum = make([]float64, dim*dim)
	d.tmr.initialize.stop()
	return d
}

// MeanRelief returns the mean elevation of the mutable interior.
func (d *Domain) MeanRelief() float64 {
	w, h := d.GD.Ncol, d.GD.Nrow
	s, n := 0., 0
	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			s += d.H[y*w+x]
			n++
		}
	}
	if n == 0 {
		return 0.
	}
	return s / float64(n)
}

// SaveDEM writes the current elevations as an ESRI ASCII grid.
func (d *Domain) SaveDEM(fp string) error {
	return d.GD.SaveAscii(fp, d.H)
}
