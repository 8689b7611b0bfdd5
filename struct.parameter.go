package fastscape

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// Params holds the stream-power model constants. The defaults reproduce the
// canonical test configuration; any value may be overridden at runtime
// through an .fstp instruction file, the core never assumes they are fixed.
type Params struct {
	K      float64 // erodibility [a⁻¹]
	N      float64 // slope exponent
	M      float64 // drainage-area exponent
	U      float64 // uplift rate [m/a]
	Dt     float64 // timestep [a]
	Tol    float64 // Newton-Raphson convergence tolerance [m]
	Acell  float64 // cell area [m²]
	Nshard int     // ordering shards; <2 orders on a single stack
}

// DefaultParams the canonical constants
func DefaultParams() Params {
	return Params{
		K:     2e-6,
		N:     2.,
		M:     .8,
		U:     2e-3,
		Dt:    1000.,
		Tol:   1e-3,
		Acell: 40000.,
	}
}

// LoadParams reads an .fstp instruction file, overriding any subset of the
// default constants. A "gdef" entry names a grid definition file whose cell
// width re-derives the cell area and the output cellsize.
func LoadParams(fp string) (Params, string, error) {
	par, gdefFP := DefaultParams(), ""
	ins := mmio.NewInstruct(fp)

	getf := func(k string, v *float64) error {
		if p, ok := ins.Param[k]; ok {
			f, err := strconv.ParseFloat(p[0], 64)
			if err != nil {
				return fmt.Errorf("LoadParams: failed to read '%s': %v", k, err)
			}
			*v = f
		}
		return nil
	}
	for k, v := range map[string]*float64{
		"k": &par.K, "n": &par.N, "m": &par.M, "u": &par.U,
		"dt": &par.Dt, "tol": &par.Tol, "acell": &par.Acell,
	} {
		if err := getf(k, v); err != nil {
			return par, "", err
		}
	}
	if p, ok := ins.Param["nshard"]; ok {
		i, err := strconv.Atoi(p[0])
		if err != nil {
			return par, "", fmt.Errorf("LoadParams: failed to read 'nshard': %v", err)
		}
		par.Nshard = i
	}
	if p, ok := ins.Param["gdef"]; ok {
		gdefFP = p[0]
	}
	return par, gdefFP, nil
}
