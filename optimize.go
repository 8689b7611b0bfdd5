package fastscape

import (
	"fmt"
	"math/rand"
	"runtime"

	"github.com/maseology/fastscape/opt"
	"github.com/maseology/glbopt"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// reliefRun spins a fresh domain to (near) steady state and reports the mean
// relief history of its final block of steps.
func reliefRun(dim int, k, uplift float64, seed uint64, nstep, tail int) []float64 {
	par := DefaultParams()
	par.K, par.U = k, uplift
	d := NewDomain(dim, par)
	d.BuildTerrain(seed)
	if nstep > tail {
		d.Evaluate(nstep-tail-1, false)
	}
	zs := make([]float64, tail)
	for i := 0; i < tail; i++ {
		d.Evaluate(0, false)
		zs[i] = d.MeanRelief()
	}
	return zs
}

// CalibrateUplift recovers an erodibility-uplift pairing whose steady-state
// mean relief matches ztarg, searching the unit square with the shuffled
// complex evolution optimizer.
func CalibrateUplift(dim int, ztarg float64, seed uint64, nstep int) (k, uplift float64) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(int64(seed))

	const tail = 10
	targ := make([]float64, tail)
	for i := range targ {
		targ[i] = ztarg
	}

	gen := func(u []float64) float64 {
		k, up := opt.Par2(u)
		return objfunc.RMSE(targ, reliefRun(dim, k, up, seed, nstep, tail))
	}

	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), 2, rng, gen, true)
	return opt.Par2(uFinal)
}

// SampleRelief latin-hypercube samples nsmpl erodibility-uplift pairings,
// writing the steady mean relief of each to a tab-delimited summary.
func SampleRelief(fp string, dim, nsmpl int, seed uint64, nstep int) error {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(int64(seed))
	sp := smpln.NewLHC(rng, nsmpl, 2, false)

	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("SampleRelief: %v", err)
	}
	defer tw.Close()
	tw.WriteLine("k\tuplift\tzbar")

	for s := 0; s < nsmpl; s++ {
		ut := make([]float64, 2)
		for j := 0; j < 2; j++ {
			ut[j] = sp.U[j][s]
		}
		k, up := opt.Par2(ut)
		zs := reliefRun(dim, k, up, seed, nstep, 1)
		tw.WriteLine(fmt.Sprintf("%e\t%e\t%f", k, up, zs[len(zs)-1]))
	}
	return nil
}
