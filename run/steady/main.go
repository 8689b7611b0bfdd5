package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/fastscape"
	"github.com/maseology/mmio"
)

// Long-run driver: spins a random landscape to topographic steady state,
// snapshotting the result for later resumption.
func main() {
	if len(os.Args) != 5 {
		fmt.Fprintf(os.Stderr, "Syntax: %s <Dimension> <MaxSteps> <Output Prefix> <Seed>\n", os.Args[0])
		os.Exit(1)
	}
	dim, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Fatalf("invalid dimension '%s'", os.Args[1])
	}
	maxstep, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("invalid step count '%s'", os.Args[2])
	}
	prfx := os.Args[3]
	seed, err := strconv.ParseUint(os.Args[4], 10, 64)
	if err != nil {
		log.Fatalf("invalid seed '%s'", os.Args[4])
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	d := fastscape.NewDomain(dim, fastscape.DefaultParams())
	d.BuildTerrain(seed)

	uiprogress.Start()
	zstep := make(chan string, 1)
	bar := uiprogress.AddBar(maxstep).AppendCompleted().PrependElapsed()
	last := ""
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		select {
		case last = <-zstep:
		default:
		}
		return last
	})

	nstep, zbar := d.Steady(1e-4, 50, maxstep, func(step int) {
		select {
		case zstep <- fmt.Sprintf("step %d", step):
		default:
		}
		bar.Incr()
	})
	uiprogress.Stop()
	fmt.Printf(" steady state after %s steps: mean relief %.3f m\n", mmio.Thousands(int64(nstep)), zbar)

	if err := d.SaveDEM(prfx + ".asc"); err != nil {
		log.Fatalf("%v", err)
	}
	if err := d.SaveGob(prfx + ".gob"); err != nil {
		log.Fatalf("%v", err)
	}
	d.DumpBins(prfx + ".")
	fastscape.WaitDumps()
}
