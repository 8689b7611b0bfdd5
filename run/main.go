package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/maseology/fastscape"
	"github.com/maseology/fastscape/dem"
	"github.com/maseology/mmio"
)

// set at build time: -ldflags "-X main.gitHash=$(git rev-parse HEAD)"
var gitHash = "TODO"

const paramFP = "fastscape.fstp" // optional run-time constant overrides

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintf(os.Stderr, "Syntax: %s <Dimension> <Steps> <Output Name> <Seed>\n", os.Args[0])
		os.Exit(1)
	}

	seed, err := strconv.ParseUint(os.Args[4], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid seed '%s': %v\n", os.Args[4], err)
		os.Exit(1)
	}

	fmt.Println("A FastScape RB+GPU")
	fmt.Println("C Richard Barnes TODO")
	fmt.Printf("h git_hash    = %s\n", gitHash)
	fmt.Printf("m Random seed = %s\n", os.Args[4])

	width, err := strconv.Atoi(os.Args[1])
	if err != nil || width < 5 {
		fmt.Fprintf(os.Stderr, "error: invalid dimension '%s'\n", os.Args[1])
		os.Exit(1)
	}
	nstep, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid step count '%s'\n", os.Args[2])
		os.Exit(1)
	}

	par := fastscape.DefaultParams()
	var gd *dem.Definition
	if _, ok := mmio.FileExists(paramFP); ok {
		var gdefFP string
		if par, gdefFP, err = fastscape.LoadParams(paramFP); err != nil {
			log.Fatalf("%v", err)
		}
		if len(gdefFP) > 0 {
			if gd, err = dem.FromGDEF(gdefFP, width); err != nil {
				log.Fatalf("%v", err)
			}
			par.Acell = gd.CellArea()
		}
	}

	tt := time.Now()
	d := fastscape.NewDomain(width, par)
	if gd != nil {
		d.GD = gd
	}
	d.BuildTerrain(seed)
	d.Evaluate(nstep, true)
	d.PrintTimers()
	fmt.Printf("t Total calculation time    = %15d microseconds\n", time.Since(tt).Microseconds())

	if err := d.SaveDEM(os.Args[3]); err != nil {
		log.Fatalf("%v", err)
	}
}
