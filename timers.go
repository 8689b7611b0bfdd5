package fastscape

import (
	"fmt"
	"time"
)

// cumTimer accumulates wall-clock time over repeated start/stop pairs.
type cumTimer struct {
	t0      time.Time
	elapsed time.Duration
	running bool
}

func (t *cumTimer) start() {
	if t.running {
		return
	}
	t.t0 = time.Now()
	t.running = true
}

func (t *cumTimer) stop() {
	if !t.running {
		return
	}
	t.elapsed += time.Since(t.t0)
	t.running = false
}

func (t *cumTimer) microseconds() int64 { return t.elapsed.Microseconds() }

type stepTimers struct {
	initialize, receivers, donors, order, flowacc, uplift, erosion, overall cumTimer
}

// PrintTimers reports the cumulative per-stage wall-clock totals.
func (d *Domain) PrintTimers() {
	fmt.Printf("t Step1: Initialize         = %15d microseconds\n", d.tmr.initialize.microseconds())
	fmt.Printf("t Step2: DetermineReceivers = %15d microseconds\n", d.tmr.receivers.microseconds())
	fmt.Printf("t Step3: DetermineDonors    = %15d microseconds\n", d.tmr.donors.microseconds())
	fmt.Printf("t Step4: GenerateOrder      = %15d microseconds\n", d.tmr.order.microseconds())
	fmt.Printf("t Step5: FlowAcc            = %15d microseconds\n", d.tmr.flowacc.microseconds())
	fmt.Printf("t Step6: Uplift             = %15d microseconds\n", d.tmr.uplift.microseconds())
	fmt.Printf("t Step7: Erosion            = %15d microseconds\n", d.tmr.erosion.microseconds())
	fmt.Printf("t Overall                   = %15d microseconds\n", d.tmr.overall.microseconds())
}
