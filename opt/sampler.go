package opt

import "github.com/maseology/mmaths"

// Par2 maps a unit hypercube sample to an erodibility-uplift pairing.
func Par2(u []float64) (k, uplift float64) {
	k = mmaths.LogLinearTransform(1e-8, 1e-4, u[0])      // stream-power erodibility [a⁻¹]
	uplift = mmaths.LogLinearTransform(1e-5, 1e-1, u[1]) // tectonic uplift rate [m/a]
	return
}
