package payoff

import "math"

// Put is a vanilla put contract.
type Put struct {
	Strike float64
}

// Payout is the intrinsic exercise value max(K-S, 0).
func (p Put) Payout(s float64) float64 {
	return math.Max(p.Strike-s, 0.0)
}

// European prices the terminal-payoff-only expectation on a simulated
// lattice: the mean intrinsic value at maturity discounted over the whole
// horizon. No early exercise, same paths and discounting as the American
// run, so the two prices are directly comparable.
func (p Put) European(lattice [][]float64, r, dt float64) float64 {
	term := lattice[len(lattice)-1]
	out := 0.0
	for _, s := range term {
		out += p.Payout(s)
	}
	d := math.Exp(-r * dt * float64(len(lattice)-1))
	return d * out / float64(len(term))
}
