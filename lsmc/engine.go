package lsmc

import (
	"fmt"
	"math"
)

// Engine drives the backward induction over a simulated price lattice. At
// each exercise date it regresses the running discounted cashflows on a
// Chebyshev basis of the current cross section and exercises the paths whose
// immediate payoff weakly dominates the fitted continuation value.
type Engine struct {
	Payoff func(float64) float64
	Rate   float64
	Dt     float64
	Order  int
	// FitITMOnly restricts the regression and the exercise decision to
	// in-the-money paths, the usual Longstaff-Schwartz refinement. The
	// default fits on all paths.
	FitITMOnly bool
	// FallbackHold keeps every path alive through a degenerate or singular
	// step instead of aborting the run. Changing this changes the price.
	FallbackHold bool
}

// Run walks the lattice from maturity back to the first exercise date and
// returns the cashflow per path discounted to time 0. The lattice is read
// only; the cashflow vector is the single piece of state carried through
// the loop.
func (e Engine) Run(lattice [][]float64) ([]float64, error) {
	m := len(lattice) - 1
	n := len(lattice[0])
	disc := math.Exp(-e.Rate * e.Dt)

	// Terminal condition: intrinsic value at maturity, discounted one step.
	cf := make([]float64, n)
	for i, s := range lattice[m] {
		cf[i] = e.Payoff(s) * disc
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	for t := m - 1; t >= 1; t-- {
		snap := lattice[t]
		ex := make([]float64, n)
		for i, s := range snap {
			ex[i] = e.Payoff(s)
		}

		idx := all
		if e.FitITMOnly {
			idx = make([]int, 0, n)
			for i := range snap {
				if ex[i] > 0 {
					idx = append(idx, i)
				}
			}
			if len(idx) == 0 {
				discount(cf, disc)
				continue
			}
		}

		sub := make([]float64, len(idx))
		y := make([]float64, len(idx))
		for pos, i := range idx {
			sub[pos] = snap[i]
			y[pos] = cf[i]
		}

		scaled, err := Rescale(sub)
		var cont []float64
		if err == nil {
			cont, err = FitContinuation(Chebyshev(scaled, e.Order), y)
		}
		if err != nil {
			if !e.FallbackHold {
				return nil, fmt.Errorf("backward step %d: %w", t, err)
			}
			// Hold: continuation dominates, nothing is exercised.
			discount(cf, disc)
			continue
		}

		applyExercise(cf, ex, cont, idx)
		discount(cf, disc)
	}
	return cf, nil
}

// applyExercise overwrites cashflows with the immediate payoff on the paths
// in idx where exercising weakly dominates the fitted continuation value.
// Ties exercise.
func applyExercise(cf, ex, cont []float64, idx []int) {
	for pos, i := range idx {
		if ex[i] >= cont[pos] {
			cf[i] = ex[i]
		}
	}
}

func discount(cf []float64, disc float64) {
	for i := range cf {
		cf[i] *= disc
	}
}
