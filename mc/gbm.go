package mc

import (
	"fmt"
	"math"
)

// GBM is geometric Brownian motion under the risk-neutral drift.
type GBM struct {
	Sigma float64
	R     float64
	S0    float64
}

// OverflowError reports a simulated price diverging to a non-finite value.
type OverflowError struct {
	Step int
	Path int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("non-finite price at step %d path %d", e.Step, e.Path)
}

// Lattice generates an Euler-Maruyama price lattice of m+1 snapshots of n
// paths each. Snapshot 0 is the spot replicated n times. The update is the
// multiplicative form S <- S*(1 + r*dt + sigma*sqrt(dt)*z); the matching
// one-step discount is exp(-r*dt). Negative prices are possible under this
// discretisation and are carried through unaltered, but non-finite values
// abort the run.
func (g GBM) Lattice(src *NormalSource, n, m int, dt float64) ([][]float64, error) {
	s := make([][]float64, m+1)
	s[0] = make([]float64, n)
	for i := range s[0] {
		s[0][i] = g.S0
	}
	sqdt := math.Sqrt(dt)
	for t := 0; t < m; t++ {
		z := src.Draws(t, n)
		next := make([]float64, n)
		for i, prev := range s[t] {
			next[i] = prev * (1.0 + g.R*dt + g.Sigma*sqdt*z[i])
			if math.IsNaN(next[i]) || math.IsInf(next[i], 0) {
				return nil, OverflowError{Step: t + 1, Path: i}
			}
		}
		s[t+1] = next
	}
	return s, nil
}
