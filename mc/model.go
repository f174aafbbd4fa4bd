package mc

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Model interface to be satisfied by option pricing model types.
type Model interface {
	// Simulate a full price lattice of n paths over m steps of size dt.
	Lattice(src *NormalSource, n, m int, dt float64) ([][]float64, error)
}

// NormalSource supplies reproducible standard normal draws. Each time step
// gets its own independent stream, so the draws for a given (seed, step)
// never depend on how many paths or batches were requested earlier.
type NormalSource struct {
	seed uint64
}

func NewNormalSource(seed uint64) *NormalSource {
	return &NormalSource{seed: seed}
}

// Golden-ratio stride keeps per-step streams apart in seed space.
const streamStride = 0x9E3779B97F4A7C15

// Draws returns n independent standard normal variates for time step t.
// The same (seed, t) pair always yields the same sequence.
func (s *NormalSource) Draws(t, n int) []float64 {
	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: rand.NewSource(s.seed*streamStride + uint64(t) + 1)}
	z := make([]float64, n)
	for i := range z {
		z[i] = d.Rand()
	}
	return z
}
