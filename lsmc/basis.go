package lsmc

import (
	"gonum.org/v1/gonum/mat"
)

// Rescale affine-maps x onto [-1,1] so that min(x) -> -1 and max(x) -> +1
// exactly. Chebyshev polynomials are only well conditioned on that interval.
// A zero-range cross section has no such map and is reported as degenerate.
func Rescale(x []float64) ([]float64, error) {
	xmin, xmax := x[0], x[0]
	for _, v := range x[1:] {
		if v < xmin {
			xmin = v
		}
		if v > xmax {
			xmax = v
		}
	}
	if xmax == xmin {
		return nil, DegeneracyError{Value: xmin}
	}
	a := 2.0 / (xmax - xmin)
	b := 1.0 - a*xmax
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = a*v + b
	}
	return out, nil
}

// Chebyshev expands a rescaled cross section into an n x k feature matrix
// whose columns are T0..T(k-1), built with the recurrence
// T_{j+1}(x) = 2x*T_j(x) - T_{j-1}(x).
func Chebyshev(x []float64, k int) *mat.Dense {
	f := mat.NewDense(len(x), k, nil)
	for i, v := range x {
		f.Set(i, 0, 1.0)
		if k > 1 {
			f.Set(i, 1, v)
		}
		for j := 2; j < k; j++ {
			f.Set(i, j, 2.0*v*f.At(i, j-1)-f.At(i, j-2))
		}
	}
	return f
}
