package lsmc

import (
	"gonum.org/v1/gonum/mat"
)

// FitContinuation solves the normal equations (X'X)theta = X'y for the
// least-squares coefficients and returns the fitted values X*theta. The
// symmetric system is solved by Cholesky factorisation rather than explicit
// inversion; a factorisation failure means the basis columns are linearly
// dependent on this cross section and is surfaced as a SingularityError.
func FitContinuation(x *mat.Dense, y []float64) ([]float64, error) {
	n, k := x.Dims()

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, xtx.At(i, j))
		}
	}

	yv := mat.NewVecDense(n, y)
	xty := mat.NewVecDense(k, nil)
	xty.MulVec(x.T(), yv)

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, SingularityError{Order: k}
	}
	theta := mat.NewVecDense(k, nil)
	if err := chol.SolveVecTo(theta, xty); err != nil {
		return nil, SingularityError{Order: k}
	}

	fit := mat.NewVecDense(n, nil)
	fit.MulVec(x, theta)
	out := make([]float64, n)
	for i := range out {
		out[i] = fit.AtVec(i)
	}
	return out, nil
}
