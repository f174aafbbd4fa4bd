package lsmc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFitContinuation(t *testing.T) {
	t.Run("EXACT_FIT", func(t *testing.T) {
		// A target that already lies in the basis span must be reproduced.
		x := []float64{-1.0, -0.5, 0.0, 0.25, 0.75, 1.0}
		feats := Chebyshev(x, 3)
		theta := mat.NewVecDense(3, []float64{1.0, 2.0, 3.0})
		n, _ := feats.Dims()
		yv := mat.NewVecDense(n, nil)
		yv.MulVec(feats, theta)
		y := make([]float64, n)
		for i := range y {
			y[i] = yv.AtVec(i)
		}

		fit, err := FitContinuation(feats, y)
		require.NoError(t, err)
		require.InDeltaSlice(t, y, fit, 1e-9)
	})

	t.Run("CONSTANT_TARGET", func(t *testing.T) {
		x := []float64{-1.0, -0.2, 0.4, 1.0}
		fit, err := FitContinuation(Chebyshev(x, 2), []float64{7.0, 7.0, 7.0, 7.0})
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{7.0, 7.0, 7.0, 7.0}, fit, 1e-9)
	})

	t.Run("SINGULAR", func(t *testing.T) {
		// Two identical columns make the normal equations rank deficient.
		feats := mat.NewDense(4, 2, []float64{
			1.0, 1.0,
			2.0, 2.0,
			3.0, 3.0,
			4.0, 4.0,
		})
		_, err := FitContinuation(feats, []float64{1.0, 2.0, 3.0, 4.0})
		var sing SingularityError
		require.ErrorAs(t, err, &sing)
		require.Equal(t, 2, sing.Order)
	})

	t.Run("UNDERDETERMINED", func(t *testing.T) {
		// Fewer observations than basis columns cannot be solved.
		feats := Chebyshev([]float64{-1.0, 1.0}, 4)
		_, err := FitContinuation(feats, []float64{1.0, 2.0})
		var sing SingularityError
		require.ErrorAs(t, err, &sing)
	})
}
