package lsmc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestChebyshev(t *testing.T) {
	t.Run("HAND_VALUES", func(t *testing.T) {
		f := Chebyshev([]float64{0.5}, 4)
		require.InDeltaSlice(t, []float64{1.0, 0.5, -0.5, -1.0}, mat.Row(nil, 0, f), 1e-12)
	})

	t.Run("RECURRENCE", func(t *testing.T) {
		x := []float64{-1.0, -0.3, 0.0, 0.7, 1.0}
		k := 8
		f := Chebyshev(x, k)
		for i, v := range x {
			require.Equal(t, 1.0, f.At(i, 0))
			require.Equal(t, v, f.At(i, 1))
			for j := 2; j < k; j++ {
				require.InDelta(t, 2.0*v*f.At(i, j-1)-f.At(i, j-2), f.At(i, j), 1e-12)
			}
		}
	})

	t.Run("TRIVIAL_ORDERS", func(t *testing.T) {
		f := Chebyshev([]float64{0.25, -0.5}, 1)
		_, cols := f.Dims()
		require.Equal(t, 1, cols)
		require.Equal(t, 1.0, f.At(0, 0))
		require.Equal(t, 1.0, f.At(1, 0))
	})
}

func TestRescale(t *testing.T) {
	t.Run("MIN_MAX_MAPPING", func(t *testing.T) {
		x := []float64{36.0, 44.0, 31.0, 40.0}
		scaled, err := Rescale(x)
		require.NoError(t, err)
		require.InDelta(t, -1.0, scaled[2], 1e-12)
		require.InDelta(t, 1.0, scaled[1], 1e-12)
	})

	t.Run("ORDER_PRESERVING", func(t *testing.T) {
		x := []float64{5.0, 1.0, 3.0, 2.0, 4.0}
		scaled, err := Rescale(x)
		require.NoError(t, err)
		for i := range x {
			for j := range x {
				if x[i] < x[j] {
					require.Less(t, scaled[i], scaled[j])
				}
			}
		}
	})

	t.Run("DEGENERATE", func(t *testing.T) {
		_, err := Rescale([]float64{5.0, 5.0, 5.0})
		var degen DegeneracyError
		require.ErrorAs(t, err, &degen)
		require.Equal(t, 5.0, degen.Value)
	})
}
