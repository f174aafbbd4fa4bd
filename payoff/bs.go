package payoff

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

var stdNorm = distuv.Normal{Mu: 0.0, Sigma: 1.0}

// BSPut is the Black-Scholes closed-form European put price. It serves as
// the analytic reference for the simulated European expectation.
func BSPut(s0, k, r, sigma, t float64) float64 {
	st := sigma * math.Sqrt(t)
	d1 := (math.Log(s0/k) + (r+0.5*sigma*sigma)*t) / st
	d2 := d1 - st
	return k*math.Exp(-r*t)*stdNorm.CDF(-d2) - s0*stdNorm.CDF(-d1)
}

// IVol inverts BSPut for the volatility implied by price p, minimising the
// squared pricing error with Nelder-Mead over log-volatility.
func IVol(p, s0, k, r, t float64) (float64, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			d := BSPut(s0, k, r, math.Exp(x[0]), t) - p
			return d * d
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(0.2)}, nil, &optimize.NelderMead{})
	if err != nil {
		return math.NaN(), err
	}
	v := math.Exp(res.X[0])
	if math.Abs(BSPut(s0, k, r, v, t)-p) > 1e-4*k {
		return math.NaN(), errors.New("implied volatility did not converge")
	}
	return v, nil
}
