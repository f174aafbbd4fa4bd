package lsmc

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Estimate is the reduced result of a pricing run.
type Estimate struct {
	Price  float64
	StdErr float64
	Paths  int
}

// Aggregate reduces per-path discounted cashflows to their arithmetic mean
// and the sample standard error of that mean.
func Aggregate(cf []float64) Estimate {
	n := len(cf)
	mu := stat.Mean(cf, nil)
	se := 0.0
	if n > 1 {
		se = stat.StdDev(cf, nil) / math.Sqrt(float64(n))
	}
	return Estimate{Price: mu, StdErr: se, Paths: n}
}
