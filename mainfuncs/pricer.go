package mainfuncs

import (
	"fmt"
	"math"

	"github.com/banachtech/amerput/lsmc"
	"github.com/banachtech/amerput/mc"
	"github.com/banachtech/amerput/payoff"
)

// Params collects the full configuration of a single pricing run.
type Params struct {
	Sigma    float64
	Rate     float64
	Strike   float64
	Spot     float64
	Maturity float64
	Steps    int
	Order    int
	Paths    int
	Seed     uint64
	// ITMOnly switches the regression to in-the-money paths only.
	ITMOnly bool
	// FallbackHold keeps the run alive through degenerate or singular
	// regression steps instead of aborting.
	FallbackHold bool
}

// ParamError reports an invalid pricing parameter.
type ParamError struct {
	Field string
	Msg   string
}

func (e ParamError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func (p Params) validate() error {
	switch {
	case p.Sigma <= 0 || math.IsNaN(p.Sigma):
		return ParamError{Field: "sigma", Msg: "volatility must be positive"}
	case p.Strike <= 0:
		return ParamError{Field: "strike", Msg: "strike must be positive"}
	case p.Spot <= 0:
		return ParamError{Field: "spot", Msg: "spot must be positive"}
	case p.Maturity <= 0:
		return ParamError{Field: "maturity", Msg: "maturity must be positive"}
	case p.Steps < 1:
		return ParamError{Field: "steps", Msg: "need at least one time step"}
	case p.Order < 2:
		return ParamError{Field: "order", Msg: "basis order must be at least 2"}
	case p.Paths < 1:
		return ParamError{Field: "paths", Msg: "need at least one path"}
	}
	return nil
}

// Result holds the outcome of a pricing run alongside its inputs.
type Result struct {
	Price    float64
	StdErr   float64
	European float64
	Params   Params
}

// Pricer prices an American put by least-squares Monte Carlo: simulate a GBM
// lattice, run the backward induction with a Chebyshev continuation
// regression at every exercise date, and average the resulting per-path
// cashflows. The European terminal-payoff expectation on the same lattice is
// reported alongside for comparison.
func Pricer(p Params) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	dt := p.Maturity / float64(p.Steps)

	var model mc.Model = mc.GBM{Sigma: p.Sigma, R: p.Rate, S0: p.Spot}
	lattice, err := model.Lattice(mc.NewNormalSource(p.Seed), p.Paths, p.Steps, dt)
	if err != nil {
		return Result{}, fmt.Errorf("path simulation: %w", err)
	}

	put := payoff.Put{Strike: p.Strike}
	eng := lsmc.Engine{
		Payoff:       put.Payout,
		Rate:         p.Rate,
		Dt:           dt,
		Order:        p.Order,
		FitITMOnly:   p.ITMOnly,
		FallbackHold: p.FallbackHold,
	}
	cf, err := eng.Run(lattice)
	if err != nil {
		return Result{}, err
	}

	est := lsmc.Aggregate(cf)
	return Result{
		Price:    est.Price,
		StdErr:   est.StdErr,
		European: put.European(lattice, p.Rate, dt),
		Params:   p,
	}, nil
}
