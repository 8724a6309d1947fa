package models

import (
	"fmt"
	"math"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// Ricker is the density-dependent map N(t+1) = N * exp(r * (1 - N/K)).
// The fixed point is K; the map period-doubles to chaos as r grows past 2.
type Ricker struct {
	R float64 // intrinsic growth rate
	K float64 // carrying capacity
}

func NewRicker(r, k float64) *Ricker {
	return &Ricker{R: r, K: k}
}

func (rk *Ricker) Name() string {
	return "ricker"
}

func (rk *Ricker) Next(n float64) float64 {
	return n * math.Exp(rk.R*(1-n/rk.K))
}

func (rk *Ricker) Validate() error {
	if rk.K <= 0 {
		return fmt.Errorf("%w: carrying capacity must be positive, got %g", popdyn.ErrInvalidParameter, rk.K)
	}
	return nil
}

func (rk *Ricker) Params() map[string]float64 {
	return map[string]float64{"r": rk.R, "K": rk.K}
}

func (rk *Ricker) SetParam(name string, value float64) error {
	switch name {
	case "r":
		rk.R = value
	case "K":
		rk.K = value
	default:
		return fmt.Errorf("%w: ricker has no parameter %q", popdyn.ErrInvalidParameter, name)
	}
	return nil
}
