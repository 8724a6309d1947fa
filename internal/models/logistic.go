package models

import (
	"fmt"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// Logistic is the discrete logistic map N(t+1) = N + r*N*(1 - N/K).
// Unlike the Ricker map it can overshoot into negative values for large r;
// that excursion is left visible rather than clamped.
type Logistic struct {
	R float64
	K float64
}

func NewLogistic(r, k float64) *Logistic {
	return &Logistic{R: r, K: k}
}

func (l *Logistic) Name() string {
	return "logistic"
}

func (l *Logistic) Next(n float64) float64 {
	return n + l.R*n*(1-n/l.K)
}

func (l *Logistic) Validate() error {
	if l.K <= 0 {
		return fmt.Errorf("%w: carrying capacity must be positive, got %g", popdyn.ErrInvalidParameter, l.K)
	}
	return nil
}

func (l *Logistic) Params() map[string]float64 {
	return map[string]float64{"r": l.R, "K": l.K}
}

func (l *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "r":
		l.R = value
	case "K":
		l.K = value
	default:
		return fmt.Errorf("%w: logistic has no parameter %q", popdyn.ErrInvalidParameter, name)
	}
	return nil
}
