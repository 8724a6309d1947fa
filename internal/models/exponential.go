package models

import (
	"fmt"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// Exponential is density-independent growth: N(t+1) = R * N(t), where R is
// the finite rate of increase per step.
type Exponential struct {
	R float64
}

func NewExponential(r float64) *Exponential {
	return &Exponential{R: r}
}

func (e *Exponential) Name() string {
	return "exponential"
}

func (e *Exponential) Next(n float64) float64 {
	return e.R * n
}

// Validate always succeeds: any real R is a legitimate classroom
// experiment, including decline (R < 1) and sign flips.
func (e *Exponential) Validate() error {
	return nil
}

func (e *Exponential) Params() map[string]float64 {
	return map[string]float64{"R": e.R}
}

func (e *Exponential) SetParam(name string, value float64) error {
	if name != "R" {
		return fmt.Errorf("%w: exponential has no parameter %q", popdyn.ErrInvalidParameter, name)
	}
	e.R = value
	return nil
}
