package popdyn

import (
	"fmt"
)

// NoIntervention leaves the population untouched.
type NoIntervention struct{}

func (NoIntervention) Name() string                   { return "none" }
func (NoIntervention) Apply(n float64, t int) float64 { return n }

// ProportionalHarvest removes a fixed fraction of the population after
// every growth step (constant-effort harvesting).
type ProportionalHarvest struct {
	Rate float64
}

func NewProportionalHarvest(rate float64) (*ProportionalHarvest, error) {
	if rate < 0 || rate >= 1 {
		return nil, fmt.Errorf("%w: harvest rate must be in [0, 1), got %g", ErrInvalidParameter, rate)
	}
	return &ProportionalHarvest{Rate: rate}, nil
}

func (h *ProportionalHarvest) Name() string { return "harvest" }

func (h *ProportionalHarvest) Apply(n float64, t int) float64 {
	return n * (1 - h.Rate)
}
