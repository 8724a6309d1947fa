package models

import (
	"fmt"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// BevertonHolt is the compensatory map N(t+1) = R*N / (1 + (R-1)/K * N).
// It approaches K monotonically for any R > 1 and never oscillates, which
// makes it the contrast case to the Ricker map in the workshop.
type BevertonHolt struct {
	R float64
	K float64
}

func NewBevertonHolt(r, k float64) *BevertonHolt {
	return &BevertonHolt{R: r, K: k}
}

func (b *BevertonHolt) Name() string {
	return "beverton-holt"
}

func (b *BevertonHolt) Next(n float64) float64 {
	return b.R * n / (1 + (b.R-1)/b.K*n)
}

func (b *BevertonHolt) Validate() error {
	if b.K <= 0 {
		return fmt.Errorf("%w: carrying capacity must be positive, got %g", popdyn.ErrInvalidParameter, b.K)
	}
	return nil
}

func (b *BevertonHolt) Params() map[string]float64 {
	return map[string]float64{"R": b.R, "K": b.K}
}

func (b *BevertonHolt) SetParam(name string, value float64) error {
	switch name {
	case "R":
		b.R = value
	case "K":
		b.K = value
	default:
		return fmt.Errorf("%w: beverton-holt has no parameter %q", popdyn.ErrInvalidParameter, name)
	}
	return nil
}
