package analysis

import (
	"fmt"
	"math"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// PerCapitaGrowthRates derives the per-capita growth rate series of a
// trajectory: element i is ln(N[i+1]/N[i]), so the result has length
// len(traj)-1. The whole trajectory is checked before any element is
// computed; a non-positive value fails with a DomainError naming its
// index, since the logarithm is undefined there.
func PerCapitaGrowthRates(traj popdyn.Trajectory) ([]float64, error) {
	if len(traj) < 2 {
		return nil, fmt.Errorf("%w: growth-rate analysis needs at least 2 points, got %d", popdyn.ErrInvalidParameter, len(traj))
	}
	for i, v := range traj {
		if v <= 0 {
			return nil, &popdyn.DomainError{Index: i, Value: v}
		}
	}

	rates := make([]float64, len(traj)-1)
	for i := 0; i < len(traj)-1; i++ {
		rates[i] = math.Log(traj[i+1]) - math.Log(traj[i])
	}
	return rates, nil
}

// LinearFit computes the least-squares line y = slope*x + intercept.
// For a Ricker trajectory near equilibrium, fitting the per-capita rates
// against population size should recover intercept r and slope -r/K.
func LinearFit(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("%w: mismatched series lengths %d and %d", popdyn.ErrInvalidParameter, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, 0, fmt.Errorf("%w: linear fit needs at least 2 points, got %d", popdyn.ErrInvalidParameter, len(xs))
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}

	n := float64(len(xs))
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, fmt.Errorf("%w: degenerate fit (all x values identical)", popdyn.ErrInvalidParameter)
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}
