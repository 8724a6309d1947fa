package analysis

import (
	"fmt"
	"math"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// Lyapunov estimates the largest Lyapunov exponent of a growth law using
// the trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
//  1. Iterate two trajectories started perturbation apart, after skipping
//     transient steps to land on the attractor.
//  2. Accumulate ln(separation / initial separation) each step.
//  3. Renormalize the perturbed trajectory back to the reference whenever
//     the separation grows, to keep the estimate local.
func Lyapunov(law popdyn.GrowthLaw, n0 float64, transient, iterations int, perturbation float64) (float64, error) {
	if iterations < 1 {
		return 0, fmt.Errorf("%w: iterations must be at least 1, got %d", popdyn.ErrInvalidParameter, iterations)
	}
	if perturbation <= 0 {
		return 0, fmt.Errorf("%w: perturbation must be positive, got %g", popdyn.ErrInvalidParameter, perturbation)
	}
	if err := law.Validate(); err != nil {
		return 0, err
	}

	n := n0
	for i := 0; i < transient; i++ {
		n = law.Next(n)
	}

	np := n + perturbation
	d0 := perturbation

	sumLog := 0.0
	count := 0

	for i := 0; i < iterations; i++ {
		n = law.Next(n)
		np = law.Next(np)

		sep := math.Abs(np - n)
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			continue
		}

		sumLog += math.Log(sep / d0)
		count++

		// Renormalize to keep the perturbation infinitesimal.
		np = n + d0*(np-n)/sep
	}

	if count == 0 {
		return 0, nil
	}
	return sumLog / float64(count), nil
}
