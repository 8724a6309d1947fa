package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/computational-ecology-lab/single-population-workshop/internal/analysis"
	"github.com/computational-ecology-lab/single-population-workshop/internal/models"
	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
	"github.com/computational-ecology-lab/single-population-workshop/internal/sim"
)

var _ = Describe("PerCapitaGrowthRates", func() {
	It("returns one rate per transition", func() {
		traj := popdyn.Trajectory{1, 2, 4, 8}
		rates, err := analysis.PerCapitaGrowthRates(traj)
		Expect(err).NotTo(HaveOccurred())
		Expect(rates).To(HaveLen(3))
		for _, r := range rates {
			Expect(r).To(BeNumerically("~", math.Log(2), 1e-12))
		}
	})

	It("round-trips the trajectory through exp", func() {
		traj, err := sim.Simulate(1, models.NewRicker(1.8, 20), 60)
		Expect(err).NotTo(HaveOccurred())

		rates, err := analysis.PerCapitaGrowthRates(traj)
		Expect(err).NotTo(HaveOccurred())

		for i, g := range rates {
			Expect(math.Exp(g) * traj[i]).To(BeNumerically("~", traj[i+1], 1e-9*traj[i+1]))
		}
	})

	It("rejects trajectories shorter than two points", func() {
		_, err := analysis.PerCapitaGrowthRates(popdyn.Trajectory{5})
		Expect(err).To(MatchError(popdyn.ErrInvalidParameter))
	})

	It("reports the index of a non-positive value", func() {
		traj := popdyn.Trajectory{1, 2, 0, 4}
		_, err := analysis.PerCapitaGrowthRates(traj)
		Expect(err).To(MatchError(popdyn.ErrDomain))

		var domErr *popdyn.DomainError
		Expect(err).To(BeAssignableToTypeOf(domErr))
		domErr = err.(*popdyn.DomainError)
		Expect(domErr.Index).To(Equal(2))
		Expect(domErr.Value).To(BeZero())
	})
})

var _ = Describe("LinearFit", func() {
	It("recovers the Ricker per-capita line", func() {
		// For the Ricker map the per-capita rate is exactly
		// r - (r/K)*N, so the fit should recover intercept r and
		// slope -r/K.
		r, k := 0.5, 20.0
		traj, err := sim.Simulate(1, models.NewRicker(r, k), 30)
		Expect(err).NotTo(HaveOccurred())

		rates, err := analysis.PerCapitaGrowthRates(traj)
		Expect(err).NotTo(HaveOccurred())

		slope, intercept, err := analysis.LinearFit(traj[:len(traj)-1], rates)
		Expect(err).NotTo(HaveOccurred())
		Expect(intercept).To(BeNumerically("~", r, 1e-6))
		Expect(slope).To(BeNumerically("~", -r/k, 1e-8))
	})

	It("rejects mismatched and degenerate inputs", func() {
		_, _, err := analysis.LinearFit([]float64{1, 2}, []float64{1})
		Expect(err).To(MatchError(popdyn.ErrInvalidParameter))

		_, _, err = analysis.LinearFit([]float64{1}, []float64{1})
		Expect(err).To(MatchError(popdyn.ErrInvalidParameter))

		_, _, err = analysis.LinearFit([]float64{3, 3, 3}, []float64{1, 2, 3})
		Expect(err).To(MatchError(popdyn.ErrInvalidParameter))
	})
})
