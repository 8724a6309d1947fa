// Package popdyn provides core primitives for discrete-time single-species
// population models.
//
// The package defines the fundamental types for iterating population
// recurrences of the form N(t+1) = f(N(t)):
//
//   - [Trajectory]: population size at each time step
//   - [GrowthLaw]: one-step map interface (exponential, Ricker, ...)
//   - [SweepResult]: trajectories collected across a parameter sweep
//   - [Intervention]: per-step adjustment applied after the growth step
//
// # Example
//
//	law := models.NewRicker(0.5, 20)
//	traj, _ := sim.Simulate(1, law, 40)
//	rates, _ := analysis.PerCapitaGrowthRates(traj)
//
// # Thread Safety
//
// Trajectories and sweep results are plain values owned by their caller.
// GrowthLaw implementations are not safe for concurrent mutation through
// SetParam; sweeps construct one law per row instead of sharing.
package popdyn
