// Package analysis provides diagnostics for population trajectories.
//
// The package characterizes the long-run behavior of discrete-time
// population models:
//
//   - [PerCapitaGrowthRates]: log-ratio growth rate series of a trajectory
//   - [LinearFit]: least-squares line through the per-capita diagnostic
//   - [SettlingValue]: fixed-point detection for convergent runs
//   - [AttractorValues]: distinct tail values for period/chaos readout
//   - [Lyapunov]: largest Lyapunov exponent via trajectory separation
//
// # Chaos Detection
//
// A positive Lyapunov exponent indicates chaotic dynamics:
//
//	lambda, _ := analysis.Lyapunov(law, n0, 200, 1000, 1e-8)
//	if lambda > 0 {
//	    // sensitive dependence on initial conditions
//	}
package analysis
