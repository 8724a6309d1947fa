// Package viz renders trajectories, growth-rate diagnostics and
// bifurcation sweeps in the terminal, and hosts the interactive live view.
package viz
