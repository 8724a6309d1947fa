package sim

import (
	"context"
	"fmt"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// Simulate iterates a growth law from n0 for tsteps steps and returns the
// full trajectory. Index 0 holds n0; index i+1 holds law.Next applied to
// index i. A zero initial population is legal and yields an all-zero
// trajectory.
func Simulate(n0 float64, law popdyn.GrowthLaw, tsteps int) (popdyn.Trajectory, error) {
	if tsteps < 1 {
		return nil, fmt.Errorf("%w: tsteps must be at least 1, got %d", popdyn.ErrInvalidParameter, tsteps)
	}
	if n0 < 0 {
		return nil, fmt.Errorf("%w: initial population must be non-negative, got %g", popdyn.ErrInvalidParameter, n0)
	}
	if err := law.Validate(); err != nil {
		return nil, err
	}

	traj := make(popdyn.Trajectory, tsteps)
	traj[0] = n0
	for i := 0; i < tsteps-1; i++ {
		traj[i+1] = law.Next(traj[i])
	}
	return traj, nil
}

// Config controls a Simulator run.
type Config struct {
	Steps int
}

// Result bundles a trajectory with the metric values accumulated during
// the run.
type Result struct {
	Trajectory popdyn.Trajectory
	Metrics    map[string]float64
}

// Simulator wraps Simulate with per-step metrics and an optional
// intervention applied after each growth step.
type Simulator struct {
	law          popdyn.GrowthLaw
	intervention popdyn.Intervention
	metrics      []popdyn.Metric
}

func New(law popdyn.GrowthLaw) *Simulator {
	return &Simulator{
		law:          law,
		intervention: popdyn.NoIntervention{},
		metrics:      make([]popdyn.Metric, 0),
	}
}

func (s *Simulator) AddMetric(m popdyn.Metric)              { s.metrics = append(s.metrics, m) }
func (s *Simulator) SetIntervention(iv popdyn.Intervention) { s.intervention = iv }

func (s *Simulator) Run(ctx context.Context, n0 float64, cfg Config) (*Result, error) {
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d", popdyn.ErrInvalidParameter, cfg.Steps)
	}
	if n0 < 0 {
		return nil, fmt.Errorf("%w: initial population must be non-negative, got %g", popdyn.ErrInvalidParameter, n0)
	}
	if err := s.law.Validate(); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	traj := make(popdyn.Trajectory, 0, cfg.Steps)
	n := n0
	traj = append(traj, n)

	for _, m := range s.metrics {
		m.Observe(n, 0)
	}

	for t := 1; t < cfg.Steps; t++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n = s.intervention.Apply(s.law.Next(n), t)
		traj = append(traj, n)

		for _, m := range s.metrics {
			m.Observe(n, t)
		}
	}

	result := &Result{
		Trajectory: traj,
		Metrics:    make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
