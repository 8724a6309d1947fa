package analysis_test

import (
	"math"
	"testing"

	"github.com/computational-ecology-lab/single-population-workshop/internal/analysis"
	"github.com/computational-ecology-lab/single-population-workshop/internal/models"
	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
	"github.com/computational-ecology-lab/single-population-workshop/internal/sim"
)

func TestSettlingValueConvergentRicker(t *testing.T) {
	traj, err := sim.Simulate(1, models.NewRicker(0.5, 20), 100)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	val, ok := analysis.SettlingValue(traj, 1e-6, 10)
	if !ok {
		t.Fatal("expected convergent trajectory to settle")
	}

	// The fixed point of the Ricker map is the carrying capacity.
	if math.Abs(val-20) > 1e-4 {
		t.Errorf("expected settling value near 20, got %g", val)
	}
}

func TestSettlingValueChaotic(t *testing.T) {
	traj, err := sim.Simulate(1, models.NewRicker(3.5, 20), 500)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if _, ok := analysis.SettlingValue(traj, 1e-6, 100); ok {
		t.Error("chaotic trajectory should not settle")
	}
}

func TestAttractorValues(t *testing.T) {
	fixed := popdyn.Trajectory{5, 5, 5, 5, 5, 5}
	if got := analysis.AttractorValues(fixed, 4, 1e-3); len(got) != 1 {
		t.Errorf("fixed point: expected 1 attractor value, got %d", len(got))
	}

	cycle := popdyn.Trajectory{3, 7, 3, 7, 3, 7, 3, 7}
	if got := analysis.AttractorValues(cycle, 6, 1e-3); len(got) != 2 {
		t.Errorf("2-cycle: expected 2 attractor values, got %d", len(got))
	}
}

func TestDescribeAttractor(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, "empty"},
		{"fixed point", []float64{20}, "fixed point"},
		{"2-cycle", []float64{12, 28}, "2-cycle"},
		{"chaos", make([]float64, 40), "chaotic or high-period"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analysis.DescribeAttractor(tt.values); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDescribeAttractorFromTrajectory(t *testing.T) {
	stable, err := sim.Simulate(1, models.NewRicker(0.5, 20), 500)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	values := analysis.AttractorValues(stable, 100, 1e-3)
	if got := analysis.DescribeAttractor(values); got != "fixed point" {
		t.Errorf("stable regime: expected fixed point, got %q", got)
	}

	chaotic, err := sim.Simulate(1, models.NewRicker(3.5, 20), 500)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	values = analysis.AttractorValues(chaotic, 100, 1e-3)
	if got := analysis.DescribeAttractor(values); got != "chaotic or high-period" {
		t.Errorf("chaotic regime: expected chaotic label, got %q (%d values)", got, len(values))
	}
}

func TestLyapunovRegimes(t *testing.T) {
	stable, err := analysis.Lyapunov(models.NewRicker(0.5, 20), 1, 200, 2000, 1e-8)
	if err != nil {
		t.Fatalf("lyapunov failed: %v", err)
	}
	if stable >= 0 {
		t.Errorf("stable regime: expected negative exponent, got %g", stable)
	}

	chaotic, err := analysis.Lyapunov(models.NewRicker(3.5, 20), 1, 200, 2000, 1e-8)
	if err != nil {
		t.Fatalf("lyapunov failed: %v", err)
	}
	if chaotic <= 0 {
		t.Errorf("chaotic regime: expected positive exponent, got %g", chaotic)
	}
}

func TestLyapunovInvalidInputs(t *testing.T) {
	if _, err := analysis.Lyapunov(models.NewRicker(0.5, 20), 1, 0, 0, 1e-8); err == nil {
		t.Error("expected error for zero iterations")
	}
	if _, err := analysis.Lyapunov(models.NewRicker(0.5, 20), 1, 0, 100, 0); err == nil {
		t.Error("expected error for zero perturbation")
	}
	if _, err := analysis.Lyapunov(models.NewRicker(0.5, 0), 1, 0, 100, 1e-8); err == nil {
		t.Error("expected error for invalid law")
	}
}
