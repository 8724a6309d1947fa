package experiment

import (
	"context"
	"math"
	"testing"
)

func TestRegistryGetLaw(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"exponential", "ricker", "logistic", "beverton-holt"} {
		law, err := r.GetLaw(name, 0.5, 20)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if law.Name() != name {
			t.Errorf("expected name %s, got %s", name, law.Name())
		}
	}

	if _, err := r.GetLaw("malthus", 1, 1); err == nil {
		t.Error("expected error for unknown law")
	}

	if len(r.ListLaws()) != 4 {
		t.Errorf("expected 4 laws, got %d", len(r.ListLaws()))
	}
}

func TestRegistryConstructor(t *testing.T) {
	r := NewRegistry()

	mk, err := r.Constructor("ricker", 20)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	law := mk(2.5)
	params := law.(interface{ Params() map[string]float64 }).Params()
	if params["r"] != 2.5 || params["K"] != 20 {
		t.Errorf("expected r=2.5 K=20, got %v", params)
	}

	if _, err := r.Constructor("malthus", 20); err == nil {
		t.Error("expected error for unknown law")
	}
}

func TestExperimentRun(t *testing.T) {
	r := NewRegistry()
	law, err := r.GetLaw("ricker", 0.5, 20)
	if err != nil {
		t.Fatalf("get law: %v", err)
	}

	exp := New(Config{Law: "ricker", N0: 1, Steps: 40, R: 0.5, K: 20})
	if err := exp.Setup(law, r.DefaultMetrics()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Trajectory) != 40 {
		t.Errorf("expected 40 steps, got %d", len(result.Trajectory))
	}
	if math.Abs(result.Trajectory.Last()-20) > 1e-3 {
		t.Errorf("expected final value near 20, got %g", result.Trajectory.Last())
	}
	if _, ok := result.Metrics["mean_population"]; !ok {
		t.Error("expected default metrics in result")
	}
}

func TestExperimentRunWithoutSetup(t *testing.T) {
	exp := New(Config{Law: "ricker", N0: 1, Steps: 10})
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error for un-setup experiment")
	}
}

func TestExperimentHarvestSetup(t *testing.T) {
	r := NewRegistry()
	law, _ := r.GetLaw("ricker", 0.8, 20)

	exp := New(Config{Law: "ricker", N0: 5, Steps: 100, R: 0.8, K: 20, Harvest: 0.2})
	if err := exp.Setup(law, nil); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Trajectory.Last() >= 20 {
		t.Errorf("harvested equilibrium should sit below K, got %g", result.Trajectory.Last())
	}

	bad := New(Config{Law: "ricker", N0: 1, Steps: 10, Harvest: 1.5})
	if err := bad.Setup(law, nil); err == nil {
		t.Error("expected error for out-of-range harvest rate")
	}
}
