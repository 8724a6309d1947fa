package experiment

import (
	"fmt"

	"github.com/computational-ecology-lab/single-population-workshop/internal/metrics"
	"github.com/computational-ecology-lab/single-population-workshop/internal/models"
	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

type Registry struct {
	laws map[string]func(r, k float64) popdyn.GrowthLaw
}

func NewRegistry() *Registry {
	r := &Registry{
		laws: make(map[string]func(r, k float64) popdyn.GrowthLaw),
	}

	r.laws["exponential"] = func(rate, _ float64) popdyn.GrowthLaw { return models.NewExponential(rate) }
	r.laws["ricker"] = func(rate, k float64) popdyn.GrowthLaw { return models.NewRicker(rate, k) }
	r.laws["logistic"] = func(rate, k float64) popdyn.GrowthLaw { return models.NewLogistic(rate, k) }
	r.laws["beverton-holt"] = func(rate, k float64) popdyn.GrowthLaw { return models.NewBevertonHolt(rate, k) }

	return r
}

func (r *Registry) GetLaw(name string, rate, k float64) (popdyn.GrowthLaw, error) {
	fn, ok := r.laws[name]
	if !ok {
		return nil, fmt.Errorf("unknown growth law: %s", name)
	}
	return fn(rate, k), nil
}

// Constructor returns a sweep constructor that varies the growth rate of
// the named law while holding k fixed.
func (r *Registry) Constructor(name string, k float64) (func(param float64) popdyn.GrowthLaw, error) {
	fn, ok := r.laws[name]
	if !ok {
		return nil, fmt.Errorf("unknown growth law: %s", name)
	}
	return func(param float64) popdyn.GrowthLaw { return fn(param, k) }, nil
}

func (r *Registry) ListLaws() []string {
	names := make([]string, 0, len(r.laws))
	for name := range r.laws {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics returns the standard per-run observables.
func (r *Registry) DefaultMetrics() []popdyn.Metric {
	return []popdyn.Metric{
		metrics.NewMeanPopulation(),
		metrics.NewAmplitude(),
		metrics.NewExtinction(1e-6),
	}
}
