package experiment

import (
	"context"
	"fmt"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
	"github.com/computational-ecology-lab/single-population-workshop/internal/sim"
)

type Config struct {
	Law     string
	N0      float64
	Steps   int
	R       float64
	K       float64
	Harvest float64
}

type Experiment struct {
	cfg       Config
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(law popdyn.GrowthLaw, ms []popdyn.Metric) error {
	e.simulator = sim.New(law)
	for _, m := range ms {
		e.simulator.AddMetric(m)
	}
	if e.cfg.Harvest > 0 {
		h, err := popdyn.NewProportionalHarvest(e.cfg.Harvest)
		if err != nil {
			return err
		}
		e.simulator.SetIntervention(h)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.cfg.N0, sim.Config{Steps: e.cfg.Steps})
}
