package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// PlotTrajectory renders population against time step.
func PlotTrajectory(traj popdyn.Trajectory, caption string) string {
	return asciigraph.Plot([]float64(traj),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotSeries renders an arbitrary series, e.g. per-capita growth rates.
func PlotSeries(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotComparison overlays several trajectories in one frame with a legend
// line per series.
func PlotComparison(trajs []popdyn.Trajectory, captions []string) string {
	series := make([][]float64, len(trajs))
	for i, tr := range trajs {
		series[i] = []float64(tr)
	}
	legend := ""
	for i, c := range captions {
		if i > 0 {
			legend += "  vs  "
		}
		legend += c
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(legend),
	)
}
