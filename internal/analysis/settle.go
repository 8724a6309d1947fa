package analysis

import (
	"fmt"
	"math"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// SettlingValue reports whether the trajectory has converged to a fixed
// point, judged over the last window values: if every one of them lies
// within tol of the final value, the final value is returned with ok=true.
func SettlingValue(traj popdyn.Trajectory, tol float64, window int) (float64, bool) {
	if len(traj) == 0 || window < 1 {
		return 0, false
	}
	if window > len(traj) {
		window = len(traj)
	}

	final := traj[len(traj)-1]
	for _, v := range traj.Tail(window) {
		if math.Abs(v-final) > tol {
			return 0, false
		}
	}
	return final, true
}

// AttractorValues returns the distinct values visited in the last tail
// steps of a trajectory, quantized to resolution. One value means a fixed
// point, two a 2-cycle, and so on; a large count signals chaos. Order of
// first appearance is preserved.
func AttractorValues(traj popdyn.Trajectory, tail int, resolution float64) []float64 {
	if resolution <= 0 {
		resolution = 1e-3
	}

	seen := make(map[int64]bool)
	values := make([]float64, 0, 16)

	for _, v := range traj.Tail(tail) {
		key := int64(math.Round(v / resolution))
		if !seen[key] {
			seen[key] = true
			values = append(values, v)
		}
	}
	return values
}

// DescribeAttractor labels a regime by its number of distinct attractor
// values: one means a fixed point, a few a cycle, many chaos.
func DescribeAttractor(values []float64) string {
	switch n := len(values); {
	case n == 0:
		return "empty"
	case n == 1:
		return "fixed point"
	case n <= 16:
		return fmt.Sprintf("%d-cycle", n)
	default:
		return "chaotic or high-period"
	}
}
