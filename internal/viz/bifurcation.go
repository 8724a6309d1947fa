package viz

import (
	"strings"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// BifurcationScatter renders a sweep as an ASCII scatter plot: parameter
// value along the x-axis, the tail values of each row along the y-axis.
// Converged rows collapse to a single dot per column; cycles and chaos
// spread vertically.
func BifurcationScatter(sweep *popdyn.SweepResult, tail, width, height int) string {
	if sweep == nil || len(sweep.Rows) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	tails := sweep.Tails(tail)

	var minVal, maxVal float64
	foundFirst := false
	for _, row := range tails {
		for _, v := range row {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if !foundFirst {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, row := range tails {
		col := i * width / len(tails)
		if col >= width {
			col = width - 1
		}
		for _, v := range row {
			r := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if r >= 0 && r < height {
				canvas[r][col] = '.'
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
