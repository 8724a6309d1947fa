package popdyn

import (
	"math"
)

// Trajectory is a population time series. Index 0 holds the initial
// population; index i holds the population after i applications of the
// growth law.
type Trajectory []float64

func (tr Trajectory) Clone() Trajectory {
	c := make(Trajectory, len(tr))
	copy(c, tr)
	return c
}

func (tr Trajectory) IsValid() bool {
	for _, v := range tr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (tr Trajectory) Last() float64 {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1]
}

// Tail returns the last n values, or the whole trajectory if it is shorter.
// The returned slice aliases the trajectory.
func (tr Trajectory) Tail(n int) Trajectory {
	if n >= len(tr) {
		return tr
	}
	return tr[len(tr)-n:]
}

func (tr Trajectory) Min() float64 {
	if len(tr) == 0 {
		return 0
	}
	m := tr[0]
	for _, v := range tr[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func (tr Trajectory) Max() float64 {
	if len(tr) == 0 {
		return 0
	}
	m := tr[0]
	for _, v := range tr[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// GrowthLaw maps the current population to the next one. Implementations
// are pure: two calls with the same input return the same output.
type GrowthLaw interface {
	Next(n float64) float64
	Name() string
	Validate() error
}

// Configurable is implemented by laws whose parameters can be inspected
// and retuned, for the live view and for sweep constructors.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Intervention adjusts the population after each growth step, e.g. a
// constant-effort harvest. t is the index of the step just taken.
type Intervention interface {
	Apply(n float64, t int) float64
	Name() string
}

// Metric accumulates a summary statistic over a run, one observation per
// time step.
type Metric interface {
	Name() string
	Observe(n float64, t int)
	Value() float64
	Reset()
}

// SweepResult holds one trajectory per swept parameter value. Row order
// matches the input parameter order; every row has the same length.
type SweepResult struct {
	Params []float64
	Rows   []Trajectory
}

// Shape returns (number of rows, row length).
func (s *SweepResult) Shape() (int, int) {
	if len(s.Rows) == 0 {
		return 0, 0
	}
	return len(s.Rows), len(s.Rows[0])
}

func (s *SweepResult) Row(i int) Trajectory {
	return s.Rows[i]
}

// Tails returns the last n values of every row, aliasing the rows.
func (s *SweepResult) Tails(n int) []Trajectory {
	tails := make([]Trajectory, len(s.Rows))
	for i, row := range s.Rows {
		tails[i] = row.Tail(n)
	}
	return tails
}
