package sim

import (
	"fmt"
	"sync"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

// LawConstructor builds a growth law for one swept parameter value, e.g.
// fixing K and varying r for a Ricker bifurcation sweep.
type LawConstructor func(param float64) popdyn.GrowthLaw

// Sweep runs one independent simulation per parameter value and collects
// the trajectories. Row i of the result corresponds to params[i]; every
// row starts from the same n0 and has length tmax.
//
// The sweep is all-or-nothing: if any row fails validation the whole sweep
// fails with a SweepError naming the offending parameter, and no partial
// result is returned. Rows run concurrently; each one owns its law
// instance and its output slot, so no state is shared between rows.
func Sweep(params []float64, mk LawConstructor, n0 float64, tmax int) (*popdyn.SweepResult, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: parameter sweep requires at least one value", popdyn.ErrInvalidParameter)
	}
	if tmax < 1 {
		return nil, fmt.Errorf("%w: tmax must be at least 1, got %d", popdyn.ErrInvalidParameter, tmax)
	}

	rows := make([]popdyn.Trajectory, len(params))
	errs := make([]error, len(params))

	var wg sync.WaitGroup
	for i, p := range params {
		wg.Add(1)
		go func(idx int, param float64) {
			defer wg.Done()
			rows[idx], errs[idx] = Simulate(n0, mk(param), tmax)
		}(i, p)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &popdyn.SweepError{ParamIndex: i, Param: params[i], Err: err}
		}
	}

	result := &popdyn.SweepResult{
		Params: make([]float64, len(params)),
		Rows:   rows,
	}
	copy(result.Params, params)
	return result, nil
}

// ParamRange returns n evenly spaced values from min to max inclusive.
func ParamRange(min, max float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: range requires at least one value, got %d", popdyn.ErrInvalidParameter, n)
	}
	if n == 1 {
		return []float64{min}, nil
	}
	step := (max - min) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = min + float64(i)*step
	}
	return values, nil
}
