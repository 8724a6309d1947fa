package popdyn

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a structural precondition violation,
	// detected before any computation starts.
	ErrInvalidParameter = errors.New("popdyn: invalid parameter")

	// ErrDomain indicates a mathematical operation hit an out-of-domain
	// value, e.g. the log of a non-positive population.
	ErrDomain = errors.New("popdyn: value outside function domain")
)

// DomainError reports the offending index and value of an out-of-domain
// operation. It unwraps to ErrDomain.
type DomainError struct {
	Index int
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("popdyn: non-positive population %g at index %d", e.Value, e.Index)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// SweepError identifies which parameter value aborted a sweep.
type SweepError struct {
	ParamIndex int
	Param      float64
	Err        error
}

func (e *SweepError) Error() string {
	return fmt.Sprintf("sweep row %d (param=%g): %v", e.ParamIndex, e.Param, e.Err)
}

func (e *SweepError) Unwrap() error {
	return e.Err
}
