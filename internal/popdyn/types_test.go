package popdyn

import (
	"errors"
	"math"
	"testing"
)

func TestTrajectoryClone(t *testing.T) {
	tr := Trajectory{1, 2, 3}
	c := tr.Clone()
	c[0] = 99

	if tr[0] != 1 {
		t.Error("clone should not share backing storage")
	}
}

func TestTrajectoryIsValid(t *testing.T) {
	if !(Trajectory{1, 2, 3}).IsValid() {
		t.Error("finite trajectory reported invalid")
	}
	if (Trajectory{1, math.NaN()}).IsValid() {
		t.Error("NaN trajectory reported valid")
	}
	if (Trajectory{1, math.Inf(1)}).IsValid() {
		t.Error("Inf trajectory reported valid")
	}
}

func TestTrajectoryTail(t *testing.T) {
	tr := Trajectory{1, 2, 3, 4, 5}

	tail := tr.Tail(2)
	if len(tail) != 2 || tail[0] != 4 || tail[1] != 5 {
		t.Errorf("expected tail [4 5], got %v", tail)
	}

	if len(tr.Tail(10)) != 5 {
		t.Error("oversized tail should return the whole trajectory")
	}
}

func TestTrajectoryMinMaxLast(t *testing.T) {
	tr := Trajectory{3, 1, 4, 1, 5}
	if tr.Min() != 1 || tr.Max() != 5 || tr.Last() != 5 {
		t.Errorf("min/max/last wrong: %g %g %g", tr.Min(), tr.Max(), tr.Last())
	}

	var empty Trajectory
	if empty.Min() != 0 || empty.Max() != 0 || empty.Last() != 0 {
		t.Error("empty trajectory helpers should return 0")
	}
}

func TestSweepResultShape(t *testing.T) {
	s := &SweepResult{
		Params: []float64{1, 2},
		Rows:   []Trajectory{{1, 2, 3}, {4, 5, 6}},
	}

	rows, cols := s.Shape()
	if rows != 2 || cols != 3 {
		t.Errorf("expected 2x3, got %dx%d", rows, cols)
	}

	tails := s.Tails(2)
	if len(tails) != 2 || tails[0][0] != 2 || tails[1][1] != 6 {
		t.Errorf("unexpected tails: %v", tails)
	}

	empty := &SweepResult{}
	if r, c := empty.Shape(); r != 0 || c != 0 {
		t.Errorf("empty result should have shape 0x0, got %dx%d", r, c)
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	err := &DomainError{Index: 3, Value: -1}

	if !errors.Is(err, ErrDomain) {
		t.Error("DomainError should unwrap to ErrDomain")
	}
	if err.Error() == "" {
		t.Error("expected a message")
	}
}

func TestSweepErrorUnwrap(t *testing.T) {
	cause := &DomainError{Index: 0, Value: 0}
	err := &SweepError{ParamIndex: 2, Param: 1.5, Err: cause}

	if !errors.Is(err, ErrDomain) {
		t.Error("SweepError should unwrap to its cause")
	}

	var domErr *DomainError
	if !errors.As(err, &domErr) {
		t.Error("errors.As should find the wrapped DomainError")
	}
}

func TestProportionalHarvest(t *testing.T) {
	h, err := NewProportionalHarvest(0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := h.Apply(100, 1); got != 75 {
		t.Errorf("expected 75, got %g", got)
	}

	for _, rate := range []float64{-0.1, 1, 1.5} {
		if _, err := NewProportionalHarvest(rate); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("rate %g: expected ErrInvalidParameter, got %v", rate, err)
		}
	}
}

func TestNoIntervention(t *testing.T) {
	var iv Intervention = NoIntervention{}
	if got := iv.Apply(42, 7); got != 42 {
		t.Errorf("expected 42, got %g", got)
	}
}
