package solver

import (
	"fmt"
	"math"

	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/quantum"
)

// Solver integrates an initial wavefunction under a potential. It holds
// no state across Evolve calls.
type Solver struct {
	Mass      float64
	Hbar      float64
	Tolerance float64
	Validator quantum.Validator
}

// New returns a solver with the default norm tolerance and the strict
// validator.
func New(mass, hbar float64) *Solver {
	return &Solver{
		Mass:      mass,
		Hbar:      hbar,
		Tolerance: quantum.NormTolerance,
		Validator: quantum.DefaultValidator(),
	}
}

// StepError wraps an error with the step and time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }

// Evolve runs the integration loop to completion and returns the full
// time series: the initial snapshot at t=0 plus one snapshot per stride
// steps (the final step is always stored). The initial wavefunction is
// never mutated.
//
// If the norm drifts beyond the tolerance at any step, evolution aborts
// with a PhysicsError and no partial result: the instability is a
// property of the chosen dt/grid combination, so a retry with identical
// inputs would reproduce the identical failure.
func (s *Solver) Evolve(initial *quantum.WaveFunction, pot potential.Potential, totalTime, dt float64, stride int) (*Result, error) {
	v := s.Validator
	if v == nil {
		v = quantum.DefaultValidator()
	}

	if err := v.Positive("total_time", totalTime); err != nil {
		return nil, err
	}
	if err := v.Positive("dt", dt); err != nil {
		return nil, err
	}
	if stride < 1 {
		return nil, &quantum.ParameterError{
			Name:   "snapshot_stride",
			Value:  float64(stride),
			Reason: "stride must be at least 1",
		}
	}
	if err := v.Normalization(initial, s.Tolerance); err != nil {
		return nil, err
	}

	prop, err := NewPropagator(s.Mass, s.Hbar, initial, pot, dt)
	if err != nil {
		return nil, err
	}

	// Boundary enforcement on a confining potential may already have
	// removed probability from a state overlapping the walls.
	if err := v.Normalization(prop.Wave(), s.Tolerance); err != nil {
		return nil, &StepError{Step: 0, Time: 0, Wrapped: err}
	}

	steps := int(math.Round(totalTime / dt))
	if steps < 1 {
		steps = 1
	}

	res := &Result{
		grid: initial.Grid(),
		pot:  pot,
	}
	res.times = append(res.times, 0)
	res.snaps = append(res.snaps, prop.Snapshot())

	for i := 1; i <= steps; i++ {
		prop.Step()

		if err := v.Normalization(prop.Wave(), s.Tolerance); err != nil {
			return nil, &StepError{Step: i, Time: prop.Time(), Wrapped: err}
		}

		if i%stride == 0 || i == steps {
			res.times = append(res.times, prop.Time())
			res.snaps = append(res.snaps, prop.Snapshot())
		}
	}

	return res, nil
}
