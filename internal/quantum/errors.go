package quantum

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a constructor or solver argument
	// outside its valid domain.
	ErrInvalidParameter = errors.New("quantum: invalid parameter")

	// ErrPhysics indicates a physically inconsistent runtime state:
	// a non-normalizable wavefunction, norm drift beyond tolerance, or a
	// non-real expectation value of a Hermitian observable.
	ErrPhysics = errors.New("quantum: physical invariant violated")
)

// ParameterError reports which parameter was rejected and why.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// PhysicsError reports a violated physical invariant together with the
// offending quantity.
type PhysicsError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *PhysicsError) Error() string {
	return fmt.Sprintf("physics violation: %s=%g: %s", e.Quantity, e.Value, e.Reason)
}

func (e *PhysicsError) Unwrap() error { return ErrPhysics }
