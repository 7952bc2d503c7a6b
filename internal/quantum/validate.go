package quantum

import "math"

// Validator checks parameters before computation begins and the
// normalization invariant during it. Implementations are injected into
// the solver so tests can substitute permissive or strict tolerances.
type Validator interface {
	Positive(name string, value float64) error
	NonNegative(name string, value float64) error
	Range(name string, value, min, max float64) error
	Normalization(w *WaveFunction, tolerance float64) error
}

// DefaultValidator returns the strict validator used in production:
// every check also rejects NaN and Inf.
func DefaultValidator() Validator { return strictValidator{} }

type strictValidator struct{}

func (strictValidator) Positive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ParameterError{Name: name, Value: value, Reason: "value must be finite"}
	}
	if value <= 0 {
		return &ParameterError{Name: name, Value: value, Reason: "value must be positive"}
	}
	return nil
}

func (strictValidator) NonNegative(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ParameterError{Name: name, Value: value, Reason: "value must be finite"}
	}
	if value < 0 {
		return &ParameterError{Name: name, Value: value, Reason: "value must be non-negative"}
	}
	return nil
}

func (strictValidator) Range(name string, value, min, max float64) error {
	if math.IsNaN(value) || value < min || value > max {
		return &ParameterError{Name: name, Value: value, Reason: "value out of range"}
	}
	return nil
}

func (strictValidator) Normalization(w *WaveFunction, tolerance float64) error {
	norm := w.Norm()
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		return &PhysicsError{Quantity: "norm", Value: norm, Reason: "total probability is not finite"}
	}
	if math.Abs(norm-1) > tolerance {
		return &PhysicsError{Quantity: "norm", Value: norm, Reason: "norm drift exceeds tolerance"}
	}
	return nil
}
