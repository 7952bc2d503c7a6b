package quantum

import (
	"errors"
	"math"
	"testing"
)

func TestValidatorPositive(t *testing.T) {
	v := DefaultValidator()

	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 1.5, false},
		{"small positive", 1e-12, false},
		{"zero", 0, true},
		{"negative", -2, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Positive("param", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Positive(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error should wrap ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestValidatorNonNegative(t *testing.T) {
	v := DefaultValidator()

	if err := v.NonNegative("v0", 0); err != nil {
		t.Errorf("zero should be accepted: %v", err)
	}
	if err := v.NonNegative("v0", -1); err == nil {
		t.Error("negative value should be rejected")
	}
	if err := v.NonNegative("v0", math.Inf(-1)); err == nil {
		t.Error("infinite value should be rejected")
	}
}

func TestValidatorRange(t *testing.T) {
	v := DefaultValidator()

	if err := v.Range("x0", 0.5, 0, 1); err != nil {
		t.Errorf("in-range value should be accepted: %v", err)
	}
	if err := v.Range("x0", 2, 0, 1); err == nil {
		t.Error("out-of-range value should be rejected")
	}
	if err := v.Range("x0", math.NaN(), 0, 1); err == nil {
		t.Error("NaN should be rejected")
	}
}

func TestValidatorNormalization(t *testing.T) {
	g, _ := NewGrid(-20, 20, 801)
	v := DefaultValidator()

	w := gaussianState(t, g, 0, 0, 1)
	if err := v.Normalization(w, NormTolerance); err != nil {
		t.Errorf("unit-norm state should pass: %v", err)
	}

	for i := range w.Amplitudes() {
		w.Amplitudes()[i] *= 2
	}
	err := v.Normalization(w, NormTolerance)
	if !errors.Is(err, ErrPhysics) {
		t.Errorf("expected ErrPhysics for scaled state, got %v", err)
	}

	var perr *PhysicsError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PhysicsError, got %T", err)
	}
	if perr.Quantity != "norm" {
		t.Errorf("unexpected quantity %q", perr.Quantity)
	}
}
