package quantum

import (
	"math"
	"math/cmplx"
)

// WaveFunction holds complex amplitudes aligned with a Grid. Amplitudes
// are mutated only by the solver during evolution; snapshots handed to
// callers are independent clones.
type WaveFunction struct {
	grid Grid
	psi  []complex128
}

// NewWaveFunction wraps the given amplitudes without copying. The slice
// length must match the grid point count.
func NewWaveFunction(g Grid, amplitudes []complex128) (*WaveFunction, error) {
	if len(amplitudes) != g.Points {
		return nil, &ParameterError{
			Name:   "amplitudes",
			Value:  float64(len(amplitudes)),
			Reason: "length must match grid point count",
		}
	}
	return &WaveFunction{grid: g, psi: amplitudes}, nil
}

// Zero returns a wavefunction with all amplitudes zero.
func Zero(g Grid) *WaveFunction {
	return &WaveFunction{grid: g, psi: make([]complex128, g.Points)}
}

// Grid returns the spatial domain the amplitudes are sampled over.
func (w *WaveFunction) Grid() Grid { return w.grid }

// Amplitudes returns the backing amplitude slice. Callers other than the
// solver must treat it as read-only.
func (w *WaveFunction) Amplitudes() []complex128 { return w.psi }

// Len returns the number of sample points.
func (w *WaveFunction) Len() int { return len(w.psi) }

// At returns the amplitude at index i.
func (w *WaveFunction) At(i int) complex128 { return w.psi[i] }

// Clone returns an independent deep copy.
func (w *WaveFunction) Clone() *WaveFunction {
	c := make([]complex128, len(w.psi))
	copy(c, w.psi)
	return &WaveFunction{grid: w.grid, psi: c}
}

// Norm returns the total probability Σ|ψ_i|²·dx.
func (w *WaveFunction) Norm() float64 {
	sum := 0.0
	for _, a := range w.psi {
		re, im := real(a), imag(a)
		sum += re*re + im*im
	}
	return sum * w.grid.Dx()
}

// Normalize rescales amplitudes so the total probability is 1. A state
// with non-positive or non-finite total probability cannot be normalized.
func (w *WaveFunction) Normalize() error {
	norm := w.Norm()
	if norm <= 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return &PhysicsError{Quantity: "norm", Value: norm, Reason: "state is not normalizable"}
	}
	scale := complex(1.0/math.Sqrt(norm), 0)
	for i := range w.psi {
		w.psi[i] *= scale
	}
	return nil
}

// ProbabilityDensity returns |ψ_i|² pointwise.
func (w *WaveFunction) ProbabilityDensity() []float64 {
	d := make([]float64, len(w.psi))
	for i, a := range w.psi {
		re, im := real(a), imag(a)
		d[i] = re*re + im*im
	}
	return d
}

// Expectation computes Σ ψ_i* · (Oψ)_i · dx for a Hermitian observable.
// The result must be real within tolerance; an imaginary part beyond
// tolerance signals an internal inconsistency and is reported as an
// error rather than silently discarded.
func (w *WaveFunction) Expectation(o Observable) (float64, error) {
	applied := o.Apply(w.psi, w.grid)

	var sum complex128
	for i, a := range w.psi {
		sum += cmplx.Conj(a) * applied[i]
	}
	sum *= complex(w.grid.Dx(), 0)

	re, im := real(sum), imag(sum)
	if math.Abs(im) > HermitianTolerance*math.Max(1, math.Abs(re)) {
		return 0, &PhysicsError{
			Quantity: "imag(<" + o.Name() + ">)",
			Value:    im,
			Reason:   "expectation value of Hermitian observable is not real",
		}
	}
	return re, nil
}
