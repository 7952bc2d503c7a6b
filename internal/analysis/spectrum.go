package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/qwave/internal/quantum"
)

// Spectrum is a momentum-space probability distribution: Power[i] is the
// normalized weight at wavenumber K[i], with K ascending.
type Spectrum struct {
	K     []float64
	Power []float64
}

// MomentumSpectrum computes |ψ̃(k)|² via FFT of the sampled amplitudes,
// shifted so wavenumbers ascend, and normalized so Σ Power·dk = 1.
func MomentumSpectrum(w *quantum.WaveFunction) Spectrum {
	g := w.Grid()
	n := g.Points
	psiK := fft.FFT(w.Amplitudes())

	ks := wavenumbers(n, g.Dx())
	dk := ks[1] - ks[0]

	// fftshift so negative wavenumbers come first.
	half := (n + 1) / 2
	power := make([]float64, n)
	shifted := make([]float64, n)
	total := 0.0
	for i, a := range psiK {
		re, im := real(a), imag(a)
		power[i] = re*re + im*im
		total += power[i]
	}
	for i := 0; i < n; i++ {
		shifted[i] = power[(i+half)%n]
	}

	if total > 0 {
		scale := 1.0 / (total * dk)
		for i := range shifted {
			shifted[i] *= scale
		}
	}

	return Spectrum{K: ks, Power: shifted}
}

// MeanMomentum returns ⟨p⟩ = ħ·Σ k·P(k)·dk from the momentum spectrum.
func MeanMomentum(w *quantum.WaveFunction, hbar float64) float64 {
	sp := MomentumSpectrum(w)
	dk := sp.K[1] - sp.K[0]
	sum := 0.0
	for i, k := range sp.K {
		sum += k * sp.Power[i] * dk
	}
	return hbar * sum
}

// wavenumbers returns the FFT sample wavenumbers k = 2π·freq in
// ascending order for n samples spaced dx apart.
func wavenumbers(n int, dx float64) []float64 {
	ks := make([]float64, n)
	scale := 2 * math.Pi / (float64(n) * dx)
	start := -(n / 2)
	for i := 0; i < n; i++ {
		ks[i] = float64(start+i) * scale
	}
	return ks
}
