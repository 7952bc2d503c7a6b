package waves

import (
	"math"

	"github.com/san-kum/qwave/internal/quantum"
)

// PlaneWave builds ψ(x,0) = A·exp(i·(k0·x + φ)) box-normalized over the
// grid: a true plane wave cannot normalize on an infinite domain, so the
// grid's finite extent is the normalization box.
type PlaneWave struct {
	K0    float64
	Phase float64
}

func (p PlaneWave) Build(g quantum.Grid) (*quantum.WaveFunction, error) {
	if g.Points < 3 {
		return nil, &quantum.ParameterError{
			Name:   "points",
			Value:  float64(g.Points),
			Reason: "grid resolution insufficient for integration",
		}
	}

	amp := 1.0 / math.Sqrt(g.XMax-g.XMin)
	psi := make([]complex128, g.Points)
	for i, x := range g.Positions() {
		s, c := math.Sincos(p.K0*x + p.Phase)
		psi[i] = complex(amp*c, amp*s)
	}

	w, err := quantum.NewWaveFunction(g, psi)
	if err != nil {
		return nil, err
	}
	if err := w.Normalize(); err != nil {
		return nil, err
	}
	return w, nil
}

// Wavelength returns λ = 2π/k0, +Inf for a constant wave.
func (p PlaneWave) Wavelength() float64 {
	if p.K0 == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(p.K0)
}

// Momentum returns p = ħk0.
func (p PlaneWave) Momentum(hbar float64) float64 {
	return hbar * p.K0
}

// AngularFrequency returns ω = ħk0²/(2m).
func (p PlaneWave) AngularFrequency(mass, hbar float64) float64 {
	return hbar * p.K0 * p.K0 / (2 * mass)
}

// Energy returns E = p²/(2m).
func (p PlaneWave) Energy(mass, hbar float64) float64 {
	mom := p.Momentum(hbar)
	return mom * mom / (2 * mass)
}

// PhaseVelocity returns v_p = ω/k0.
func (p PlaneWave) PhaseVelocity(mass, hbar float64) float64 {
	return p.AngularFrequency(mass, hbar) / p.K0
}

// Period returns T = 2π/ω.
func (p PlaneWave) Period(mass, hbar float64) float64 {
	return 2 * math.Pi / p.AngularFrequency(mass, hbar)
}
