// Package waves provides builders for initial wavefunctions. Each
// builder produces exactly one normalized [quantum.WaveFunction] for a
// given grid and has no other side effects.
package waves

import (
	"math"

	"github.com/san-kum/qwave/internal/quantum"
)

// WavePacket builds a Gaussian wave packet
//
//	ψ(x,0) = (2πσ²)^(−1/4) · exp(−(x−x0)²/(4σ²)) · exp(i·k0·x)
//
// renormalized against the grid's finite support.
type WavePacket struct {
	X0    float64 // center
	K0    float64 // mean wavenumber
	Sigma float64 // spatial width
}

func (p WavePacket) Build(g quantum.Grid) (*quantum.WaveFunction, error) {
	if err := quantum.DefaultValidator().Positive("sigma", p.Sigma); err != nil {
		return nil, err
	}
	if g.Points < 3 {
		return nil, &quantum.ParameterError{
			Name:   "points",
			Value:  float64(g.Points),
			Reason: "grid resolution insufficient for integration",
		}
	}

	amp := math.Pow(2*math.Pi*p.Sigma*p.Sigma, -0.25)
	psi := make([]complex128, g.Points)
	for i, x := range g.Positions() {
		d := x - p.X0
		envelope := amp * math.Exp(-d*d/(4*p.Sigma*p.Sigma))
		s, c := math.Sincos(p.K0 * x)
		psi[i] = complex(envelope*c, envelope*s)
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
