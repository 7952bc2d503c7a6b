package waves

import (
	"math"

	"github.com/san-kum/qwave/internal/quantum"
)

// WellMode builds the n-th stationary mode of an infinite well [A,B]:
//
//	ψ(x,0) = sqrt(2/(B−A)) · sin(nπ·(x−A)/(B−A))  for x ∈ [A,B]
//
// and zero outside. Evolved under the matching InfiniteWell potential,
// its probability density is stationary; only the complex phase rotates.
type WellMode struct {
	A, B float64
	N    int
}

func (m WellMode) Build(g quantum.Grid) (*quantum.WaveFunction, error) {
	if m.A >= m.B {
		return nil, &quantum.ParameterError{Name: "a", Value: m.A, Reason: "left wall must be below right wall"}
	}
	if m.N < 1 {
		return nil, &quantum.ParameterError{Name: "n", Value: float64(m.N), Reason: "mode number must be at least 1"}
	}
	if g.Points < 3 {
		return nil, &quantum.ParameterError{
			Name:   "points",
			Value:  float64(g.Points),
			Reason: "grid resolution insufficient for integration",
		}
	}

	width := m.B - m.A
	amp := math.Sqrt(2 / width)
	psi := make([]complex128, g.Points)
	for i, x := range g.Positions() {
		if x <= m.A || x >= m.B {
			continue
		}
		psi[i] = complex(amp*math.Sin(float64(m.N)*math.Pi*(x-m.A)/width), 0)
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
