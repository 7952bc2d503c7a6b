package quantum

// Observable is a pointwise Hermitian operator applied to a sampled
// wavefunction. Apply returns Oψ on the same grid; implementations must
// not modify the input slice.
type Observable interface {
	Name() string
	Apply(psi []complex128, g Grid) []complex128
}

// Position is the operator x: (Oψ)_i = x_i·ψ_i.
type Position struct{}

func (Position) Name() string { return "x" }

func (Position) Apply(psi []complex128, g Grid) []complex128 {
	out := make([]complex128, len(psi))
	for i, a := range psi {
		out[i] = complex(g.Position(i), 0) * a
	}
	return out
}

// Momentum is the operator −iħ d/dx via central finite differences.
// Endpoints use one-sided differences; the Hermiticity error this
// introduces stays within tolerance for states that vanish at the grid
// edges.
type Momentum struct {
	Hbar float64
}

func (Momentum) Name() string { return "p" }

func (m Momentum) Apply(psi []complex128, g Grid) []complex128 {
	n := len(psi)
	out := make([]complex128, n)
	if n < 2 {
		return out
	}

	dx := g.Dx()
	factor := complex(0, -m.Hbar)

	out[0] = factor * (psi[1] - psi[0]) / complex(dx, 0)
	for i := 1; i < n-1; i++ {
		out[i] = factor * (psi[i+1] - psi[i-1]) / complex(2*dx, 0)
	}
	out[n-1] = factor * (psi[n-1] - psi[n-2]) / complex(dx, 0)
	return out
}

// PotentialEnergy is the multiplicative operator V(x): (Oψ)_i = V(x_i)·ψ_i.
type PotentialEnergy struct {
	V func(x float64) float64
}

func (PotentialEnergy) Name() string { return "V" }

func (p PotentialEnergy) Apply(psi []complex128, g Grid) []complex128 {
	out := make([]complex128, len(psi))
	for i, a := range psi {
		out[i] = complex(p.V(g.Position(i)), 0) * a
	}
	return out
}
