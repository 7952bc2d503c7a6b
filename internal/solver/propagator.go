package solver

import (
	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/quantum"
)

// Propagator holds the precomputed Crank–Nicolson operators for one
// (grid, potential, dt) combination and advances a wavefunction one step
// at a time. Evolve drives it for whole runs; the live view drives it
// frame by frame.
type Propagator struct {
	mass, hbar, dt float64
	grid           quantum.Grid
	pot            potential.Potential

	psi   []complex128
	t     float64
	steps int

	// Solve range [lo,hi]. For a confining potential the amplitudes at
	// and beyond the walls are excluded from the solve and held at zero.
	lo, hi int

	aDiag, bDiag []complex128
	aOff, bOff   complex128

	rhs, cp, dp []complex128
}

// NewPropagator clones the initial wavefunction and precomputes the
// implicit and explicit operator coefficients. The potential is sampled
// once per grid point; confinement bounds, if any, are resolved to grid
// indices here.
func NewPropagator(mass, hbar float64, initial *quantum.WaveFunction, pot potential.Potential, dt float64) (*Propagator, error) {
	v := quantum.DefaultValidator()
	if err := v.Positive("mass", mass); err != nil {
		return nil, err
	}
	if err := v.Positive("planck_constant", hbar); err != nil {
		return nil, err
	}
	if err := v.Positive("dt", dt); err != nil {
		return nil, err
	}

	g := initial.Grid()
	n := g.Points

	p := &Propagator{
		mass: mass,
		hbar: hbar,
		dt:   dt,
		grid: g,
		pot:  pot,
		psi:  make([]complex128, n),
		lo:   0,
		hi:   n - 1,
	}
	copy(p.psi, initial.Amplitudes())

	xs := g.Positions()
	if conf, ok := pot.(potential.Confining); ok {
		a, b := conf.Bounds()
		eps := g.Dx() * 1e-9
		lo, hi := -1, -1
		for i, x := range xs {
			if x <= a+eps || x >= b-eps {
				p.psi[i] = 0
				continue
			}
			if lo < 0 {
				lo = i
			}
			hi = i
		}
		if lo < 0 || hi-lo+1 < 1 {
			return nil, &quantum.ParameterError{
				Name:   "points",
				Value:  float64(n),
				Reason: "no grid points inside well bounds",
			}
		}
		p.lo, p.hi = lo, hi
	}

	m := p.hi - p.lo + 1
	p.aDiag = make([]complex128, m)
	p.bDiag = make([]complex128, m)
	p.rhs = make([]complex128, m)
	p.cp = make([]complex128, m)
	p.dp = make([]complex128, m)

	dx := g.Dx()
	kin := hbar * hbar / (2 * mass * dx * dx)
	lambda := dt / (2 * hbar)

	// H: three-point kinetic stencil plus potential on the diagonal.
	p.aOff = complex(0, lambda*-kin)
	p.bOff = -p.aOff
	for j := 0; j < m; j++ {
		h := 2*kin + pot.At(xs[p.lo+j])
		p.aDiag[j] = complex(1, lambda*h)
		p.bDiag[j] = complex(1, -lambda*h)
	}

	return p, nil
}

// Step advances the wavefunction by one dt.
func (p *Propagator) Step() {
	window := p.psi[p.lo : p.hi+1]
	m := len(window)

	// rhs = (I − i·dt/(2ħ)·H)·ψ; neighbors outside the solve range are
	// zero, which is exactly the Dirichlet condition.
	for j := 0; j < m; j++ {
		v := p.bDiag[j] * window[j]
		if j > 0 {
			v += p.bOff * window[j-1]
		}
		if j < m-1 {
			v += p.bOff * window[j+1]
		}
		p.rhs[j] = v
	}

	solveTridiag(p.aDiag, p.aOff, p.rhs, window, p.cp, p.dp)

	p.t += p.dt
	p.steps++
}

// Time returns the current simulation time.
func (p *Propagator) Time() float64 { return p.t }

// Steps returns the number of steps taken.
func (p *Propagator) Steps() int { return p.steps }

// Grid returns the spatial domain.
func (p *Propagator) Grid() quantum.Grid { return p.grid }

// Wave wraps the working amplitudes without copying; treat it as
// read-only and valid only until the next Step.
func (p *Propagator) Wave() *quantum.WaveFunction {
	w, _ := quantum.NewWaveFunction(p.grid, p.psi)
	return w
}

// Snapshot returns an independent copy of the current wavefunction.
func (p *Propagator) Snapshot() *quantum.WaveFunction {
	return p.Wave().Clone()
}
