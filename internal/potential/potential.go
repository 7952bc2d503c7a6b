// Package potential provides the spatial energy profiles a particle
// evolves under.
//
// Each variant implements the [Potential] interface:
//
//   - [Free]: V(x) = 0 everywhere
//   - [InfiniteWell]: V(x) = 0 inside [a,b], confinement enforced as a
//     boundary condition rather than an infinite energy value
//   - [Step]: V(x) = 0 for x < x0, V0 for x >= x0
//
// All variants return finite energies for every finite position. The
// InfiniteWell additionally implements [Confining] so the solver can
// apply Dirichlet boundary enforcement at the well edges.
package potential

// Potential maps position to potential energy.
type Potential interface {
	At(x float64) float64
	Name() string
	Params() map[string]float64
}

// Confining marks potentials whose confinement is expressed as a
// forced-zero boundary condition. The solver zeroes amplitudes at and
// beyond the reported bounds every step.
type Confining interface {
	Bounds() (a, b float64)
}

// Free is the free-particle potential: V(x) = 0 everywhere.
type Free struct{}

func NewFree() Free { return Free{} }

func (Free) At(float64) float64         { return 0 }
func (Free) Name() string               { return "free" }
func (Free) Params() map[string]float64 { return map[string]float64{} }
