// Package solver integrates the time-dependent Schrödinger equation
//
//	iħ ∂ψ/∂t = [−ħ²/(2m) ∂²/∂x² + V(x)] ψ
//
// with a Crank–Nicolson finite-difference scheme. The kinetic term is
// discretized with the standard three-point stencil and the potential
// added on the diagonal, giving a tridiagonal Hamiltonian H; each step
// solves
//
//	(I + i·dt/(2ħ)·H) ψ_{n+1} = (I − i·dt/(2ħ)·H) ψ_n
//
// with the Thomas algorithm. The scheme is unconditionally stable,
// preserves the norm independent of step size, and supports Dirichlet
// boundaries and discontinuous potentials without the periodicity a
// Fourier split-step method would impose.
//
// # Example
//
//	wf, _ := waves.WavePacket{X0: -20, K0: 5, Sigma: 2}.Build(grid)
//	s := solver.New(1, 1)
//	res, err := s.Evolve(wf, potential.NewFree(), 10, 0.01, 1)
//
// # Thread Safety
//
// A Solver holds no state across calls; distinct Evolve calls on
// distinct inputs may run in parallel. A Propagator is not safe for
// concurrent use.
package solver
