// Package quantum provides core primitives for 1D quantum simulation.
//
// The package defines the fundamental types shared by every other
// component:
//
//   - [Grid]: immutable discretized spatial domain
//   - [WaveFunction]: complex amplitudes sampled over a Grid
//   - [Observable]: pointwise Hermitian operators for expectation values
//   - [Validator]: parameter and normalization checks
//
// # Normalization
//
// A WaveFunction is normalized when the total probability integrates to
// one over its Grid:
//
//	Σ |ψ_i|² · dx ≈ 1
//
// Construction helpers normalize before returning; the solver re-checks
// the invariant after every integration step.
//
// # Thread Safety
//
// Grid values are immutable and freely shareable. WaveFunction instances
// are not safe for concurrent mutation; snapshots produced by Clone are
// independent copies.
package quantum
