// Package analysis derives physical quantities from wavefunctions and
// evolution results: spatial moments, norm/center/width histories, and
// momentum-space spectra.
package analysis

import (
	"math"

	"github.com/san-kum/qwave/internal/quantum"
	"github.com/san-kum/qwave/internal/solver"
)

// Center returns the position expectation ⟨x⟩ = Σ x·|ψ|²·dx. Computed
// from the density, so the value is real by construction.
func Center(w *quantum.WaveFunction) float64 {
	g := w.Grid()
	dx := g.Dx()
	sum := 0.0
	for i, d := range w.ProbabilityDensity() {
		sum += g.Position(i) * d * dx
	}
	return sum
}

// Width returns the spatial standard deviation sqrt(⟨x²⟩ − ⟨x⟩²).
func Width(w *quantum.WaveFunction) float64 {
	g := w.Grid()
	dx := g.Dx()
	mean := Center(w)
	sum := 0.0
	for i, d := range w.ProbabilityDensity() {
		r := g.Position(i) - mean
		sum += r * r * d * dx
	}
	return math.Sqrt(sum)
}

// NormHistory returns the total probability at every stored snapshot.
func NormHistory(r *solver.Result) []float64 {
	out := make([]float64, r.Len())
	for i := range out {
		out[i] = r.Norm(i)
	}
	return out
}

// CenterHistory returns ⟨x⟩ at every stored snapshot.
func CenterHistory(r *solver.Result) []float64 {
	out := make([]float64, r.Len())
	for i := range out {
		out[i] = Center(r.Snapshot(i))
	}
	return out
}

// WidthHistory returns the packet width at every stored snapshot.
func WidthHistory(r *solver.Result) []float64 {
	out := make([]float64, r.Len())
	for i := range out {
		out[i] = Width(r.Snapshot(i))
	}
	return out
}
