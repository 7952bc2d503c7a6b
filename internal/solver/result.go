package solver

import (
	"math"

	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/quantum"
)

// Result is the immutable time series produced by a completed Evolve
// call: ordered (t, snapshot) pairs plus the grid and potential that
// produced them. Snapshots are independent copies, not views into
// solver working state.
type Result struct {
	grid  quantum.Grid
	pot   potential.Potential
	times []float64
	snaps []*quantum.WaveFunction
}

// Len returns the number of stored snapshots, including the initial one.
func (r *Result) Len() int { return len(r.snaps) }

// Grid returns the spatial domain of the run.
func (r *Result) Grid() quantum.Grid { return r.grid }

// Potential returns the potential the run evolved under.
func (r *Result) Potential() potential.Potential { return r.pot }

// Time returns the simulation time of snapshot i.
func (r *Result) Time(i int) float64 { return r.times[i] }

// Times returns a copy of the stored snapshot times.
func (r *Result) Times() []float64 {
	ts := make([]float64, len(r.times))
	copy(ts, r.times)
	return ts
}

// Snapshot returns the stored wavefunction at index i; treat it as
// read-only.
func (r *Result) Snapshot(i int) *quantum.WaveFunction { return r.snaps[i] }

// Nearest returns the index and snapshot closest in time to t.
func (r *Result) Nearest(t float64) (int, *quantum.WaveFunction) {
	best := 0
	bestDist := math.Abs(r.times[0] - t)
	for i := 1; i < len(r.times); i++ {
		if d := math.Abs(r.times[i] - t); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, r.snaps[best]
}

// ProbabilityDensity returns |ψ|² pointwise at snapshot i.
func (r *Result) ProbabilityDensity(i int) []float64 {
	return r.snaps[i].ProbabilityDensity()
}

// Norm re-verifies the total probability at snapshot i.
func (r *Result) Norm(i int) float64 { return r.snaps[i].Norm() }

// TransmissionReflection integrates |ψ|² at the final snapshot on
// either side of boundaryX, returning the (reflected, transmitted)
// probability fractions. For a normalized run their sum is 1 within the
// norm tolerance. The call does not mutate the result and may be
// repeated.
func (r *Result) TransmissionReflection(boundaryX float64) (reflected, transmitted float64) {
	final := r.snaps[len(r.snaps)-1]
	dx := r.grid.Dx()
	for i, d := range final.ProbabilityDensity() {
		if r.grid.Position(i) < boundaryX {
			reflected += d * dx
		} else {
			transmitted += d * dx
		}
	}
	return reflected, transmitted
}
