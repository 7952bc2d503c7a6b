package potential

import "github.com/san-kum/qwave/internal/quantum"

// InfiniteWell confines the particle to [a,b]. The energy inside the
// well is zero; outside, confinement is represented as a Dirichlet
// boundary condition applied by the solver, not as an infinite (and
// numerically unrepresentable) energy value.
type InfiniteWell struct {
	a, b float64
}

func NewInfiniteWell(a, b float64) (InfiniteWell, error) {
	if a >= b {
		return InfiniteWell{}, &quantum.ParameterError{
			Name:   "a",
			Value:  a,
			Reason: "left wall must be below right wall",
		}
	}
	return InfiniteWell{a: a, b: b}, nil
}

// At returns zero everywhere: the walls are a boundary contract, not an
// energy evaluation.
func (InfiniteWell) At(float64) float64 { return 0 }

func (w InfiniteWell) Bounds() (float64, float64) { return w.a, w.b }

func (InfiniteWell) Name() string { return "infinite_well" }

func (w InfiniteWell) Params() map[string]float64 {
	return map[string]float64{"a": w.a, "b": w.b}
}
