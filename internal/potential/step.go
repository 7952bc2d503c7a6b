package potential

// Step is a sudden change in potential energy at X0: V(x) = 0 for
// x < X0, V0 for x >= X0. The exported fields let callers building
// transmission/reflection studies locate the discontinuity.
type Step struct {
	X0 float64
	V0 float64
}

func NewStep(x0, v0 float64) Step {
	return Step{X0: x0, V0: v0}
}

func (s Step) At(x float64) float64 {
	if x >= s.X0 {
		return s.V0
	}
	return 0
}

func (Step) Name() string { return "step" }

func (s Step) Params() map[string]float64 {
	return map[string]float64{"x0": s.X0, "v0": s.V0}
}
