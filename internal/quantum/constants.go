package quantum

import "math"

// Physical constants in SI units. Simulations default to natural units
// (mass = 1, ħ = 1); these are provided for callers working in SI scales.
const (
	PlanckConstant = 6.62607015e-34 // J·s
	ElectronMass   = 9.10938356e-31 // kg
	SpeedOfLight   = 2.99792458e8   // m/s
)

// ReducedPlanck is ħ = h/2π.
const ReducedPlanck = PlanckConstant / (2 * math.Pi)

// NormTolerance is the default tolerance for the normalization invariant
// |Σ|ψ_i|²·dx − 1| used by builders and the solver.
const NormTolerance = 1e-6

// HermitianTolerance bounds the imaginary part allowed in the expectation
// value of a Hermitian observable before it is reported as an error.
const HermitianTolerance = 1e-8
