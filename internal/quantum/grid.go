package quantum

import "gonum.org/v1/gonum/floats"

// Grid is an immutable discretized spatial domain. It is shared by
// reference by every component that samples over it.
type Grid struct {
	XMin   float64
	XMax   float64
	Points int
}

// NewGrid validates the domain invariants: at least 3 points and
// XMax > XMin.
func NewGrid(xMin, xMax float64, points int) (Grid, error) {
	if points < 3 {
		return Grid{}, &ParameterError{Name: "points", Value: float64(points), Reason: "grid needs at least 3 points"}
	}
	if xMax <= xMin {
		return Grid{}, &ParameterError{Name: "x_max", Value: xMax, Reason: "upper bound must exceed lower bound"}
	}
	return Grid{XMin: xMin, XMax: xMax, Points: points}, nil
}

// Dx returns the spacing between adjacent sample positions.
func (g Grid) Dx() float64 {
	return (g.XMax - g.XMin) / float64(g.Points-1)
}

// Positions returns the ordered sample positions, endpoints inclusive.
func (g Grid) Positions() []float64 {
	xs := make([]float64, g.Points)
	floats.Span(xs, g.XMin, g.XMax)
	return xs
}

// Position returns the i-th sample position.
func (g Grid) Position(i int) float64 {
	return g.XMin + float64(i)*g.Dx()
}

// IndexNear returns the index of the sample position closest to x,
// clamped to the grid.
func (g Grid) IndexNear(x float64) int {
	i := int((x-g.XMin)/g.Dx() + 0.5)
	if i < 0 {
		return 0
	}
	if i >= g.Points {
		return g.Points - 1
	}
	return i
}
