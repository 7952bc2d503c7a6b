package quantum

import (
	"errors"
	"math"
	"testing"
)

func TestGridSpacing(t *testing.T) {
	g, err := NewGrid(-50, 50, 2001)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if math.Abs(g.Dx()-0.05) > 1e-12 {
		t.Errorf("expected dx=0.05, got %v", g.Dx())
	}

	xs := g.Positions()
	if len(xs) != 2001 {
		t.Fatalf("expected 2001 positions, got %d", len(xs))
	}
	if math.Abs(xs[0]-(-50)) > 1e-12 || math.Abs(xs[2000]-50) > 1e-12 {
		t.Errorf("endpoints wrong: %v .. %v", xs[0], xs[2000])
	}
}

func TestGridInvalid(t *testing.T) {
	tests := []struct {
		name   string
		xMin   float64
		xMax   float64
		points int
	}{
		{"too few points", -1, 1, 2},
		{"inverted bounds", 1, -1, 100},
		{"equal bounds", 1, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.xMin, tt.xMax, tt.points)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestGridIndexNear(t *testing.T) {
	g, _ := NewGrid(0, 10, 11)

	if i := g.IndexNear(3.4); i != 3 {
		t.Errorf("expected index 3, got %d", i)
	}
	if i := g.IndexNear(-5); i != 0 {
		t.Errorf("expected clamp to 0, got %d", i)
	}
	if i := g.IndexNear(99); i != 10 {
		t.Errorf("expected clamp to 10, got %d", i)
	}
}
