package waves

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/qwave/internal/quantum"
)

func TestWavePacketNormalized(t *testing.T) {
	g, _ := quantum.NewGrid(-20, 20, 801)

	w, err := WavePacket{X0: -5, K0: 3, Sigma: 1}.Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if math.Abs(w.Norm()-1) > 1e-12 {
		t.Errorf("expected unit norm, got %v", w.Norm())
	}
}

func TestWavePacketCenter(t *testing.T) {
	g, _ := quantum.NewGrid(-20, 20, 2001)

	w, err := WavePacket{X0: 4, K0: 0, Sigma: 1.5}.Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	mean, err := w.Expectation(quantum.Position{})
	if err != nil {
		t.Fatalf("Expectation failed: %v", err)
	}
	if math.Abs(mean-4) > 1e-6 {
		t.Errorf("expected center 4, got %v", mean)
	}
}

func TestWavePacketMomentum(t *testing.T) {
	g, _ := quantum.NewGrid(-20, 20, 4001)

	w, err := WavePacket{X0: 0, K0: 2, Sigma: 1}.Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p, err := w.Expectation(quantum.Momentum{Hbar: 1})
	if err != nil {
		t.Fatalf("Expectation failed: %v", err)
	}
	if math.Abs(p-2) > 0.01 {
		t.Errorf("expected <p>=2 for k0=2, got %v", p)
	}
}

func TestWavePacketInvalid(t *testing.T) {
	g, _ := quantum.NewGrid(-20, 20, 801)

	tests := []struct {
		name   string
		packet WavePacket
	}{
		{"zero sigma", WavePacket{X0: 0, K0: 1, Sigma: 0}},
		{"negative sigma", WavePacket{X0: 0, K0: 1, Sigma: -1}},
		{"nan sigma", WavePacket{X0: 0, K0: 1, Sigma: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.packet.Build(g)
			if !errors.Is(err, quantum.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestPlaneWaveNormalized(t *testing.T) {
	g, _ := quantum.NewGrid(-10, 10, 501)

	w, err := PlaneWave{K0: 2}.Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if math.Abs(w.Norm()-1) > 1e-9 {
		t.Errorf("expected unit norm, got %v", w.Norm())
	}

	// Box normalization makes the density uniform.
	density := w.ProbabilityDensity()
	for i, d := range density {
		if math.Abs(d-density[0]) > 1e-12 {
			t.Fatalf("density at %d = %v, want uniform %v", i, d, density[0])
		}
	}
}

func TestPlaneWaveDerived(t *testing.T) {
	p := PlaneWave{K0: 5}
	const mass, hbar = 1.0, 1.0

	if got := p.Wavelength(); math.Abs(got-2*math.Pi/5) > 1e-12 {
		t.Errorf("Wavelength = %v", got)
	}
	if got := p.Momentum(hbar); got != 5 {
		t.Errorf("Momentum = %v", got)
	}
	if got := p.Energy(mass, hbar); math.Abs(got-12.5) > 1e-12 {
		t.Errorf("Energy = %v", got)
	}
	if got := p.AngularFrequency(mass, hbar); math.Abs(got-12.5) > 1e-12 {
		t.Errorf("AngularFrequency = %v", got)
	}
	if got := p.PhaseVelocity(mass, hbar); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("PhaseVelocity = %v", got)
	}
	if got := p.Period(mass, hbar); math.Abs(got-2*math.Pi/12.5) > 1e-12 {
		t.Errorf("Period = %v", got)
	}
}

func TestPlaneWaveZeroWavenumber(t *testing.T) {
	if got := (PlaneWave{K0: 0}).Wavelength(); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf wavelength for k0=0, got %v", got)
	}
}

func TestWellModeZeroOutsideWalls(t *testing.T) {
	g, _ := quantum.NewGrid(-10, 10, 401)

	w, err := WellMode{A: -2, B: 2, N: 1}.Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if math.Abs(w.Norm()-1) > 1e-9 {
		t.Errorf("expected unit norm, got %v", w.Norm())
	}
	for i, x := range g.Positions() {
		if x <= -2 || x >= 2 {
			if w.At(i) != 0 {
				t.Fatalf("amplitude at x=%v must be zero, got %v", x, w.At(i))
			}
		}
	}
}

func TestWellModeInvalid(t *testing.T) {
	g, _ := quantum.NewGrid(-10, 10, 401)

	if _, err := (WellMode{A: 2, B: -2, N: 1}).Build(g); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("inverted walls: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := (WellMode{A: -2, B: 2, N: 0}).Build(g); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("mode 0: expected ErrInvalidParameter, got %v", err)
	}
}
