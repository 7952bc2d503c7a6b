package experiment

import (
	"fmt"

	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/quantum"
	"github.com/san-kum/qwave/internal/waves"
)

// WaveBuilder produces one normalized wavefunction for a grid.
type WaveBuilder interface {
	Build(g quantum.Grid) (*quantum.WaveFunction, error)
}

// BuildWave maps a wave config onto a concrete builder.
func BuildWave(cfg config.WaveConfig, potCfg config.PotentialConfig) (WaveBuilder, error) {
	switch cfg.Type {
	case "packet", "":
		return waves.WavePacket{X0: cfg.X0, K0: cfg.K0, Sigma: cfg.Sigma}, nil
	case "plane":
		return waves.PlaneWave{K0: cfg.K0, Phase: cfg.Phase}, nil
	case "mode":
		// Well modes default to the potential's own walls.
		a, b := cfg.X0, cfg.K0
		if potCfg.Type == "well" {
			a, b = potCfg.A, potCfg.B
		}
		return waves.WellMode{A: a, B: b, N: cfg.Mode}, nil
	default:
		return nil, fmt.Errorf("unknown wave type: %s", cfg.Type)
	}
}

// BuildPotential maps a potential config onto a concrete variant.
func BuildPotential(cfg config.PotentialConfig) (potential.Potential, error) {
	switch cfg.Type {
	case "free", "":
		return potential.NewFree(), nil
	case "well":
		return potential.NewInfiniteWell(cfg.A, cfg.B)
	case "step":
		return potential.NewStep(cfg.StepX, cfg.V0), nil
	default:
		return nil, fmt.Errorf("unknown potential type: %s", cfg.Type)
	}
}
