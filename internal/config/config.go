package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultMass     = 1.0
	DefaultHbar     = 1.0
	DefaultStride   = 1
	DefaultXMin     = -50.0
	DefaultXMax     = 50.0
	DefaultPoints   = 2001
	DefaultSigma    = 2.0
)

type Config struct {
	Wave      WaveConfig      `yaml:"wave"`
	Potential PotentialConfig `yaml:"potential"`
	Grid      GridConfig      `yaml:"grid"`
	Solver    SolverConfig    `yaml:"solver"`
}

type WaveConfig struct {
	Type  string  `yaml:"type"` // packet, plane, mode
	X0    float64 `yaml:"x0"`
	K0    float64 `yaml:"k0"`
	Sigma float64 `yaml:"sigma"`
	Phase float64 `yaml:"phase"`
	Mode  int     `yaml:"mode"`
}

type PotentialConfig struct {
	Type  string  `yaml:"type"` // free, well, step
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	StepX float64 `yaml:"step_x"`
	V0    float64 `yaml:"v0"`
}

type GridConfig struct {
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max"`
	Points int     `yaml:"points"`
}

type SolverConfig struct {
	Mass      float64 `yaml:"mass"`
	Hbar      float64 `yaml:"hbar"`
	Dt        float64 `yaml:"dt"`
	Duration  float64 `yaml:"duration"`
	Stride    int     `yaml:"stride"`
	Tolerance float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Wave: WaveConfig{
			Type:  "packet",
			X0:    -20.0,
			K0:    5.0,
			Sigma: DefaultSigma,
			Mode:  1,
		},
		Potential: PotentialConfig{
			Type: "free",
		},
		Grid: GridConfig{
			XMin:   DefaultXMin,
			XMax:   DefaultXMax,
			Points: DefaultPoints,
		},
		Solver: SolverConfig{
			Mass:     DefaultMass,
			Hbar:     DefaultHbar,
			Dt:       DefaultDt,
			Duration: DefaultDuration,
			Stride:   DefaultStride,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
