package config

import "sort"

// Presets are ready-made scenarios for common teaching setups.

func presets() map[string]*Config {
	freePacket := DefaultConfig()

	stepScatter := DefaultConfig()
	stepScatter.Grid = GridConfig{XMin: -60, XMax: 60, Points: 2401}
	stepScatter.Potential = PotentialConfig{Type: "step", StepX: 0, V0: 10}
	stepScatter.Solver.Dt = 0.005

	wellMode := DefaultConfig()
	wellMode.Wave = WaveConfig{Type: "mode", Mode: 1}
	wellMode.Grid = GridConfig{XMin: -1, XMax: 1, Points: 201}
	wellMode.Potential = PotentialConfig{Type: "well", A: -1, B: 1}
	wellMode.Solver.Dt = 0.001
	wellMode.Solver.Duration = 2

	wellPacket := DefaultConfig()
	wellPacket.Wave = WaveConfig{Type: "packet", X0: 0, K0: 10, Sigma: 0.5}
	wellPacket.Grid = GridConfig{XMin: -5, XMax: 5, Points: 1001}
	wellPacket.Potential = PotentialConfig{Type: "well", A: -5, B: 5}
	wellPacket.Solver.Dt = 0.001
	wellPacket.Solver.Duration = 2

	return map[string]*Config{
		"free_packet":  freePacket,
		"step_scatter": stepScatter,
		"well_mode":    wellMode,
		"well_packet":  wellPacket,
	}
}

// GetPreset returns the named preset config, or nil if unknown.
func GetPreset(name string) *Config {
	return presets()[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	ps := presets()
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
