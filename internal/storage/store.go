// Package storage persists completed runs: metadata plus CSV series a
// plotting collaborator can reload without re-running the simulation.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/qwave/internal/analysis"
	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/quantum"
	"github.com/san-kum/qwave/internal/solver"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Wave      string             `json:"wave"`
	Potential string             `json:"potential"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Stride    int                `json:"stride"`
	Mass      float64            `json:"mass"`
	Hbar      float64            `json:"hbar"`
	Grid      config.GridConfig  `json:"grid"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run directory containing metadata.json, an
// observables.csv series (time, norm, center, width) and psi.csv with
// the final snapshot (x, re, im, density). Returns the run ID.
func (s *Store) Save(cfg *config.Config, res *solver.Result, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", cfg.Wave.Type, cfg.Potential.Type, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Wave:      cfg.Wave.Type,
		Potential: cfg.Potential.Type,
		Timestamp: time.Now(),
		Dt:        cfg.Solver.Dt,
		Duration:  cfg.Solver.Duration,
		Stride:    cfg.Solver.Stride,
		Mass:      cfg.Solver.Mass,
		Hbar:      cfg.Solver.Hbar,
		Grid:      cfg.Grid,
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeObservables(runDir, res); err != nil {
		return "", err
	}
	if err := s.writePsi(runDir, res.Snapshot(res.Len()-1)); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeObservables(runDir string, res *solver.Result) error {
	f, err := os.Create(filepath.Join(runDir, "observables.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "norm", "center", "width"}); err != nil {
		return err
	}

	for i := 0; i < res.Len(); i++ {
		snap := res.Snapshot(i)
		row := []string{
			formatFloat(res.Time(i)),
			formatFloat(snap.Norm()),
			formatFloat(analysis.Center(snap)),
			formatFloat(analysis.Width(snap)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writePsi(runDir string, w *quantum.WaveFunction) error {
	f, err := os.Create(filepath.Join(runDir, "psi.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "re", "im", "density"}); err != nil {
		return err
	}

	g := w.Grid()
	density := w.ProbabilityDensity()
	for i := 0; i < w.Len(); i++ {
		a := w.At(i)
		row := []string{
			formatFloat(g.Position(i)),
			formatFloat(real(a)),
			formatFloat(imag(a)),
			formatFloat(density[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadObservables reads back the per-snapshot series.
func (s *Store) LoadObservables(runID string) (times, norms, centers, widths []float64, err error) {
	records, err := s.readCSV(filepath.Join(s.baseDir, runID, "observables.csv"))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	for _, rec := range records {
		if len(rec) < 4 {
			continue
		}
		times = append(times, parseFloat(rec[0]))
		norms = append(norms, parseFloat(rec[1]))
		centers = append(centers, parseFloat(rec[2]))
		widths = append(widths, parseFloat(rec[3]))
	}
	return times, norms, centers, widths, nil
}

// LoadPsi rebuilds the stored final wavefunction.
func (s *Store) LoadPsi(runID string) (*quantum.WaveFunction, error) {
	records, err := s.readCSV(filepath.Join(s.baseDir, runID, "psi.csv"))
	if err != nil {
		return nil, err
	}
	if len(records) < 3 {
		return nil, fmt.Errorf("run %s: psi.csv too short", runID)
	}

	xs := make([]float64, 0, len(records))
	psi := make([]complex128, 0, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		xs = append(xs, parseFloat(rec[0]))
		psi = append(psi, complex(parseFloat(rec[1]), parseFloat(rec[2])))
	}

	grid, err := quantum.NewGrid(xs[0], xs[len(xs)-1], len(xs))
	if err != nil {
		return nil, err
	}
	return quantum.NewWaveFunction(grid, psi)
}

// readCSV returns the data rows, header skipped.
func (s *Store) readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	return records[1:], nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
