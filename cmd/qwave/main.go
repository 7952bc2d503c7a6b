package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/qwave/internal/analysis"
	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/experiment"
	"github.com/san-kum/qwave/internal/solver"
	"github.com/san-kum/qwave/internal/storage"
	"github.com/san-kum/qwave/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	waveType string
	x0       float64
	k0       float64
	sigma    float64
	modeN    int

	potType string
	wellA   float64
	wellB   float64
	stepX   float64
	v0      float64

	xMin   float64
	xMax   float64
	points int

	dt       float64
	duration float64
	stride   int
	mass     float64
	hbar     float64

	frameRate int

	scanFrom  float64
	scanTo    float64
	scanSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qwave",
		Short: "1D quantum wavefunction simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qwave", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run observables and final density",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "momentum-space analysis of the final snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run observables to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "transmission/reflection scan over step height",
		RunE:  scanStep,
	}
	addScenarioFlags(scanCmd)
	scanCmd.Flags().Float64Var(&scanFrom, "from", 0, "first step height")
	scanCmd.Flags().Float64Var(&scanTo, "to", 25, "last step height")
	scanCmd.Flags().IntVar(&scanSteps, "steps", 6, "number of scan points")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCmd, exportCSVCmd, scanCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	cmd.Flags().StringVar(&waveType, "wave", "packet", "initial wave (packet, plane, mode)")
	cmd.Flags().Float64Var(&x0, "x0", -20.0, "packet center")
	cmd.Flags().Float64Var(&k0, "k0", 5.0, "mean wavenumber")
	cmd.Flags().Float64Var(&sigma, "sigma", 2.0, "packet width")
	cmd.Flags().IntVar(&modeN, "mode", 1, "well mode number")

	cmd.Flags().StringVar(&potType, "potential", "free", "potential (free, well, step)")
	cmd.Flags().Float64Var(&wellA, "a", -50.0, "left well wall")
	cmd.Flags().Float64Var(&wellB, "b", 50.0, "right well wall")
	cmd.Flags().Float64Var(&stepX, "step-x", 0.0, "step position")
	cmd.Flags().Float64Var(&v0, "v0", 10.0, "step height")

	cmd.Flags().Float64Var(&xMin, "xmin", -50.0, "grid lower bound")
	cmd.Flags().Float64Var(&xMax, "xmax", 50.0, "grid upper bound")
	cmd.Flags().IntVar(&points, "points", 2001, "grid point count")

	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().IntVar(&stride, "stride", 1, "snapshot stride")
	cmd.Flags().Float64Var(&mass, "mass", 1.0, "particle mass")
	cmd.Flags().Float64Var(&hbar, "hbar", 1.0, "reduced planck constant")
}

// buildConfig resolves preset, config file, and flags into a scenario.
// CLI flags override file values only when explicitly set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagSet := func(name string) bool { return cmd.Flags().Changed(name) }

	if flagSet("wave") {
		cfg.Wave.Type = waveType
	}
	if flagSet("x0") {
		cfg.Wave.X0 = x0
	}
	if flagSet("k0") {
		cfg.Wave.K0 = k0
	}
	if flagSet("sigma") {
		cfg.Wave.Sigma = sigma
	}
	if flagSet("mode") {
		cfg.Wave.Mode = modeN
	}
	if flagSet("potential") {
		cfg.Potential.Type = potType
	}
	if flagSet("a") {
		cfg.Potential.A = wellA
	}
	if flagSet("b") {
		cfg.Potential.B = wellB
	}
	if flagSet("step-x") {
		cfg.Potential.StepX = stepX
	}
	if flagSet("v0") {
		cfg.Potential.V0 = v0
	}
	if flagSet("xmin") {
		cfg.Grid.XMin = xMin
	}
	if flagSet("xmax") {
		cfg.Grid.XMax = xMax
	}
	if flagSet("points") {
		cfg.Grid.Points = points
	}
	if flagSet("dt") {
		cfg.Solver.Dt = dt
	}
	if flagSet("time") {
		cfg.Solver.Duration = duration
	}
	if flagSet("stride") {
		cfg.Solver.Stride = stride
	}
	if flagSet("mass") {
		cfg.Solver.Mass = mass
	}
	if flagSet("hbar") {
		cfg.Solver.Hbar = hbar
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s wave in %s potential...\n", cfg.Wave.Type, cfg.Potential.Type)
	start := time.Now()

	res, metrics, err := experiment.New(cfg).Run()
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, res, metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("snapshots: %d\n", res.Len())
	fmt.Println("\nmetrics:")
	for name, val := range metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWAVE\tPOTENTIAL\tTIME\tDURATION\tDT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%.4fs\n",
			run.ID,
			run.Wave,
			run.Potential,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("wave: %s, potential: %s\n\n", meta.Wave, meta.Potential)

	psi, err := st.LoadPsi(runID)
	if err != nil {
		return err
	}
	fmt.Println(asciigraph.Plot(psi.ProbabilityDensity(),
		asciigraph.Height(12),
		asciigraph.Width(90),
		asciigraph.Caption("final |psi|^2"),
	))
	fmt.Println()

	_, norms, centers, widths, err := st.LoadObservables(runID)
	if err != nil {
		return err
	}

	for _, series := range []struct {
		name string
		data []float64
	}{
		{"norm", norms},
		{"center <x>", centers},
		{"width", widths},
	} {
		fmt.Println(asciigraph.Plot(series.data,
			asciigraph.Height(8),
			asciigraph.Width(90),
			asciigraph.Caption(series.name+" vs snapshot"),
		))
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	psi, err := st.LoadPsi(runID)
	if err != nil {
		return err
	}

	sp := analysis.MomentumSpectrum(psi)
	fmt.Printf("momentum analysis: %s\n\n", meta.ID)
	fmt.Println(asciigraph.Plot(sp.Power,
		asciigraph.Height(15),
		asciigraph.Width(90),
		asciigraph.Caption("momentum spectrum |psi(k)|^2"),
	))
	fmt.Println()

	hb := meta.Hbar
	if hb == 0 {
		hb = 1
	}
	fmt.Printf("mean momentum <p>: %.4f\n", analysis.MeanMomentum(psi, hb))

	peakK, peakP := sp.K[0], sp.Power[0]
	for i, p := range sp.Power {
		if p > peakP {
			peakK, peakP = sp.K[i], p
		}
	}
	fmt.Printf("dominant wavenumber: %.4f\n", peakK)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, norms, centers, widths, err := st.LoadObservables(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "norm", "center", "width"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(norms[i], 'f', 6, 64),
			strconv.FormatFloat(centers[i], 'f', 6, 64),
			strconv.FormatFloat(widths[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func scanStep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Potential.Type = "step"

	if scanSteps < 2 {
		scanSteps = 2
	}

	fmt.Printf("scanning step height %.2f..%.2f (%d points, k0=%.2f)\n\n",
		scanFrom, scanTo, scanSteps, cfg.Wave.K0)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "V0\tREFLECTED\tTRANSMITTED\tSUM")

	for i := 0; i < scanSteps; i++ {
		h := scanFrom + (scanTo-scanFrom)*float64(i)/float64(scanSteps-1)
		cfg.Potential.V0 = h

		_, metrics, err := experiment.New(cfg).Run()
		if err != nil {
			fmt.Fprintf(w, "%.3f\terror: %v\n", h, err)
			continue
		}

		r, t := metrics["reflected"], metrics["transmitted"]
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\t%.4f\n", h, r, t, r+t)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	newProp := func() (*solver.Propagator, error) {
		return experiment.NewPropagator(cfg)
	}

	title := fmt.Sprintf("qwave live: %s wave, %s potential", cfg.Wave.Type, cfg.Potential.Type)
	stepsPerFrame := 4
	return viz.Run(title, newProp, cfg.Solver.Duration, stepsPerFrame, frameRate)
}
