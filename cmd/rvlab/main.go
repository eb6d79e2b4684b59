package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rvlab/internal/analysis"
	"github.com/san-kum/rvlab/internal/config"
	"github.com/san-kum/rvlab/internal/export"
	"github.com/san-kum/rvlab/internal/metrics"
	"github.com/san-kum/rvlab/internal/orbit"
	"github.com/san-kum/rvlab/internal/rv"
	"github.com/san-kum/rvlab/internal/solver"
	"github.com/san-kum/rvlab/internal/store"
	"github.com/san-kum/rvlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	solverName string
	// Orbital elements
	kAmp      float64
	period    float64
	tperi     float64
	omegaDeg  float64
	ecc       float64
	semiMajor float64
	vsys      float64
	// Sample grids
	startTime float64
	endTime   float64
	nt        int
	nOut      int
	// Solver contract
	tolerance float64
	maxIter   int
	workers   int
	// SVG output
	svgPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rvlab",
		Short: "radial-velocity curve laboratory",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rvlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate an RV curve",
		RunE:  runCurve,
	}
	addOrbitFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset orbit")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	foldCmd := &cobra.Command{
		Use:   "fold [run_id]",
		Short: "phase-folded plot of a stored curve",
		Args:  cobra.ExactArgs(1),
		RunE:  foldRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "recover the orbital period by frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [solver]",
		Short: "benchmark a kepler solver",
		Args:  cobra.ExactArgs(1),
		RunE:  benchSolver,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [eccentricity] [solver1] [solver2] ...",
		Short: "compare solvers at a fixed eccentricity",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSolvers,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated orbit with live RV trace",
		RunE:  runLive,
	}
	addOrbitFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "hd156846b", "use preset orbit")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-12s P=%.4g d  e=%.3f  K=%.4g km/s\n",
					name, cfg.Orbit.Period, cfg.Orbit.Ecc, cfg.Orbit.K)
			}
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run curve to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgPath, "out", "", "output file (default <run_id>.svg)")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, foldCmd, analyzeCmd, benchCmd,
		compareCmd, liveCmd, presetsCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addOrbitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&kAmp, "K", 0.464, "velocity semi-amplitude [km/s]")
	cmd.Flags().Float64Var(&period, "period", 359.51, "orbital period [d]")
	cmd.Flags().Float64Var(&tperi, "tperi", 3998.1, "periastron-passage epoch [d]")
	cmd.Flags().Float64Var(&omegaDeg, "omega", 52.2, "argument of periapse [deg]")
	cmd.Flags().Float64Var(&ecc, "ecc", 0.847, "eccentricity")
	cmd.Flags().Float64Var(&semiMajor, "axis", 0.9930, "semi-major axis [AU]")
	cmd.Flags().Float64Var(&vsys, "vsys", -68.54, "systemic velocity [km/s]")
	cmd.Flags().Float64Var(&startTime, "start", 3600, "output span start [d]")
	cmd.Flags().Float64Var(&endTime, "end", 4200, "output span end [d]")
	cmd.Flags().IntVar(&nt, "nt", config.DefaultNT, "one-period resolution")
	cmd.Flags().IntVar(&nOut, "n", config.DefaultN, "output resolution")
	cmd.Flags().StringVar(&solverName, "solver", config.DefaultSolver, "kepler solver")
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "solver residual tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "solver iteration budget")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel solve workers (0 = all cores)")
}

// resolveConfig layers preset, config file, and CLI flags, flags last.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	label := "custom"

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		label = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		label = "config"
	}

	flags := cmd.Flags()
	if flags.Changed("K") {
		cfg.Orbit.K = kAmp
	}
	if flags.Changed("period") {
		cfg.Orbit.Period = period
	}
	if flags.Changed("tperi") {
		cfg.Orbit.Tperi = tperi
	}
	if flags.Changed("omega") {
		cfg.Orbit.Omega = omegaDeg
	}
	if flags.Changed("ecc") {
		cfg.Orbit.Ecc = ecc
	}
	if flags.Changed("axis") {
		cfg.Orbit.SemiMajor = semiMajor
	}
	if flags.Changed("vsys") {
		cfg.Orbit.Vsys = vsys
	}
	if flags.Changed("start") {
		cfg.Grid.Start = startTime
	}
	if flags.Changed("end") {
		cfg.Grid.End = endTime
	}
	if flags.Changed("nt") {
		cfg.Grid.NT = nt
	}
	if flags.Changed("n") {
		cfg.Grid.N = nOut
	}
	if flags.Changed("solver") {
		cfg.Solver = solverName
	}
	if flags.Changed("tol") {
		cfg.Solve.Tolerance = tolerance
	}
	if flags.Changed("max-iter") {
		cfg.Solve.MaxIter = maxIter
	}

	return cfg, label, nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, label, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	slv, err := solver.New(cfg.Solver, cfg.SolverOptions())
	if err != nil {
		return err
	}

	genCfg := cfg.GenerateConfig()
	genCfg.Solver = slv
	genCfg.Workers = workers
	genCfg.Metrics = []rv.Metric{
		metrics.NewPeakToPeak(),
		metrics.NewMean(),
		metrics.NewRMS(cfg.Orbit.Vsys),
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("generating %s curve (e=%.3f, NT=%d, N=%d)...\n", label, cfg.Orbit.Ecc, genCfg.NT, genCfg.N)
	start := time.Now()

	result, err := rv.Generate(context.Background(), cfg.Orbit, genCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(label, slv.Name(), cfg.Orbit, genCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Times))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tPERIOD\tECC\tK\tSOLVER\tN")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4g\t%.3f\t%.4g\t%s\t%d\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Elements.Period,
			run.Elements.Ecc,
			run.Elements.K,
			run.Solver,
			run.N,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, values, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("span: [%.2f, %.2f] d, %d samples\n\n", meta.Start, meta.End, len(values))

	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("RV (km/s) vs time"),
	)
	fmt.Println(graph)

	return nil
}

func foldRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, values, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no data to fold")
	}

	folded := analysis.Fold(times, values, meta.Elements.Period, meta.Elements.Tperi)

	phases := make([]float64, len(folded))
	vals := make([]float64, len(folded))
	for i, s := range folded {
		phases[i] = s.Phase
		vals[i] = s.Value
	}

	fmt.Printf("phase-folded: %s (P=%.4g d, phase 0 at periastron)\n\n", meta.ID, meta.Elements.Period)
	fmt.Print(viz.Scatter(phases, vals, 70, 16))
	fmt.Println("\nphase 0 -> 1 left to right, RV bottom to top")

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, values, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	padded := make([]float64, analysis.NextPow2(len(values)))
	for i, v := range values {
		padded[i] = v - mean
	}

	ps := analysis.PowerSpectrum(padded)
	graph := asciigraph.Plot(ps[:len(ps)/4],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	estimated := analysis.DominantPeriod(times, values)
	if estimated == 0 {
		fmt.Println("no dominant period found")
		return nil
	}

	fmt.Printf("dominant period: %.3f d\n", estimated)
	fmt.Printf("orbit period:    %.3f d\n", meta.Elements.Period)
	if meta.Elements.Period > 0 {
		fmt.Printf("relative error:  %.2f%%\n", 100*math.Abs(estimated-meta.Elements.Period)/meta.Elements.Period)
	}

	return nil
}

func benchSolver(cmd *cobra.Command, args []string) error {
	slv, err := solver.New(args[0], solver.DefaultOptions())
	if err != nil {
		return err
	}

	grids := []int{1000, 10000, 100000}
	eccs := []float64{0.1, 0.5, 0.9}

	fmt.Printf("benchmarking %s\n\n", slv.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NT\tECC\tTIME\tSOLVES/SEC")

	for _, n := range grids {
		for _, e := range eccs {
			start := time.Now()
			for i := 0; i < n; i++ {
				M := 2 * math.Pi * float64(i) / float64(n)
				if _, err := slv.Solve(e, M); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%.1f\t%v\t%.0f\n",
				n, e, elapsed, float64(n)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

func compareSolvers(cmd *cobra.Command, args []string) error {
	e, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid eccentricity: %s", args[0])
	}
	if e < 0 || e >= 1 {
		return fmt.Errorf("eccentricity %g outside [0,1)", e)
	}

	const samples = 1000

	fmt.Printf("comparing solvers at e=%.3f (%d mean anomalies)\n\n", e, samples)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tMAX RESIDUAL\tFAILURES\tTIME")

	for _, name := range args[1:] {
		slv, err := solver.New(name, solver.DefaultOptions())
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		maxResidual := 0.0
		failures := 0
		start := time.Now()

		for i := 0; i < samples; i++ {
			M := 2 * math.Pi * float64(i) / float64(samples)
			E, err := slv.Solve(e, M)
			if err != nil {
				failures++
				continue
			}
			if r := math.Abs(orbit.Kepler(E, e, M)); r > maxResidual {
				maxResidual = r
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%.3e\t%d\t%v\n", slv.Name(), maxResidual, failures, elapsed)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, label, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Orbit.Validate(); err != nil {
		return err
	}

	slv, err := solver.New(cfg.Solver, cfg.SolverOptions())
	if err != nil {
		return err
	}

	m := viz.NewModel(label, cfg.Orbit, slv)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	times, values, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "rv"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(values[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	times, values, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	return store.ExportJSONStdout(meta, times, values)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	times, values, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	svg := export.CurveToSVG(times, values, 900, 400, "")
	if svg == "" {
		return fmt.Errorf("not enough samples to render")
	}

	out := svgPath
	if out == "" {
		out = runID + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
