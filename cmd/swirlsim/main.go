package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/compute"
	"github.com/san-kum/swirlsim/internal/config"
	"github.com/san-kum/swirlsim/internal/experiment"
	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/optim"
	"github.com/san-kum/swirlsim/internal/sim"
	"github.com/san-kum/swirlsim/internal/viz"
)

var (
	configFile string
	backend    string
	integrator string
	dt         float64
	steps      int
	segments   int
	gamma      float64
	core       float64
	plotMetric string
	overlay    string
	jsonOut    bool
	scanParams []string
	scanMetric string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "swirlsim",
		Short:        "vortex filament dynamics and induced-field diagnostics",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "auto", "compute backend (auto, cpu, serial)")
	rootCmd.PersistentFlags().IntVar(&segments, "segments", config.DefaultSegments, "filament sample count")
	rootCmd.PersistentFlags().Float64Var(&gamma, "gamma", config.DefaultGamma, "velocity scale")
	rootCmd.PersistentFlags().Float64Var(&core, "core", 0, "regularization core radius")

	runCmd := &cobra.Command{
		Use:   "run [kind[/preset]]",
		Short: "evolve a filament under its self-induced velocity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler, rk4)")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	runCmd.Flags().StringVar(&plotMetric, "plot", "", "plot the history of a metric (length, ropelength, drift, self_energy, energy_drift)")

	compareCmd := &cobra.Command{
		Use:   "compare [kind[/preset]]",
		Short: "run every integrator on the same filament and compare",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	compareCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	compareCmd.Flags().StringVar(&overlay, "plot", "drift", "metric to overlay")

	fieldCmd := &cobra.Command{
		Use:   "field [kind[/preset]]",
		Short: "evaluate the induced field on a grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeField,
	}
	fieldCmd.Flags().BoolVar(&jsonOut, "json", false, "print the invariants as json")

	framesCmd := &cobra.Command{
		Use:   "frames [kind[/preset]]",
		Short: "curvature and torsion statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeFrames,
	}
	framesCmd.Flags().StringVar(&plotMetric, "plot", "", "plot curvature or torsion along the filament")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [kind[/preset]]",
		Short: "grid search over run parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE:  scanParameters,
	}
	scanCmd.Flags().StringArrayVar(&scanParams, "param", nil, "parameter range name=v1,v2,... (repeatable)")
	scanCmd.Flags().StringVar(&scanMetric, "metric", "drift", "metric to minimize")
	scanCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	scanCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")

	rootCmd.AddCommand(runCmd, compareCmd, scanCmd, fieldCmd, framesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, a preset, a config file and explicit flags,
// in that order, then selects the compute backend.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) == 1 {
		kind, name, _ := strings.Cut(args[0], "/")
		names := config.ListPresets(kind)
		if names == nil {
			return nil, fmt.Errorf("unknown filament kind: %s (available: %v)", kind, config.ListKinds())
		}
		if name == "" {
			name = config.DefaultPreset(kind)
		}
		cfg = config.GetPreset(kind, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, names)
		}
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("segments") {
		cfg.Filament.Segments = segments
	}
	if flags.Changed("gamma") {
		cfg.Gamma = gamma
	}
	if flags.Changed("core") {
		cfg.Kernel.CoreRadius = core
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := compute.Select(cfg.Backend)
	if err != nil {
		return nil, err
	}
	compute.SetBackend(b)
	return cfg, nil
}

func setup(cmd *cobra.Command, args []string) (*config.Config, *experiment.Experiment, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return nil, nil, err
	}
	return cfg, exp, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, exp, err := setup(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s filament with %s (%s backend)...\n",
		cfg.Filament.Kind, cfg.Integrator, compute.GetBackend().Name())
	start := time.Now()

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	c0 := filament.Curve(result.States[0].Positions).Centroid()
	c1 := filament.Curve(result.Final().Positions).Centroid()
	d := r3.Sub(c1, c0)

	rows := []viz.Row{
		viz.S("elapsed", elapsed.String()),
		viz.I("steps", result.StepsTaken),
		viz.I("segments", len(exp.Curve())),
		viz.F("time", result.Times[len(result.Times)-1]),
		viz.S("displacement", fmt.Sprintf("(%.4g, %.4g, %.4g)", d.X, d.Y, d.Z)),
	}
	if t := result.Times[len(result.Times)-1]; t > 0 {
		rows = append(rows, viz.F("speed", r3.Norm(d)/t))
	}
	fmt.Println(viz.BoxWithTitle("run", viz.Table(rows)))
	fmt.Println(viz.BoxWithTitle("metrics", viz.Table(viz.MetricRows(result.Metrics))))

	if plotMetric != "" {
		hist, ok := result.History[plotMetric]
		if !ok {
			return fmt.Errorf("unknown metric: %s", plotMetric)
		}
		fmt.Println(viz.Plot(hist, plotMetric+" vs step", 70, 10))
	}
	return nil
}

func scanParameters(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(scanParams) == 0 {
		return fmt.Errorf("no --param given (tunable: %v)", optim.Tunable)
	}

	names := make([]string, len(scanParams))
	ranges := make([][]float64, len(scanParams))
	for i, arg := range scanParams {
		names[i], ranges[i], err = optim.ParseRange(arg)
		if err != nil {
			return err
		}
	}

	build := func(params map[string]float64) (*experiment.Experiment, error) {
		c := cfg.Clone()
		for name, v := range params {
			if err := optim.Apply(c, name, v); err != nil {
				return nil, err
			}
		}
		exp := experiment.New(c)
		return exp, exp.Setup()
	}

	search := optim.NewGridSearch(names, ranges)
	fmt.Printf("scanning %d points, minimizing %s...\n", len(search.Points()), scanMetric)
	best, all, err := search.Search(context.Background(), build, scanMetric)
	if err != nil {
		return err
	}

	rows := make([]viz.Row, len(all))
	for i, p := range all {
		rows[i] = viz.F(formatParams(p), p.Value)
	}
	fmt.Println(viz.BoxWithTitle(scanMetric, viz.Table(rows)))
	fmt.Println(viz.StatusOK.Render("best: "+formatParams(best)), viz.MetricValue.Render(fmt.Sprintf("%.6g", best.Value)))
	return nil
}

func formatParams(p optim.Point) string {
	parts := make([]string, 0, len(p.Params))
	for _, name := range p.Names() {
		parts = append(parts, fmt.Sprintf("%s=%g", name, p.Params[name]))
	}
	return strings.Join(parts, " ")
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, exp, err := setup(cmd, args)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	names := registry.ListSteppers()
	jobs := make([]sim.Job, len(names))
	for i, name := range names {
		stepper, err := registry.GetStepper(name, exp.Options())
		if err != nil {
			return err
		}
		s := sim.New(stepper)
		for _, m := range registry.DefaultMetrics(cfg) {
			s.AddMetric(m)
		}
		jobs[i] = sim.Job{Name: name, Sim: s, Init: exp.InitialState(), Config: exp.SimConfig()}
	}

	fmt.Printf("comparing %v on %s filament (dt=%g, steps=%d)...\n", names, cfg.Filament.Kind, cfg.Dt, cfg.Steps)
	start := time.Now()
	results, err := sim.Sweep(context.Background(), jobs, 0)
	if err != nil {
		return err
	}
	fmt.Println(viz.Subtle.Render("completed in " + time.Since(start).String()))

	series := make([][]float64, 0, len(results))
	for i, res := range results {
		fmt.Println(viz.BoxWithTitle(jobs[i].Name, viz.Table(viz.MetricRows(res.Metrics))))
		if hist, ok := res.History[overlay]; ok {
			series = append(series, hist)
		}
	}

	if len(results) > 1 {
		gap := 0.0
		a, b := results[0].Final().Positions, results[len(results)-1].Final().Positions
		for i := range a {
			gap = math.Max(gap, r3.Norm(r3.Sub(a[i], b[i])))
		}
		fmt.Println(viz.Table([]viz.Row{viz.F("max position gap", gap)}))
	}
	if overlay != "" {
		fmt.Println(viz.PlotMany(series, overlay+" vs step", 70, 10))
	}
	return nil
}

func analyzeField(cmd *cobra.Command, args []string) error {
	cfg, exp, err := setup(cmd, args)
	if err != nil {
		return err
	}

	report, err := experiment.AnalyzeField(exp.Curve(), cfg)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report.Invariants)
	}

	g := report.Grid
	fmt.Println(viz.BoxWithTitle("grid", viz.Table([]viz.Row{
		viz.S("shape", fmt.Sprintf("%d×%d×%d", g.Shape[0], g.Shape[1], g.Shape[2])),
		viz.S("interior", fmt.Sprintf("%d×%d×%d", report.Interior[0], report.Interior[1], report.Interior[2])),
		viz.F("spacing", g.Spacing),
	})))
	fmt.Println(viz.BoxWithTitle("field", viz.Table([]viz.Row{
		viz.F("max speed", report.MaxSpeed),
		viz.F("kinetic energy", report.KineticEnergy),
		viz.F("helicity", report.Helicity),
		viz.F("pressure min", report.PressureMin),
		viz.F("pressure max", report.PressureMax),
	})))
	fmt.Println(viz.BoxWithTitle("invariants", viz.Table([]viz.Row{
		viz.F("H_charge", report.Invariants.HCharge),
		viz.F("H_mass", report.Invariants.HMass),
		viz.F("a_mu", report.Invariants.AMu),
	})))
	return nil
}

func analyzeFrames(cmd *cobra.Command, args []string) error {
	_, exp, err := setup(cmd, args)
	if err != nil {
		return err
	}

	report, err := experiment.AnalyzeFrames(exp.Curve())
	if err != nil {
		return err
	}

	status := viz.StatusOK.Render("none")
	if report.Degenerate > 0 {
		status = viz.StatusWarn.Render(fmt.Sprintf("%d", report.Degenerate))
	}
	fmt.Println(viz.BoxWithTitle("frames", viz.Table([]viz.Row{
		viz.I("points", report.Frames.Len()),
		viz.F("mean curvature", report.MeanCurvature),
		viz.F("max curvature", report.MaxCurvature),
		viz.F("total curvature", report.TotalCurvature),
		viz.F("mean torsion", report.MeanTorsion),
		viz.S("flat points", status),
	})))
	fmt.Println(viz.MetricLabel.Render("curvature ") + viz.SparklineChart(report.Curvature, 60))
	fmt.Println(viz.MetricLabel.Render("torsion   ") + viz.SparklineChart(report.Torsion, 60))

	switch plotMetric {
	case "":
	case "curvature":
		fmt.Println(viz.Plot(report.Curvature, "curvature vs index", 70, 10))
	case "torsion":
		fmt.Println(viz.Plot(report.Torsion, "torsion vs index", 70, 10))
	default:
		return fmt.Errorf("unknown profile: %s (curvature, torsion)", plotMetric)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println(viz.HeaderStyle.Render("presets"))
	for _, kind := range config.ListKinds() {
		fmt.Printf("%s\n", viz.Title.Render(kind))
		for _, name := range config.ListPresets(kind) {
			p := config.GetPreset(kind, name)
			fmt.Printf("  %s/%s  %s\n", kind, name, viz.Subtle.Render(fmt.Sprintf(
				"%s dt=%g steps=%d segments=%d core=%g",
				p.Integrator, p.Dt, p.Steps, p.Filament.Segments, p.Kernel.CoreRadius)))
		}
	}
	fmt.Println(viz.Separator(40))
	fmt.Printf("backends: %v\n", compute.ListBackends())
	return nil
}
