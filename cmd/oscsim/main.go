package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/oscsim/internal/config"
	"github.com/san-kum/oscsim/internal/driver"
	"github.com/san-kum/oscsim/internal/forcing"
	"github.com/san-kum/oscsim/internal/metrics"
	"github.com/san-kum/oscsim/internal/oscillator"
	"github.com/san-kum/oscsim/internal/store"
	"github.com/san-kum/oscsim/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	initValue  float64
	initVel    float64
	target     float64
	configFile string
	preset     string
	frameRate  int
	svgOut     string
	label      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oscsim",
		Short: "damped-oscillator interaction kernel lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".oscsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and record it",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().Float64Var(&initValue, "value", 0.0, "initial value")
	runCmd.Flags().Float64Var(&initVel, "velocity", 0.0, "initial velocity")
	runCmd.Flags().Float64Var(&target, "target", 0.5, "constant forcing target")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&label, "label", "run", "label for the stored run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step the oscillator with live visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().Float64Var(&initValue, "value", 0.0, "initial value")
	liveCmd.Flags().Float64Var(&initVel, "velocity", 0.0, "initial velocity")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write an SVG to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure kernel steps per second",
		RunE:  benchKernel,
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, listCmd, presetsCmd, exportJSONCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and flags: file overrides
// preset, flags override the run parameters of both.
func resolveConfig() (*config.Config, error) {
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
			return nil, err
		}
		cfg = loaded
	}

	return cfg, nil
}

func buildAxis(cfg *config.Config) (*oscillator.Axis, error) {
	return oscillator.NewAxis(cfg.Init.Value, cfg.Init.Velocity, cfg.BuildExtent(), cfg.BuildElastic())
}

func applyInitFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("value") {
		cfg.Init.Value = initValue
	}
	if cmd.Flags().Changed("velocity") {
		cfg.Init.Velocity = initVel
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	applyInitFlags(cmd, cfg)
	if cmd.Flags().Changed("target") {
		cfg.Signal = config.SignalConfig{Type: "constant", Value: target}
	}

	axis, err := buildAxis(cfg)
	if err != nil {
		return err
	}

	d := driver.New(axis, cfg.BuildSignal())
	d.AddMetric(metrics.NewSettleTime(0.01))
	d.AddMetric(metrics.NewOvershoot())
	d.AddMetric(metrics.NewEnergy(cfg.Elastic.Mass, cfg.Elastic.HandK))

	start := time.Now()
	result, err := d.Run(context.Background(), driver.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	elapsed := time.Since(start)
	if err != nil {
		if result == nil || !result.Diverged {
			return err
		}
		fmt.Printf("run diverged: %v\n", err)
	}

	s := store.New(dataDir)
	if err := s.Init(); err != nil {
		return err
	}
	runID, err := s.Save(label, cfg.Signal.Type, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "wall time\t%s\n", elapsed.Round(time.Microsecond))
	fmt.Fprintf(w, "final value\t%.6f\n", result.Values[len(result.Values)-1])
	fmt.Fprintf(w, "final velocity\t%.6f\n", result.Velocities[len(result.Velocities)-1])
	for name, v := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", name, v)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.Sparkline(result.Values, 60, 8))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	applyInitFlags(cmd, cfg)

	// Validate once up front so the rebuild closure cannot fail later.
	if _, err := buildAxis(cfg); err != nil {
		return err
	}

	rebuild := func() oscillator.Oscillator[float64] {
		axis, _ := buildAxis(cfg)
		return axis
	}
	return viz.RunLive(viz.NewLive(cfg.BuildSignal(), cfg.Dt, frameRate, rebuild))
}

func plotRun(cmd *cobra.Command, args []string) error {
	s := store.New(dataDir)
	result, err := s.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Plot(result, args[0], 70, 16))

	if svgOut != "" {
		svg := store.TrajectorySVG(result, 800, 400)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIGNAL\tDT\tDURATION\tDIVERGED\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%v\t%s\n",
			r.ID, r.Signal, r.Dt, r.Duration, r.Diverged,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func benchKernel(cmd *cobra.Command, args []string) error {
	extent := oscillator.ExtentConfig[float64]{
		MinStretch: -1, MaxStretch: 1, SnapToEnd: true,
		SnapPoints: []float64{-0.5, 0, 0.5},
	}
	axis, err := oscillator.NewAxis(0, 0, extent, oscillator.DefaultElastic())
	if err != nil {
		return err
	}

	signal := forcing.Sine{Amplitude: 0.8, Frequency: 0.5}
	const steps = 5_000_000

	start := time.Now()
	t := 0.0
	for i := 0; i < steps; i++ {
		axis.Step(signal.At(t), 1.0/60.0)
		t += 1.0 / 60.0
	}
	elapsed := time.Since(start)

	fmt.Printf("%d steps in %s (%.0f steps/sec)\n",
		steps, elapsed.Round(time.Millisecond),
		float64(steps)/elapsed.Seconds())
	return nil
}
