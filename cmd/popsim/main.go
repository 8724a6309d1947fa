package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/computational-ecology-lab/single-population-workshop/internal/analysis"
	"github.com/computational-ecology-lab/single-population-workshop/internal/config"
	"github.com/computational-ecology-lab/single-population-workshop/internal/experiment"
	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
	"github.com/computational-ecology-lab/single-population-workshop/internal/sim"
	"github.com/computational-ecology-lab/single-population-workshop/internal/storage"
	"github.com/computational-ecology-lab/single-population-workshop/internal/viz"
)

var (
	dataDir  string
	n0       float64
	steps    int
	rate     float64
	capacity float64
	harvest  float64
	preset   string
	// Config file
	configFile string
	// Sweep parameters
	rMin   float64
	rMax   float64
	rSteps int
	tail   int
	// Frame rate for live view
	frameRate int
	// Export target
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "popsim",
		Short: "single-species population dynamics workshop",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".popsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [law]",
		Short: "simulate a growth law and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&n0, "n0", config.DefaultN0, "initial population")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	runCmd.Flags().Float64Var(&rate, "rate", config.DefaultR, "growth rate (R or r)")
	runCmd.Flags().Float64Var(&capacity, "cap", config.DefaultK, "carrying capacity K")
	runCmd.Flags().Float64Var(&harvest, "harvest", 0, "proportional harvest rate per step")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [law]",
		Short: "bifurcation sweep over the growth rate",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&rMin, "r-min", config.DefaultSweepMin, "lowest growth rate")
	sweepCmd.Flags().Float64Var(&rMax, "r-max", config.DefaultSweepMax, "highest growth rate")
	sweepCmd.Flags().IntVar(&rSteps, "r-steps", config.DefaultSweepVals, "number of swept values")
	sweepCmd.Flags().Float64Var(&capacity, "cap", config.DefaultK, "carrying capacity K")
	sweepCmd.Flags().Float64Var(&n0, "n0", config.DefaultN0, "initial population")
	sweepCmd.Flags().IntVar(&steps, "steps", 500, "time steps per row")
	sweepCmd.Flags().IntVar(&tail, "tail", config.DefaultSweepTail, "tail values plotted per row")

	growthCmd := &cobra.Command{
		Use:   "growth [run_id]",
		Short: "per-capita growth rate analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeGrowth,
	}

	chaosCmd := &cobra.Command{
		Use:   "chaos [law]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  estimateChaos,
	}
	chaosCmd.Flags().Float64Var(&rate, "rate", 3.5, "growth rate (R or r)")
	chaosCmd.Flags().Float64Var(&capacity, "cap", config.DefaultK, "carrying capacity K")
	chaosCmd.Flags().Float64Var(&n0, "n0", config.DefaultN0, "initial population")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a full run, trajectory included, to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output path (default run_id.json)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's trajectory to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output path (default run_id.csv)")

	compareCmd := &cobra.Command{
		Use:   "compare [law1] [law2] ...",
		Short: "run several laws from the same start and overlay them",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareLaws,
	}
	compareCmd.Flags().Float64Var(&n0, "n0", config.DefaultN0, "initial population")
	compareCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	compareCmd.Flags().Float64Var(&rate, "rate", config.DefaultR, "growth rate (R or r)")
	compareCmd.Flags().Float64Var(&capacity, "cap", config.DefaultK, "carrying capacity K")

	presetsCmd := &cobra.Command{
		Use:   "presets [law]",
		Short: "list available presets for a law",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for law: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [law]",
		Short: "step the map interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&n0, "n0", config.DefaultN0, "initial population")
	liveCmd.Flags().Float64Var(&rate, "rate", config.DefaultR, "growth rate (R or r)")
	liveCmd.Flags().Float64Var(&capacity, "cap", config.DefaultK, "carrying capacity K")
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "steps per second")

	rootCmd.AddCommand(runCmd, sweepCmd, growthCmd, chaosCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportCSVCmd, compareCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	law := args[0]

	if preset != "" {
		cfg := config.GetPreset(law, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(law))
		}
		n0 = cfg.N0
		steps = cfg.Steps
		rate = cfg.Params.R
		capacity = cfg.Params.K
		if cfg.Harvest > 0 {
			harvest = cfg.Harvest
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override file values.
		if !cmd.Flags().Changed("n0") {
			n0 = cfg.N0
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("rate") {
			rate = cfg.Params.R
		}
		if !cmd.Flags().Changed("cap") {
			capacity = cfg.Params.K
		}
		if !cmd.Flags().Changed("harvest") {
			harvest = cfg.Harvest
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	growthLaw, err := registry.GetLaw(law, rate, capacity)
	if err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Law:     law,
		N0:      n0,
		Steps:   steps,
		R:       rate,
		K:       capacity,
		Harvest: harvest,
	})
	if err := exp.Setup(growthLaw, registry.DefaultMetrics()); err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", law)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Law:     law,
		N0:      n0,
		Steps:   steps,
		R:       rate,
		K:       capacity,
		Harvest: harvest,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.Trajectory))
	fmt.Printf("final population: %.6f\n", result.Trajectory.Last())
	if eq, ok := analysis.SettlingValue(result.Trajectory, 1e-6, 10); ok {
		fmt.Printf("settled at: %.6f\n", eq)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	law := args[0]

	registry := experiment.NewRegistry()
	mk, err := registry.Constructor(law, capacity)
	if err != nil {
		return err
	}

	params, err := sim.ParamRange(rMin, rMax, rSteps)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s over r in [%.3f, %.3f] (%d values, %d steps each)...\n",
		law, rMin, rMax, rSteps, steps)
	start := time.Now()

	result, err := sim.Sweep(params, mk, n0, steps)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))
	fmt.Print(viz.BifurcationScatter(result, tail, 100, 28))
	fmt.Printf("\nr: %.3f%*s%.3f\n", rMin, 88, "", rMax)

	return nil
}

func analyzeGrowth(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	rates, err := analysis.PerCapitaGrowthRates(traj)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("law: %s\n\n", meta.Law)

	fmt.Println(viz.PlotSeries(rates, "per-capita growth rate ln(N[t+1]/N[t])"))
	fmt.Println()

	slope, intercept, err := analysis.LinearFit(traj[:len(traj)-1], rates)
	if err != nil {
		return err
	}

	fmt.Printf("fitted line:      intercept=%.4f  slope=%.6f\n", intercept, slope)
	if meta.Law == "ricker" {
		fmt.Printf("theoretical line: intercept=%.4f  slope=%.6f (r, -r/K)\n",
			meta.R, -meta.R/meta.K)
	}

	return nil
}

func estimateChaos(cmd *cobra.Command, args []string) error {
	law := args[0]

	registry := experiment.NewRegistry()
	growthLaw, err := registry.GetLaw(law, rate, capacity)
	if err != nil {
		return err
	}

	lambda, err := analysis.Lyapunov(growthLaw, n0, 200, 2000, 1e-8)
	if err != nil {
		return err
	}

	fmt.Printf("largest Lyapunov exponent: %.4f\n", lambda)
	if lambda > 0 {
		fmt.Println("positive: the dynamics are chaotic at these parameters")
	} else {
		fmt.Println("non-positive: the dynamics are regular at these parameters")
	}

	traj, err := sim.Simulate(n0, growthLaw, 500)
	if err != nil {
		return err
	}
	values := analysis.AttractorValues(traj, 100, 1e-3)
	fmt.Printf("attractor: %s (%d distinct tail values)\n",
		analysis.DescribeAttractor(values), len(values))

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
	fmt.Fprintln(w, "ID\tLAW\tTIME\tN0\tSTEPS\tRATE\tK\tHARVEST")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%.3f\t%.1f\t%.2f\n",
			run.ID,
			run.Law,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N0,
			run.Steps,
			run.R,
			run.K,
			run.Harvest,
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

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if len(traj) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("law: %s\n", meta.Law)
	fmt.Printf("samples: %d\n\n", len(traj))

	caption := fmt.Sprintf("population, %s law", meta.Law)
	fmt.Println(viz.PlotTrajectory(traj, caption))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	return printJSON(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = runID + ".json"
	}
	if err := storage.ExportJSON(path, meta, traj); err != nil {
		return err
	}

	fmt.Printf("exported to %s\n", path)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = runID + ".csv"
	}
	if err := storage.ExportCSV(path, traj); err != nil {
		return err
	}

	fmt.Printf("exported to %s\n", path)
	return nil
}

func compareLaws(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	trajs := make([]popdyn.Trajectory, 0, len(args))
	captions := make([]string, 0, len(args))

	for _, law := range args {
		growthLaw, err := registry.GetLaw(law, rate, capacity)
		if err != nil {
			return err
		}
		traj, err := sim.Simulate(n0, growthLaw, steps)
		if err != nil {
			return fmt.Errorf("%s: %w", law, err)
		}
		trajs = append(trajs, traj)
		captions = append(captions, law)
	}

	fmt.Printf("n0=%.2f  rate=%.3f  K=%.1f  steps=%d\n\n", n0, rate, capacity, steps)
	fmt.Println(viz.PlotComparison(trajs, captions))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nLAW\tFINAL\tSETTLED")
	for i, law := range args {
		settled := "-"
		if eq, ok := analysis.SettlingValue(trajs[i], 1e-6, 10); ok {
			settled = fmt.Sprintf("%.4f", eq)
		}
		fmt.Fprintf(w, "%s\t%.4f\t%s\n", law, trajs[i].Last(), settled)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	growthLaw, err := registry.GetLaw(args[0], rate, capacity)
	if err != nil {
		return err
	}
	return viz.RunLive(growthLaw, n0, frameRate)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
