package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandel/internal/analysis"
	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/config"
	"github.com/san-kum/mandel/internal/escape"
	"github.com/san-kum/mandel/internal/grid"
	"github.com/san-kum/mandel/internal/storage"
	"github.com/san-kum/mandel/internal/viz"
)

var (
	dataDir  string
	logLevel string

	budget  int
	cols    int
	rows    int
	density int
	region  string
	backend string
	workers int
	label   string
	theme   string

	configFile string
	preset     string
	progress   bool
	showOrbit  bool
	budgets    string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "mandel",
		Short:        "escape-time evaluation of the mandelbrot set",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mandel", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	evalCmd := &cobra.Command{
		Use:   "eval [re] [im]",
		Short: "evaluate a single point",
		Args:  cobra.ExactArgs(2),
		RunE:  evalPoint,
	}
	evalCmd.Flags().IntVar(&budget, "budget", escape.DefaultBudget, "iteration budget")
	evalCmd.Flags().BoolVar(&showOrbit, "orbit", false, "print the orbit")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate a grid and save the run",
		Args:  cobra.NoArgs,
		RunE:  runGrid,
	}
	addGridFlags(runCmd)
	runCmd.Flags().StringVar(&label, "label", "run", "run label")
	runCmd.Flags().BoolVar(&progress, "progress", false, "show a progress view")
	runCmd.Flags().StringVar(&theme, "theme", viz.ThemeCyberpunk.Name, "progress view theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "escape statistics and histogram of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  statsRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "bounded fraction across iteration budgets",
		Args:  cobra.NoArgs,
		RunE:  sweepBudgets,
	}
	addGridFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&budgets, "budgets", "10,20,50,100,200,500", "comma separated budgets")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare backends on the same grid",
		Args:  cobra.NoArgs,
		RunE:  benchBackends,
	}
	addGridFlags(benchCmd)

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "list named regions",
		Args:  cobra.NoArgs,
		RunE:  listRegions,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tREGION\tSIZE\tBUDGET")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				r := p.RegionName
				if r == "" {
					r = regionString(p.Region)
				}
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\n", name, r, p.Cols, p.Rows, p.Budget)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(evalCmd, runCmd, listCmd, showCmd, exportJSONCmd, statsCmd, sweepCmd, benchCmd, regionsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&region, "region", "full", "named region")
	cmd.Flags().IntVar(&density, "density", config.DefaultDensity, "samples per axis (sets cols and rows)")
	cmd.Flags().IntVar(&cols, "cols", config.DefaultDensity, "samples along the real axis")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultDensity, "samples along the imaginary axis")
	cmd.Flags().IntVar(&budget, "budget", escape.DefaultBudget, "iteration budget")
	cmd.Flags().StringVar(&backend, "backend", compute.DefaultBackend, fmt.Sprintf("compute backend %v", compute.BackendNames()))
	cmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "worker goroutines (0 = one per CPU)")
}

// resolveConfig layers defaults, preset, config file and changed flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
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

	flags := cmd.Flags()
	if flags.Changed("region") {
		cfg.RegionName = region
	}
	if flags.Changed("density") {
		cfg.Cols, cfg.Rows = density, density
	}
	if flags.Changed("cols") {
		cfg.Cols = cols
	}
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("budget") {
		cfg.Budget = budget
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func evalPoint(cmd *cobra.Command, args []string) error {
	re, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid real part: %w", err)
	}
	im, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid imaginary part: %w", err)
	}
	c := complex(re, im)

	res, err := escape.Evaluate(c, budget)
	if err != nil {
		return err
	}
	smooth, err := escape.Smooth(c, budget)
	if err != nil {
		return err
	}

	fmt.Printf("c: %v\n", c)
	fmt.Printf("budget: %d\n", budget)
	fmt.Printf("result: %s\n", res)
	fmt.Printf("smooth: %.6f\n", smooth)

	if showOrbit {
		orbit, err := escape.Orbit(c, budget)
		if err != nil {
			return err
		}
		fmt.Println("\norbit:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "N\tRE\tIM\t|Z|²")
		for i, z := range orbit {
			fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.6g\n", i+1, real(z), imag(z), real(z)*real(z)+imag(z)*imag(z))
		}
		return w.Flush()
	}
	return nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Grid()
	if err != nil {
		return err
	}
	be, err := compute.NewBackend(cfg.Backend, cfg.Workers)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"grid":    g.String(),
		"budget":  cfg.Budget,
		"backend": be.Name(),
	}).Info("evaluating grid")

	start := time.Now()
	var f *compute.Field
	if progress {
		f, err = viz.RunWithProgress(ctx, be, g, cfg.Budget, viz.GetTheme(theme))
	} else {
		fmt.Printf("evaluating %s with budget %d...\n", g, cfg.Budget)
		f, err = be.Evaluate(ctx, g, cfg.Budget, nil)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunInfo{Label: label, Backend: be.Name(), Elapsed: elapsed}, f)
	if err != nil {
		return err
	}

	sum := analysis.Summarize(f)
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d\n", sum.Points)
	fmt.Printf("bounded: %d (%.2f%%)\n", sum.Bounded, sum.BoundedFraction*100)
	fmt.Printf("area estimate: %.6f\n", sum.AreaEstimate)
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
	fmt.Fprintln(w, "ID\tTIME\tREGION\tSIZE\tBUDGET\tBACKEND\tBOUNDED\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%.2f%%\t%.3fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			regionString(run.Region),
			run.Cols, run.Rows,
			run.Budget,
			run.Backend,
			run.Summary.BoundedFraction*100,
			run.Elapsed,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	f, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := storage.ExportJSONFile(outFile, runID, f); err != nil {
			return err
		}
		fmt.Printf("exported %s to %s\n", runID, outFile)
		return nil
	}
	return storage.ExportJSONStdout(runID, f)
}

func statsRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, f, err := st.LoadRun(runID)
	if err != nil {
		return err
	}

	sum := analysis.Summarize(f)
	fmt.Println(viz.SummaryView(meta.ID, sum, time.Duration(meta.Elapsed*float64(time.Second)), viz.ThemeCyberpunk))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "escaped\t%d\n", sum.Escaped)
	fmt.Fprintf(w, "stddev escape\t%.4f\n", sum.StdDevEscape)
	fmt.Fprintf(w, "max escape\t%d\n", sum.MaxEscape)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	hist := analysis.Histogram(f)
	fmt.Println(analysis.HistogramChart(hist, 80, 12, "points escaping per iteration"))
	return nil
}

func parseBudgets(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid budget %q: %w", part, err)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no budgets given")
	}
	return out, nil
}

func sweepBudgets(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	list, err := parseBudgets(budgets)
	if err != nil {
		return err
	}
	g, err := cfg.Grid()
	if err != nil {
		return err
	}
	be, err := compute.NewBackend(cfg.Backend, cfg.Workers)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	points, err := analysis.BudgetSweep(ctx, be, g, list)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s\n\n", g)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUDGET\tBOUNDED\tFRACTION\tAREA")
	for _, p := range points {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.6f\n", p.Budget, p.Bounded, p.BoundedFraction, p.AreaEstimate)
	}
	return w.Flush()
}

func benchBackends(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Grid()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("benchmarking %s with budget %d\n\n", g, cfg.Budget)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tPOINTS\tTIME\tPOINTS/SEC")

	var ref *compute.Field
	for _, name := range compute.BackendNames() {
		be, err := compute.NewBackend(name, cfg.Workers)
		if err != nil {
			return err
		}

		start := time.Now()
		f, err := be.Evaluate(ctx, g, cfg.Budget, nil)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		if ref == nil {
			ref = f
		} else if !ref.Equal(f) {
			return fmt.Errorf("backend %s disagrees with %s", name, compute.BackendNames()[0])
		}

		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n", name, g.Len(), elapsed, float64(g.Len())/elapsed.Seconds())
	}

	return w.Flush()
}

func listRegions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tRE\tIM\tCENTER")
	for _, name := range grid.RegionNames() {
		r, err := grid.LookupRegion(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t[%g, %g]\t[%g, %g]\t%v\n", name, r.XMin, r.XMax, r.YMin, r.YMax, r.Center())
	}
	return w.Flush()
}

func regionString(r grid.Region) string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", r.XMin, r.XMax, r.YMin, r.YMax)
}
