package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bounce/internal/analysis"
	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/export"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/scenario"
	"github.com/san-kum/bounce/internal/sim"
	"github.com/san-kum/bounce/internal/storage"
	"github.com/san-kum/bounce/internal/viz"
	"github.com/san-kum/bounce/internal/world"
)

var (
	dataDir    string
	configFile string
	preset     string
	width      int
	height     int
	frameRate  int
	seed       int64
	gravity    bool
	inverted   bool
	noStats    bool
	frames     int
	runs       int
	bodyIdx    int
	axis       string
	frameIdx   int
	trail      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bounce",
		Short: "deterministic fixed-point bouncing bodies",
		RunE:  runLive,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bounce", "data directory")
	addWorldFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and record metrics",
		RunE:  runHeadless,
	}
	addWorldFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", 1000, "frames to simulate")
	runCmd.Flags().IntVar(&runs, "runs", 1, "parallel runs with consecutive seeds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIdx, "body", 0, "body index")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a body trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&bodyIdx, "body", 0, "body index")
	analyzeCmd.Flags().StringVar(&axis, "axis", "y", "trace axis (x or y)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a frame or a body trail as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&frameIdx, "frame", -1, "frame to render (-1 = last)")
	exportSVGCmd.Flags().BoolVar(&trail, "trail", false, "render a body's trajectory instead")
	exportSVGCmd.Flags().IntVar(&bodyIdx, "body", 0, "body index for --trail")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario headless",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	addWorldFlags(scenarioCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.Presets[name]
				fmt.Printf("%-10s %dx%d @ %d fps", name, cfg.Display.Width, cfg.Display.Height, cfg.FPS)
				if cfg.Gravity.Enabled {
					if cfg.Gravity.Inverted {
						fmt.Print("  gravity up")
					} else {
						fmt.Print("  gravity down")
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, scenarioCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addWorldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "display width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "display height in pixels")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = current time)")
	cmd.Flags().BoolVar(&gravity, "gravity", false, "enable gravity")
	cmd.Flags().BoolVar(&inverted, "inverted", false, "point gravity upward")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "hide the stats sidebar")
}

// resolveConfig layers preset, config file, and CLI flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Display.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Display.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity.Enabled = gravity
	}
	if cmd.Flags().Changed("inverted") {
		cfg.Gravity.Inverted = inverted
	}
	if cmd.Flags().Changed("no-stats") {
		cfg.Stats = !noStats
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func newWorld(cfg *config.Config, seed int64) *world.World {
	w := world.New(cfg.Display.Width, cfg.Display.Height, seed)
	if cfg.Gravity.Enabled {
		w.SetGravityEnabled(true)
		if cfg.Gravity.Inverted {
			w.InvertGravity()
		}
	}
	return w
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(newWorld(cfg, cfg.Seed), cfg)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newRunner(cfg *config.Config, seed int64) *sim.Runner {
	r := sim.New(newWorld(cfg, seed))
	r.AddMetric(metrics.NewMeanSpeed())
	r.AddMetric(metrics.NewPeakSpeed())
	r.AddMetric(metrics.NewSpread())
	return r
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	if runs > 1 {
		return runEnsemble(cfg)
	}

	fmt.Printf("simulating %d frames (seed %d)...\n", frames, cfg.Seed)
	start := time.Now()

	r := newRunner(cfg, cfg.Seed)
	result, err := r.Run(context.Background(), sim.Config{Frames: frames, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Seed, cfg.Display.Width, cfg.Display.Height, cfg.Gravity.Enabled, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%.0f frames/sec)\n", elapsed, float64(len(result.Frames))/elapsed.Seconds())
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runEnsemble(cfg *config.Config) error {
	fmt.Printf("simulating %d runs of %d frames (seeds %d..%d)...\n", runs, frames, cfg.Seed, cfg.Seed+int64(runs)-1)
	start := time.Now()

	e := sim.NewEnsemble(func(seed int64) *sim.Runner {
		return newRunner(cfg, seed)
	}, runs, cfg.Seed)

	results, err := e.Run(context.Background(), sim.Config{Frames: frames})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tMEAN_SPEED\tPEAK_SPEED\tSPREAD")
	for i, result := range results {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\n",
			cfg.Seed+int64(i),
			result.Metrics["mean_speed"],
			result.Metrics["peak_speed"],
			result.Metrics["spread"],
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", elapsed)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	list, err := st.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tDISPLAY\tGRAVITY\tSEED")
	for _, run := range list {
		grav := "off"
		if run.Gravity {
			grav = "on"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Width, run.Height,
			grav,
			run.Seed,
		)
	}
	return w.Flush()
}

func bodyTrace(frames []sim.Frame, body int, axis string) ([]float64, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no data")
	}
	if body < 0 || body >= len(frames[0].Bodies) {
		return nil, fmt.Errorf("body index %d out of range [0,%d)", body, len(frames[0].Bodies))
	}
	data := make([]float64, len(frames))
	for i, f := range frames {
		switch axis {
		case "x":
			data[i] = f.Bodies[body].X
		case "y":
			data[i] = f.Bodies[body].Y
		default:
			return nil, fmt.Errorf("unknown axis: %s", axis)
		}
	}
	return data, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	recorded, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("display: %dx%d, body: %d, samples: %d\n\n", meta.Width, meta.Height, bodyIdx, len(recorded))

	for _, ax := range []string{"x", "y"} {
		data, err := bodyTrace(recorded, bodyIdx, ax)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d %s position", bodyIdx, ax)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	recorded, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	data, err := bodyTrace(recorded, bodyIdx, axis)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("body %d, %s axis, %d samples\n\n", bodyIdx, axis, len(data))

	ps := analysis.PowerSpectrum(data)
	if len(ps) == 0 {
		return fmt.Errorf("no data")
	}

	plotData := ps
	if len(plotData) > 160 {
		plotData = plotData[:160]
	}
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, power := analysis.DominantFrequency(ps)
	if power == 0 {
		fmt.Println("no dominant frequency (flat spectrum)")
		return nil
	}
	fmt.Printf("dominant frequency: %.5f cycles/frame\n", freq)
	fmt.Printf("period: %.1f frames\n", 1.0/freq)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recorded, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(recorded) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"frame"}
	for i := range recorded[0].Bodies {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, f := range recorded {
		row := []string{strconv.Itoa(f.Index)}
		for _, b := range f.Bodies {
			row = append(row,
				strconv.FormatFloat(b.X, 'f', 6, 64),
				strconv.FormatFloat(b.Y, 'f', 6, 64),
				strconv.FormatFloat(b.VX, 'f', 6, 64),
				strconv.FormatFloat(b.VY, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	recorded, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(recorded) == 0 {
		return fmt.Errorf("no data to export")
	}

	if trail {
		if bodyIdx < 0 || bodyIdx >= len(recorded[0].Bodies) {
			return fmt.Errorf("body index %d out of range [0,%d)", bodyIdx, len(recorded[0].Bodies))
		}
		fmt.Println(export.TrajectoryToSVG(recorded, bodyIdx, meta.Width, meta.Height, "#00ff00"))
		return nil
	}

	idx := frameIdx
	if idx < 0 {
		idx = len(recorded) - 1
	}
	if idx >= len(recorded) {
		return fmt.Errorf("frame %d out of range [0,%d)", idx, len(recorded))
	}
	fmt.Println(export.FrameToSVG(recorded[idx], meta.Width, meta.Height, 0))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("scenario %q: %d frames, %d scripted steps (seed %d)\n", s.Name, s.Frames, len(s.Steps), cfg.Seed)
	start := time.Now()

	r := newRunner(cfg, cfg.Seed)
	r.AddObserver(scenario.NewDriver(s, r.World()))

	result, err := r.Run(context.Background(), sim.Config{Frames: s.Frames, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Seed, cfg.Display.Width, cfg.Display.Height, cfg.Gravity.Enabled, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	recorded, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return storage.ExportJSON(enc, meta, recorded)
}
