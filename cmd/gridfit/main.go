package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gridfit/internal/automation"
	"github.com/san-kum/gridfit/internal/config"
	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/export"
	"github.com/san-kum/gridfit/internal/fitgame"
	"github.com/san-kum/gridfit/internal/metrics"
	"github.com/san-kum/gridfit/internal/observability"
	"github.com/san-kum/gridfit/internal/paper"
	"github.com/san-kum/gridfit/internal/server"
	"github.com/san-kum/gridfit/internal/tui"
	"github.com/san-kum/gridfit/internal/viz"
	"github.com/san-kum/gridfit/internal/waves"
)

var (
	configFile string
	cfg        *config.Config

	// play
	theme       string
	metricsAddr string
	// snapshot
	snapshotOut string
	ticks       int
	width       int
	height      int
	// board
	areal    string
	grid     string
	boardOut string
	seed     int64
	// serve
	addr string
	// paper
	format string
	// script
	scriptOut string
	// guess
	trials    int
	guessSeed int64
)

// svgDot is the pixel pitch of one braille dot in SVG snapshots.
const svgDot = 4

func main() {
	rootCmd := &cobra.Command{
		Use:           "gridfit",
		Short:         "grid-wise vs areal distribution fitting lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			return err
		},
		RunE: runPlay,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "run the fit-the-curve challenge in the terminal",
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	playCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics on this address while playing")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a backdrop frame to PNG or SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "waves.png", "output file (.png or .svg)")
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 120, "frames to advance before capture")
	snapshotCmd.Flags().IntVar(&width, "width", 1280, "width in pixels")
	snapshotCmd.Flags().IntVar(&height, "height", 720, "height in pixels")

	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "render the challenge board to SVG",
		RunE:  runBoard,
	}
	boardCmd.Flags().StringVar(&areal, "areal", "", "areal distribution (normal, gamma, gev)")
	boardCmd.Flags().StringVar(&grid, "grid", "", "per-region distributions, comma separated")
	boardCmd.Flags().StringVarP(&boardOut, "out", "o", "board.svg", "output file")
	boardCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "histogram jitter seed")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve preview renders and metrics over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	paperCmd := &cobra.Command{
		Use:   "paper",
		Short: "print the study's summary tables",
		RunE:  printPaper,
	}
	paperCmd.Flags().StringVar(&format, "format", "text", "output format (text, json, csv)")

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "plot the candidate distribution shapes",
		RunE:  plotCurves,
	}

	scriptCmd := &cobra.Command{
		Use:   "script [scenario.yaml]",
		Short: "play a scripted scenario headlessly",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().StringVarP(&scriptOut, "out", "o", "", "write the final board as SVG")

	guessCmd := &cobra.Command{
		Use:   "guess",
		Short: "estimate the odds of fitting every cell by guessing",
		RunE:  runGuess,
	}
	guessCmd.Flags().IntVar(&trials, "trials", 10000, "number of random boards")
	guessCmd.Flags().Int64Var(&guessSeed, "seed", 0, "random seed (0 = time based)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "gridfit.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list backdrop presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd, presetsCmd)

	rootCmd.AddCommand(playCmd, snapshotCmd, boardCmd, serveCmd, paperCmd, curvesCmd, scriptCmd, guessCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func stderrLogger() *slog.Logger {
	return observability.NewLogger(cfg.Log, os.Stderr)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if theme != "" {
		cfg.Theme = theme
	}

	w, err := observability.OpenLogFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer w.Close()
	logger := observability.NewLogger(cfg.Log, w)

	var m *metrics.Metrics
	if metricsAddr != "" {
		reg := newRegistry()
		m = metrics.New(reg)
		scfg := *cfg
		scfg.Server.Addr = metricsAddr
		srv := server.NewServer(&scfg, reg, m, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			srv.Shutdown(ctx) //nolint:errcheck // exiting anyway
		}()
	}

	return tui.Run(cfg, logger, m)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	logger := stderrLogger()
	opts := []waves.Option{
		waves.WithBands(cfg.Waves.BandSet()),
		waves.WithStep(cfg.Waves.Step),
		waves.WithLogger(logger),
	}

	var err error
	switch strings.ToLower(filepath.Ext(snapshotOut)) {
	case ".svg":
		err = snapshotSVG(opts)
	case ".png":
		err = snapshotPNG(opts)
	default:
		return fmt.Errorf("unsupported output %q: use .png or .svg", snapshotOut)
	}
	if err != nil {
		return err
	}
	logger.Info("snapshot written", "out", snapshotOut, "ticks", ticks, "width", width, "height", height)
	return nil
}

func snapshotPNG(opts []waves.Option) error {
	f, err := os.Create(snapshotOut)
	if err != nil {
		return err
	}
	defer f.Close()

	opts = append(opts,
		waves.WithGrid(cfg.Waves.GridSpacing, waves.DefaultGridColor),
		waves.WithBackground(waves.DefaultBackground),
	)
	if err := waves.RenderPNG(f, width, height, ticks, opts...); err != nil {
		return err
	}
	return f.Close()
}

// snapshotSVG renders on a braille canvas at 1/svgDot resolution and
// exports one dot per lit sub-pixel.
func snapshotSVG(opts []waves.Option) error {
	w, h := width/svgDot, height/svgDot
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", waves.ErrInvalidSize, width, height)
	}
	canvas := viz.NewCanvas((w+1)/2, (h+3)/4)
	sched := waves.NewManualScheduler()
	opts = append(opts,
		waves.WithScale(1.0/svgDot),
		waves.WithGrid(cfg.Waves.GridSpacing/svgDot, waves.DefaultGridColor),
	)
	r := waves.New(canvas, waves.NewStaticHost(w, h), sched, opts...)
	r.Mount()
	for i := 1; i < ticks; i++ {
		sched.Step()
	}
	r.Unmount()

	color := string(viz.GetTheme(cfg.Theme).Primary)
	return os.WriteFile(snapshotOut, []byte(export.CanvasToSVG(canvas, svgDot, color)), 0644)
}

func runBoard(cmd *cobra.Command, args []string) error {
	a, err := curve.ParseKind(areal)
	if err != nil {
		return err
	}
	g, err := curve.ParseKinds(grid)
	if err != nil {
		return err
	}
	snap, err := export.Board(a, g)
	if err != nil {
		return err
	}

	opts := export.DefaultTileOptions()
	opts.Rand = rand.New(rand.NewSource(seed))
	if err := os.WriteFile(boardOut, []byte(export.BoardSVG(snap, opts)), 0644); err != nil {
		return err
	}
	fmt.Printf("mode: %s\n", snap.Mode)
	if snap.Mode == fitgame.ModeAreal {
		fmt.Printf("total error: %s (%d mismatches)\n", snap.ArealBadge(), snap.ArealErrors)
	} else {
		fmt.Printf("remaining mismatches: %d\n", snap.GridErrors)
	}
	fmt.Printf("wrote %s\n", boardOut)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr != "" {
		cfg.Server.Addr = addr
	}
	logger := stderrLogger()
	reg := newRegistry()
	srv := server.NewServer(cfg, reg, metrics.New(reg), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	logger := stderrLogger()

	clock := clockwork.NewRealClock()
	g := fitgame.New(
		fitgame.WithClock(clock),
		fitgame.WithVictoryDelay(cfg.VictoryDelay),
		fitgame.WithLogger(logger),
	)
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	results, runErr := automation.RunScenario(ctx, sc, g, clock)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tAPPLIED\tMODE\tAREAL ERR\tGRID ERR")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%t\t%s\t%d\t%d\n",
			r.Index, r.Step.Action, r.Applied, r.Snapshot.Mode, r.Snapshot.ArealErrors, r.Snapshot.GridErrors)
	}
	w.Flush()

	if scriptOut != "" && len(results) > 0 {
		snap := results[len(results)-1].Snapshot
		if err := os.WriteFile(scriptOut, []byte(export.BoardSVG(snap, export.DefaultTileOptions())), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", scriptOut)
	}
	return runErr
}

func runGuess(cmd *cobra.Command, args []string) error {
	if trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}
	stats := automation.RunGuesses(fitgame.DefaultRegions, trials, guessSeed)
	fmt.Printf("trials: %d\n", stats.Trials)
	fmt.Printf("perfect boards: %d (%.2f%%)\n", stats.Perfect, stats.Rate()*100)
	for n, count := range stats.Mismatches {
		fmt.Printf("  %d mismatched: %d\n", n, count)
	}
	return nil
}

func printPaper(cmd *cobra.Command, args []string) error {
	switch format {
	case "text":
		fmt.Println(paper.NewRenderer(viz.GetTheme(cfg.Theme)).Render())
		return nil
	case "json":
		return paper.ExportJSON(os.Stdout)
	case "csv":
		return paper.ExportF1CSV(os.Stdout)
	}
	return fmt.Errorf("unknown format %q", format)
}

func plotCurves(cmd *cobra.Command, args []string) error {
	for _, k := range curve.Kinds {
		graph := asciigraph.Plot(curve.Series(k, 60),
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.LowerBound(0),
			asciigraph.Caption(k.Label()),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
