package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/crashwatch/internal/config"
	"github.com/san-kum/crashwatch/internal/dataio"
	"github.com/san-kum/crashwatch/internal/engine"
	"github.com/san-kum/crashwatch/internal/lppl"
	"github.com/san-kum/crashwatch/internal/report"
	"github.com/san-kum/crashwatch/internal/synth"
	"github.com/san-kum/crashwatch/internal/tui"
)

var (
	bandwidth  float64
	window     int
	lookback   int
	configFile string
	preset     string
	workers    int
	jsonOut    string
	charts     bool
	verbose    bool

	// synth flags
	synthN     int
	synthSeed  int64
	synthNoise float64
	synthOut   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crashwatch",
		Short: "early-warning analysis for price series",
		Long: "crashwatch detects two early-warning signatures in a price series:\n" +
			"critical slowing down (loss of resilience before a transition) and\n" +
			"log-periodic power law bubble dynamics.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [prices.csv]",
		Short: "run both detectors and print a report",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	addConfigFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "grid search workers")
	analyzeCmd.Flags().StringVar(&jsonOut, "json", "", "write full result to a JSON file")
	analyzeCmd.Flags().BoolVar(&charts, "charts", false, "plot price, trend and indicators")

	csdCmd := &cobra.Command{
		Use:   "csd [prices.csv]",
		Short: "critical slowing down indicators only",
		Args:  cobra.ExactArgs(1),
		RunE:  runCSD,
	}
	addConfigFlags(csdCmd)
	csdCmd.Flags().BoolVar(&charts, "charts", false, "plot indicators")

	lpplCmd := &cobra.Command{
		Use:   "lppl [prices.csv]",
		Short: "bubble model fit only",
		Args:  cobra.ExactArgs(1),
		RunE:  runLPPL,
	}
	lpplCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "grid search workers")

	synthCmd := &cobra.Command{
		Use:   "synth [lppl|csd-ramp|random-walk]",
		Short: "generate a synthetic series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runSynth,
	}
	synthCmd.Flags().IntVar(&synthN, "n", 300, "number of observations")
	synthCmd.Flags().Int64Var(&synthSeed, "seed", 42, "random seed")
	synthCmd.Flags().Float64Var(&synthNoise, "noise", 0.01, "noise level")
	synthCmd.Flags().StringVar(&synthOut, "out", "synthetic.csv", "output file")

	watchCmd := &cobra.Command{
		Use:   "watch [prices.csv]",
		Short: "interactive replay of the indicators over time",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addConfigFlags(watchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%s: bandwidth=%.0f window=%d lookback=%d\n",
					name, cfg.DetrendBandwidth, cfg.CSDWindow, cfg.TauLookback)
			}
		},
	}

	rootCmd.AddCommand(analyzeCmd, csdCmd, lpplCmd, synthCmd, watchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&bandwidth, "bandwidth", config.DefaultDetrendBandwidth, "detrend kernel bandwidth")
	cmd.Flags().IntVar(&window, "window", config.DefaultCSDWindow, "rolling window size")
	cmd.Flags().IntVar(&lookback, "lookback", config.DefaultTauLookback, "kendall tau lookback")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig applies preset, then config file, then flags. Explicit
// flags win over both, matching how the flags were registered.
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
		*cfg = *loaded
	}

	if cmd.Flags().Changed("bandwidth") {
		cfg.DetrendBandwidth = bandwidth
	}
	if cmd.Flags().Changed("window") {
		cfg.CSDWindow = window
	}
	if cmd.Flags().Changed("lookback") {
		cfg.TauLookback = lookback
	}

	return cfg, cfg.Validate()
}

// signalContext cancels on interrupt; the grid search then returns the
// best candidate found so far instead of discarding the run.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	prices, err := dataio.LoadPrices(args[0])
	if err != nil {
		return err
	}
	log.Debug().Int("observations", len(prices)).Msg("loaded prices")

	ctx, cancel := signalContext()
	defer cancel()

	start := time.Now()
	result, err := engine.Analyze(ctx, prices, cfg)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("analysis complete")

	fmt.Println(report.Summary(result))
	if charts {
		fmt.Println(report.Charts(prices, result))
	}

	if jsonOut != "" {
		if err := dataio.WriteResult(jsonOut, result); err != nil {
			return err
		}
		log.Info().Str("path", jsonOut).Msg("wrote result")
	}
	return nil
}

func runCSD(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	prices, err := dataio.LoadPrices(args[0])
	if err != nil {
		return err
	}

	csdResult, err := engine.RunCSD(prices, cfg)
	if err != nil {
		return err
	}

	result := &engine.Result{
		CSD:        csdResult,
		Provenance: engine.Provenance{Observations: len(prices), Config: *cfg},
	}
	fmt.Println(report.Summary(result))
	if charts {
		fmt.Println(report.Charts(prices, result))
	}
	return nil
}

func runLPPL(cmd *cobra.Command, args []string) error {
	prices, err := dataio.LoadPrices(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	start := time.Now()
	result := lppl.OptimizeGrid(ctx, prices, lppl.DefaultGrid(), workers)
	log.Debug().Dur("elapsed", time.Since(start)).
		Int("workers", workers).Msg("grid search complete")

	if result.Fit == nil {
		fmt.Printf("no usable fit (best R²=%.4f)\n", result.R2)
		return nil
	}

	fmt.Printf("bubble: %v  confidence: %.2f  R²: %.4f\n",
		result.IsBubble, result.Confidence, result.R2)
	fmt.Printf("critical time: %d steps beyond series end\n", result.TCDays)
	fmt.Printf("tc=%.1f A=%.4f B=%.4f C=%.4f m=%.2f omega=%.1f phi=%.2f\n",
		result.Fit.TC, result.Fit.A, result.Fit.B, result.Fit.C,
		result.Fit.M, result.Fit.Omega, result.Fit.Phi)
	return nil
}

func runSynth(cmd *cobra.Command, args []string) error {
	kind := args[0]
	var out []float64

	switch kind {
	case "lppl":
		fit := lppl.Fit{
			TC: float64(synthN) + 60,
			A:  5.0, B: -0.8, C: 0.1,
			M: 0.45, Omega: 7.0, Phi: 1.0,
		}
		out = synth.LPPL(fit, synthN, synthNoise, synthSeed)
	case "csd-ramp":
		out = synth.CSDRamp(synthN, 100, 100.0, 0.4, 0.85, 1.0, synthSeed)
	case "random-walk":
		out = synth.RandomWalk(synthN, 0.0005, 0.02, synthSeed)
	default:
		return fmt.Errorf("unknown kind: %s (want lppl, csd-ramp or random-walk)", kind)
	}

	if err := dataio.SavePrices(synthOut, out); err != nil {
		return err
	}
	log.Info().Str("kind", kind).Int("n", synthN).
		Str("path", synthOut).Msg("wrote synthetic series")
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	prices, err := dataio.LoadPrices(args[0])
	if err != nil {
		return err
	}

	csdResult, err := engine.RunCSD(prices, cfg)
	if err != nil {
		return err
	}

	return tui.Run(prices, csdResult, cfg.TauLookback)
}
