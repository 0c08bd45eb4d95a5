// Package cli implements the valveplan command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/ingest"
	"github.com/katalvlaran/valveplan/internal/config"
	"github.com/katalvlaran/valveplan/internal/logging"
	"github.com/katalvlaran/valveplan/internal/metrics"
	"github.com/katalvlaran/valveplan/planner"
)

// Build-time variables injected via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath  string
	logLevel    string
	logFormat   string
	metricsFile string
	input       string
	start       string
}

// app carries the dependencies initialised before every subcommand.
type app struct {
	opts rootOptions

	cfg     *config.Config
	log     logging.Logger
	reg     *prometheus.Registry
	metrics *metrics.Collector
	runID   string
}

// NewRootCommand builds the valveplan command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "valveplan",
		Short: "Plan time-boxed activation of reward-bearing locations",
		Long: "valveplan reads a network of locations, each with a reward rate, and finds\n" +
			"the activation order that maximises cumulative reward within a time budget,\n" +
			"for one agent or for two agents working in parallel.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.finish()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.opts.configPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&a.opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.opts.logFormat, "log-format", "console", "log format (console, json)")
	pf.StringVar(&a.opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	pf.StringVarP(&a.opts.input, "input", "i", "", "network listing (.txt, .json, optionally .gz/.zst/.lz4); stdin when empty")
	pf.StringVarP(&a.opts.start, "start", "s", config.DefaultStart, "start location")

	cmd.AddCommand(
		newSingleCmd(a),
		newDualCmd(a),
		newStartsCmd(a),
		newTableCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// init loads configuration, applies flag overrides and builds the logger and metrics.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.opts.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = a.opts.metricsFile
	}
	if flags.Changed("input") {
		cfg.Input = a.opts.input
	}
	if flags.Changed("start") {
		cfg.Start = a.opts.start
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	a.reg = prometheus.NewRegistry()
	if a.metrics, err = metrics.New(a.reg); err != nil {
		return fmt.Errorf("cli: metrics: %w", err)
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = log.With(logging.String("run_id", a.runID), logging.String("command", cmd.Name()))

	return nil
}

// finish dumps metrics when requested and flushes the logger.
func (a *app) finish() error {
	if a.log != nil {
		defer func() { _ = a.log.Sync() }()
	}
	if a.cfg == nil || a.cfg.Metrics.File == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.File, a.reg); err != nil {
		return fmt.Errorf("cli: write metrics: %w", err)
	}
	a.log.Debug("metrics written", logging.String("file", a.cfg.Metrics.File))

	return nil
}

// network reads the configured listing, or stdin when no input is set.
func (a *app) network(in io.Reader) (*core.Graph, error) {
	if a.cfg.Input == "" || a.cfg.Input == "-" {
		return ingest.Parse(in, ingest.FormatText)
	}

	return ingest.Open(a.cfg.Input)
}

// planner loads the network and builds a Planner wired to the run's logger and metrics.
func (a *app) planner(cmd *cobra.Command) (*planner.Planner, error) {
	g, err := a.network(cmd.InOrStdin())
	if err != nil {
		a.log.Error("load network", logging.String("input", a.cfg.Input), logging.Err(err))
		return nil, err
	}

	return planner.New(g,
		planner.WithLogger(a.log),
		planner.WithCollector(a.metrics),
	)
}

// budget returns the named flag when set, fallback otherwise.
func budget(cmd *cobra.Command, fallback int) int {
	if cmd.Flags().Changed("budget") {
		v, _ := cmd.Flags().GetInt("budget")
		return v
	}

	return fallback
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
