package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tutte/cache"
	"github.com/katalvlaran/tutte/internal/config"
	"github.com/katalvlaran/tutte/internal/logging"
	"github.com/katalvlaran/tutte/internal/runner"
	"github.com/katalvlaran/tutte/metrics"
)

// app is the state shared by the subcommands, set up in PersistentPreRunE.
type app struct {
	cfg      config.Config
	zlog     *zap.Logger
	log      logr.Logger
	store    cache.Store
	registry *prometheus.Registry
	runner   *runner.Runner
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "tutte",
		Short: "Tutte polynomials of multigraphs by deletion-contraction",
		Long: `tutte computes the Tutte polynomial T(G; x, y) of undirected multigraphs
from the built-in families (cycle, wheel, grid, dipole, ...), evaluates it
and derives counting invariants from it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("env-file", "", ".env file with TUTTE_* overrides")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "", "log format: json or console")
	pf.Int64("budget", 0, "node budget of one computation (0 = unlimited)")
	pf.Int("workers", 1, "engine workers")
	pf.Duration("timeout", 0, "deadline of one computation (0 = none)")
	pf.Int("max-vertices", 0, "largest family accepted, in vertices (0 = no cap)")
	pf.Int("max-edges", 0, "largest family accepted, in edges (0 = no cap)")
	pf.String("cache", "", "result cache: none, memory, badger, redis")

	rootCmd.AddCommand(
		newPolyCmd(a),
		newEvalCmd(a),
		newInvariantsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return rootCmd, a
}

// setup resolves the configuration (flags win) and builds the logger,
// cache, metrics and runner.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	envFile, _ := flags.GetString("env-file")

	cfg, err := config.Load(path, envFile)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("budget") {
		cfg.Budget, _ = flags.GetInt64("budget")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("max-vertices") {
		cfg.MaxVertices, _ = flags.GetInt("max-vertices")
	}
	if flags.Changed("max-edges") {
		cfg.MaxEdges, _ = flags.GetInt("max-edges")
	}
	if flags.Changed("cache") {
		cfg.Cache.Kind, _ = flags.GetString("cache")
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.zlog, err = logging.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = logging.Logr(a.zlog)

	if a.store, err = cache.Open(cfg.Cache); err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	col, err := metrics.New(a.registry)
	if err != nil {
		return err
	}

	a.runner = &runner.Runner{
		Store:       a.store,
		Metrics:     col,
		Options:     cfg.EngineOptions(a.log),
		Timeout:     cfg.Timeout,
		Log:         a.log,
		MaxVertices: cfg.MaxVertices,
		MaxEdges:    cfg.MaxEdges,
	}
	a.log.V(1).Info("configuration resolved",
		"budget", cfg.Budget, "workers", cfg.Workers, "timeout", cfg.Timeout, "cache", cfg.Cache.Kind)

	return nil
}

// close releases the cache and flushes the logger.
func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Error(err, "closing cache")
		}
	}
	if a.zlog != nil {
		_ = a.zlog.Sync()
	}
}
