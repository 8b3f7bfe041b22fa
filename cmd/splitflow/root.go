package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/splitflow/internal/config"
	"github.com/katalvlaran/splitflow/internal/logging"
	"github.com/katalvlaran/splitflow/internal/metrics"
	"github.com/katalvlaran/splitflow/settle"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string

	v        *viper.Viper
	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
	metrics  *metrics.Metrics
}

// flagKeys binds command-line flags to configuration keys. Flags missing
// from the running command are skipped.
var flagKeys = map[string]string{
	"log-level":           "log.level",
	"log-format":          "log.format",
	"log-file":            "log.file",
	"metrics-textfile":    "metrics.textfile",
	"strategy":            "settle.strategy",
	"minor-unit-exponent": "settle.minor_unit_exponent",
	"max-participants":    "settle.max_participants",
	"max-collapses":       "settle.max_collapses",
	"concurrency":         "settle.concurrency",
}

// newRootCmd returns the command tree and the app state its subcommands
// share. Run it through execute so teardown happens on failure too.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "splitflow",
		Short: "Settle group debts with as few payments as possible",
		Long: `splitflow reads a ledger of who owes whom, loads it into a flow network
and prints a shorter list of payments that leaves everybody's balance intact.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (env overrides use the SPLITFLOW_ prefix)")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "json or text")
	pf.String("log-file", "", "write logs to this file with size-based rotation")
	pf.String("metrics-textfile", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newSettleCmd(a),
		newMaxFlowCmd(a),
		newGenerateCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// execute runs root and then tears a down. Cobra skips post-run hooks when
// RunE fails, and the error metrics of a failed run still belong in the
// textfile.
func execute(root *cobra.Command, a *app) error {
	err := root.Execute()
	if terr := a.teardown(); terr != nil {
		err = errors.Join(err, terr)
	}
	return err
}

// setup loads the configuration, then builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v = config.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, a.closeLog, err = logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.metrics = metrics.New(cfg.Metrics)
	a.metrics.SetBuildInfo(version)

	a.log.Debug("configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("file", a.configPath),
		slog.String("strategy", cfg.Settle.Strategy))
	return nil
}

// teardown writes the metrics textfile and closes the log sink. It only
// releases what setup got to build.
func (a *app) teardown() error {
	var errs []error
	if a.metrics != nil {
		if path := a.cfg.Metrics.Textfile; path != "" {
			if err := a.metrics.WriteTextfile(path); err != nil {
				errs = append(errs, err)
			} else {
				a.log.Debug("metrics written", slog.String("path", path))
			}
		}
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
		a.closeLog = nil
	}
	return errors.Join(errs...)
}

// engine builds a settle.Engine from the loaded configuration.
func (a *app) engine() (*settle.Engine, error) {
	s := a.cfg.Settle
	strategy, err := settle.ParseStrategy(s.Strategy)
	if err != nil {
		return nil, err
	}
	return settle.New(
		settle.WithStrategy(strategy),
		settle.WithLogger(a.log),
		settle.WithRecorder(a.metrics),
		settle.WithMinorUnitExponent(s.MinorUnitExponent),
		settle.WithMaxParticipants(s.MaxParticipants),
		settle.WithMaxCollapses(s.MaxCollapses),
		settle.WithConcurrency(s.Concurrency),
	), nil
}
