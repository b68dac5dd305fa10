package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/collatz"
	"github.com/aretw0/collatz/internal/config"
	"github.com/aretw0/collatz/internal/logging"
	"github.com/aretw0/collatz/internal/presentation/tui"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/observability"
	"github.com/aretw0/collatz/pkg/ports"
	"github.com/aretw0/collatz/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// App bundles everything a subcommand needs, built once from the config.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Engine   *collatz.Engine
	Store    ports.ResultStore
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	closeStore func() error
}

// NewApp wires logger, metrics, engine and store from cfg.
// A nil logOut logs to stderr.
func NewApp(cfg config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)
	if logOut != nil {
		logger = logging.NewWithWriter(logOut, level)
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	store, closer, err := newStore(cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	engine := collatz.New(
		collatz.WithMaxSteps(cfg.MaxSteps),
		collatz.WithLogger(logger),
		collatz.WithLifecycleHooks(metrics.Hooks()),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Engine:     engine,
		Store:      store,
		Metrics:    metrics,
		Registry:   reg,
		closeStore: closer,
	}, nil
}

// Close releases the store connection.
func (a *App) Close() error {
	return a.closeStore()
}

// RecordResult feeds results the evaluator never saw (zero inputs and cache
// hits) into the metrics.
func (a *App) RecordResult(_ context.Context, result domain.Result) {
	switch {
	case result.Outcome() == domain.OutcomeIndivisible:
		a.Metrics.RecordIndivisible()
	case result.Cached:
		a.Metrics.RecordCached(result.Trajectory)
	}
}

// NewReporter builds the reporter selected by the config.
func (a *App) NewReporter(out io.Writer, showSteps bool) runner.Reporter {
	if a.Config.Format == config.FormatJSON {
		return runner.NewJSONReporter(out, showSteps, a.Config.ShowResult)
	}
	opts := []runner.TextReporterOption{
		runner.WithShowSteps(showSteps),
		runner.WithShowResult(a.Config.ShowResult),
	}
	if a.Config.Color {
		if styler := tui.NewStyler(out); styler != nil {
			opts = append(opts, runner.WithStyler(styler))
		}
	}
	return runner.NewTextReporter(out, opts...)
}

// RunBatch evaluates inputs in order and reports each one to out.
// With Config.Summary set, the run summary is rendered afterwards.
func (a *App) RunBatch(ctx context.Context, inputs []uint64, out io.Writer, showSteps bool) (*runner.Summary, error) {
	r := runner.NewRunner(
		runner.WithReporter(a.NewReporter(out, showSteps)),
		runner.WithStore(a.Store),
		runner.WithLogger(a.Logger),
		runner.WithResultHook(a.RecordResult),
	)

	summary, err := r.Run(ctx, a.Engine, inputs)
	if err != nil {
		return summary, err
	}

	if a.Config.Summary && a.Config.Format == config.FormatText {
		if err := tui.RenderMarkdown(out, summary.Markdown(), tui.IsTerminal(out)); err != nil {
			return summary, fmt.Errorf("render summary: %w", err)
		}
	}
	return summary, nil
}
