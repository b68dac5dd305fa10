package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/collatz/internal/logging"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/ports"
	"github.com/google/uuid"
)

// Runner drives evaluations over a batch of inputs and reports each result.
// A failing input never stops the batch; only reporter errors and cancellation do.
type Runner struct {
	// Reporter presents results. If nil, a TextReporter on stdout is used.
	Reporter Reporter

	// Store caches trajectories across runs. If nil, every input is evaluated.
	Store ports.ResultStore

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// RunID identifies the run in logs and the summary.
	RunID string

	onResult func(context.Context, domain.Result)
}

// NewRunner creates a Runner with a fresh run ID.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
		RunID:  uuid.New().String(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Reporter == nil {
		r.Reporter = NewTextReporter(nil)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run evaluates every input in order.
// The returned summary covers the inputs processed before any early exit.
func (r *Runner) Run(ctx context.Context, eval ports.Evaluator, inputs []uint64) (*Summary, error) {
	summary := &Summary{RunID: r.RunID}
	start := time.Now()
	defer func() { summary.Duration = time.Since(start) }()

	logger := r.Logger.With("run_id", r.RunID)
	logger.Info("run started", "inputs", len(inputs), "max_steps", eval.MaxSteps())

	for _, n := range inputs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := r.Process(ctx, eval, n)
		if isCancellation(result.Err) {
			return summary, result.Err
		}

		summary.observe(result)
		if r.onResult != nil {
			r.onResult(ctx, result)
		}
		if err := r.Reporter.Report(ctx, result); err != nil {
			return summary, fmt.Errorf("report error: %w", err)
		}
	}

	logger.Info("run finished",
		"evaluated", summary.Evaluated,
		"depth_exceeded", summary.DepthExceeded,
		"failed", summary.Failed,
		"cache_hits", summary.CacheHits,
	)
	return summary, nil
}

// Process evaluates a single input, consulting and filling the store when configured.
// Zero short-circuits to an indivisible result. Failures are returned inside the result.
func (r *Runner) Process(ctx context.Context, eval ports.Evaluator, n uint64) domain.Result {
	if n == 0 {
		return domain.Result{Input: 0}
	}

	if traj, ok := r.cached(ctx, eval, n); ok {
		return domain.Result{Input: n, Trajectory: traj, Cached: true}
	}

	traj, err := r.evaluate(ctx, eval, n)
	if err != nil {
		if errors.Is(err, domain.ErrDepthExceeded) {
			r.Logger.Warn("step budget exceeded", "input", n, "max_steps", eval.MaxSteps())
		} else if !isCancellation(err) {
			r.Logger.Error("evaluation failed", "input", n, "error", err)
		}
		return domain.Result{Input: n, Err: err}
	}

	if r.Store != nil {
		if err := r.Store.Save(ctx, traj); err != nil {
			r.Logger.Warn("failed to cache trajectory", "input", n, "error", err)
		}
	}

	r.Logger.Debug("input evaluated", "input", n, "transitions", traj.Transitions())
	return domain.Result{Input: n, Trajectory: traj}
}

// cached returns a stored trajectory when it is complete and fits the current budget.
func (r *Runner) cached(ctx context.Context, eval ports.Evaluator, n uint64) (*domain.Trajectory, bool) {
	if r.Store == nil {
		return nil, false
	}
	traj, err := r.Store.Load(ctx, n)
	if err != nil {
		if !errors.Is(err, domain.ErrResultNotFound) {
			r.Logger.Warn("result store lookup failed", "input", n, "error", err)
		}
		return nil, false
	}
	if !traj.Complete() || traj.Transitions() > eval.MaxSteps() {
		return nil, false
	}
	return traj, true
}

// evaluate shields the batch from panics inside an Evaluator implementation.
func (r *Runner) evaluate(ctx context.Context, eval ports.Evaluator, n uint64) (traj *domain.Trajectory, err error) {
	defer func() {
		if p := recover(); p != nil {
			traj = nil
			err = fmt.Errorf("panic during evaluation: %v", p)
		}
	}()
	return eval.Evaluate(ctx, n)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
