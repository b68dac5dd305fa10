package runtime

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/aretw0/collatz/internal/logging"
	"github.com/aretw0/collatz/pkg/domain"
)

// ctxCheckInterval is how many steps run between context checks.
const ctxCheckInterval = 1024

// Evaluator is the core trajectory engine.
type Evaluator struct {
	maxSteps int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithMaxSteps sets the transition budget. Non-positive values keep the default.
func WithMaxSteps(n int) EvaluatorOption {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EvaluatorOption {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEvaluator creates an evaluator with the default budget.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		maxSteps: domain.DefaultMaxSteps,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxSteps returns the configured transition budget.
func (e *Evaluator) MaxSteps() int {
	return e.maxSteps
}

// Next applies a single Collatz step to n (n > 1).
func Next(n uint64) (domain.Step, error) {
	if n%2 == 0 {
		return domain.Step{Kind: domain.StepHalve, Input: n, Output: n / 2}, nil
	}
	if n > (math.MaxUint64-1)/3 {
		return domain.Step{}, &domain.OverflowError{Input: n, Value: n}
	}
	return domain.Step{Kind: domain.StepTriple, Input: n, Output: 3*n + 1}, nil
}

// Evaluate walks the trajectory of n down to 1.
// It fails with *domain.DepthExceededError once more than MaxSteps transitions would be
// needed, and with *domain.OverflowError if a value leaves the uint64 range.
func (e *Evaluator) Evaluate(ctx context.Context, n uint64) (*domain.Trajectory, error) {
	if n == 0 {
		return nil, &domain.InvalidInputError{Value: "0", Reason: "zero has no trajectory"}
	}

	start := time.Now()
	traj := domain.NewTrajectory(n)
	e.emitStart(ctx, n, start)

	cur := n
	for cur != 1 {
		if traj.Transitions() >= e.maxSteps {
			err := &domain.DepthExceededError{Input: n, Budget: e.maxSteps, Partial: traj}
			e.emitEnd(ctx, traj, start, err)
			return nil, err
		}
		if len(traj.Steps)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				e.emitEnd(ctx, traj, start, err)
				return nil, err
			}
		}

		step, err := Next(cur)
		if err != nil {
			err = &domain.OverflowError{Input: n, Value: cur}
			e.emitEnd(ctx, traj, start, err)
			return nil, err
		}
		traj.Append(step)
		e.emitStep(ctx, n, step, len(traj.Steps)-1)
		cur = step.Output
	}

	traj.Finish(cur)
	e.emitStep(ctx, n, traj.Steps[len(traj.Steps)-1], len(traj.Steps)-1)
	e.emitEnd(ctx, traj, start, nil)

	e.logger.Debug("trajectory evaluated",
		"input", n,
		"transitions", traj.Transitions(),
		"peak", traj.Peak,
	)
	return traj, nil
}

func (e *Evaluator) emitStart(ctx context.Context, n uint64, at time.Time) {
	if e.hooks.OnEvaluateStart == nil {
		return
	}
	e.hooks.OnEvaluateStart(ctx, &domain.EvaluationEvent{
		EventBase: domain.EventBase{Timestamp: at, Type: domain.EventEvaluateStart, Input: n},
		Peak:      n,
	})
}

func (e *Evaluator) emitStep(ctx context.Context, n uint64, step domain.Step, index int) {
	if e.hooks.OnStep == nil {
		return
	}
	e.hooks.OnStep(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep, Input: n},
		Step:      step,
		Index:     index,
	})
}

func (e *Evaluator) emitEnd(ctx context.Context, traj *domain.Trajectory, start time.Time, err error) {
	if e.hooks.OnEvaluateEnd == nil {
		return
	}
	outcome := domain.Result{Input: traj.Input, Trajectory: traj, Err: err}.Outcome()
	e.hooks.OnEvaluateEnd(ctx, &domain.EvaluationEvent{
		EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventEvaluateEnd, Input: traj.Input},
		Outcome:     outcome,
		Transitions: traj.Transitions(),
		Peak:        traj.Peak,
		Duration:    time.Since(start),
		Err:         err,
	})
}
