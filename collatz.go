package collatz

import (
	"context"
	_ "embed"
	"log/slog"

	"github.com/aretw0/collatz/internal/logging"
	"github.com/aretw0/collatz/internal/runtime"
	"github.com/aretw0/collatz/pkg/domain"
)

// Version is the release version of the module.
//
//go:embed VERSION
var Version string

// Engine is the high-level entry point for the collatz library.
// It wraps the internal evaluator and provides a simplified API for consumers.
type Engine struct {
	evaluator *runtime.Evaluator
	maxSteps  int
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithMaxSteps sets the per-evaluation transition budget.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{maxSteps: domain.DefaultMaxSteps}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.evaluator = runtime.NewEvaluator(
		runtime.WithMaxSteps(eng.maxSteps),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	return eng
}

// Evaluate computes the trajectory of n down to 1.
func (e *Engine) Evaluate(ctx context.Context, n uint64) (*domain.Trajectory, error) {
	return e.evaluator.Evaluate(ctx, n)
}

// MaxSteps returns the effective transition budget.
func (e *Engine) MaxSteps() int {
	return e.evaluator.MaxSteps()
}
