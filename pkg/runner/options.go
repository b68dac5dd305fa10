package runner

import (
	"context"
	"log/slog"

	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithReporter configures how results are presented.
func WithReporter(reporter Reporter) Option {
	return func(r *Runner) {
		r.Reporter = reporter
	}
}

// WithStore configures the ResultStore used as a trajectory cache.
func WithStore(store ports.ResultStore) Option {
	return func(r *Runner) {
		r.Store = store
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithRunID sets the identifier recorded in the summary and logs.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.RunID = id
	}
}

// WithResultHook registers a callback invoked for every result before it is reported.
func WithResultHook(fn func(context.Context, domain.Result)) Option {
	return func(r *Runner) {
		r.onResult = fn
	}
}
