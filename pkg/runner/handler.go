package runner

import (
	"context"

	"github.com/aretw0/collatz/pkg/domain"
)

// Reporter defines the strategy for presenting results.
// This allows switching between Text (human) and JSON (structured) modes.
type Reporter interface {
	// Report presents the outcome of one input. Errors are write failures only.
	Report(ctx context.Context, result domain.Result) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, result domain.Result) error

func (f ReporterFunc) Report(ctx context.Context, result domain.Result) error {
	return f(ctx, result)
}

// Discard is a Reporter that drops every result.
var Discard Reporter = ReporterFunc(func(context.Context, domain.Result) error { return nil })
