package ports

import (
	"context"

	"github.com/aretw0/collatz/pkg/domain"
)

// Evaluator computes trajectories without keeping state between calls.
// This is the primary interface used by the runner and the adapters (HTTP, MCP).
type Evaluator interface {
	// Evaluate walks n down to 1, failing with domain.ErrDepthExceeded past the budget.
	Evaluate(ctx context.Context, n uint64) (*domain.Trajectory, error)

	// MaxSteps returns the transition budget applied to every evaluation.
	MaxSteps() int
}
