package ports

import (
	"context"

	"github.com/aretw0/collatz/pkg/domain"
)

// ResultStore defines the interface for persisting evaluated trajectories.
// Trajectories are keyed by their input, so a store doubles as a result cache.
type ResultStore interface {
	// Save persists a complete trajectory under its input. A nil trajectory is an error.
	Save(ctx context.Context, traj *domain.Trajectory) error

	// Load retrieves the trajectory for an input.
	// Returns domain.ErrResultNotFound if it was never saved.
	Load(ctx context.Context, input uint64) (*domain.Trajectory, error)

	// Delete removes the trajectory for an input. Deleting a missing entry is not an error.
	Delete(ctx context.Context, input uint64) error

	// List returns the inputs currently stored.
	List(ctx context.Context) ([]uint64, error)
}
