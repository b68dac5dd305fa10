package ports

import (
	"context"
	"testing"

	"github.com/aretw0/collatz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		traj := contractTrajectory()

		err := store.Save(ctx, traj)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, traj.Input)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, traj.Input, loaded.Input)
		assert.Equal(t, traj.Terminal, loaded.Terminal)
		assert.Equal(t, traj.Peak, loaded.Peak)
		assert.Equal(t, traj.Log(), loaded.Log())
	})

	t.Run("Save Nil", func(t *testing.T) {
		assert.Error(t, store.Save(ctx, nil), "Save should reject a nil trajectory")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, 999_999_991)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		traj := contractTrajectory()
		require.NoError(t, store.Save(ctx, traj))

		changed := traj.Clone()
		changed.Peak = 42
		require.NoError(t, store.Save(ctx, changed))

		loaded, err := store.Load(ctx, traj.Input)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), loaded.Peak)
	})

	t.Run("Delete", func(t *testing.T) {
		traj := contractTrajectory()
		require.NoError(t, store.Save(ctx, traj))

		err := store.Delete(ctx, traj.Input)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, traj.Input)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")

		assert.NoError(t, store.Delete(ctx, traj.Input), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		a := domain.NewTrajectory(2)
		a.Append(domain.Step{Kind: domain.StepHalve, Input: 2, Output: 1})
		a.Finish(1)
		b := domain.NewTrajectory(1)
		b.Finish(1)

		require.NoError(t, store.Save(ctx, a))
		require.NoError(t, store.Save(ctx, b))
		defer func() {
			_ = store.Delete(ctx, a.Input)
			_ = store.Delete(ctx, b.Input)
		}()

		inputs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, inputs, uint64(2))
		assert.Contains(t, inputs, uint64(1))
	})
}

// contractTrajectory is the trajectory of 5: 5 -> 16 -> 8 -> 4 -> 2 -> 1.
func contractTrajectory() *domain.Trajectory {
	traj := domain.NewTrajectory(5)
	values := []uint64{5, 16, 8, 4, 2, 1}
	for i := 0; i < len(values)-1; i++ {
		kind := domain.StepHalve
		if values[i]%2 == 1 {
			kind = domain.StepTriple
		}
		traj.Append(domain.Step{Kind: kind, Input: values[i], Output: values[i+1]})
	}
	traj.Finish(1)
	return traj
}
