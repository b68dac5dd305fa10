package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/collatz/pkg/adapters/memory"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunResultStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	traj := domain.NewTrajectory(2)
	traj.Append(domain.Step{Kind: domain.StepHalve, Input: 2, Output: 1})
	traj.Finish(1)
	require.NoError(t, store.Save(ctx, traj))

	// Mutating the caller's value must not leak into the store
	traj.Steps[0].Output = 7

	loaded, err := store.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), loaded.Steps[0].Output)

	// Nor mutating a loaded value
	loaded.Peak = 100
	again, err := store.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), again.Peak)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_ListSorted(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for _, n := range []uint64{9, 1, 4} {
		traj := domain.NewTrajectory(n)
		require.NoError(t, store.Save(ctx, traj))
	}

	inputs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 4, 9}, inputs)
}
