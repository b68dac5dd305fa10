package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/collatz/pkg/adapters/redis"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func trajectoryOfTwo() *domain.Trajectory {
	traj := domain.NewTrajectory(2)
	traj.Append(domain.Step{Kind: domain.StepHalve, Input: 2, Output: 1})
	traj.Finish(1)
	return traj
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunResultStoreContract(t, store)
}

func TestRedisStore_Ping(t *testing.T) {
	store, _ := newStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, trajectoryOfTwo()))

	inputs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, inputs, uint64(2))

	// Fast forward miniredis for key expiration
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrResultNotFound)

	// Lazy index cleanup compares against time.Now(), so real time has to pass too
	time.Sleep(1200 * time.Millisecond)

	inputs, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, trajectoryOfTwo()))

	assert.True(t, mr.Exists("custom:app:2"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	inputs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, inputs)
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, store.Save(context.Background(), trajectoryOfTwo()))
	assert.True(t, mr.Exists(redis.DefaultPrefix+"2"))
}

func TestRedisStore_ConnectionError(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, err := store.Load(context.Background(), 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrResultNotFound)
}
