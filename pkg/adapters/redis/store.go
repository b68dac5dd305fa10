package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aretw0/collatz/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "collatz:result:"

// Store implements ports.ResultStore using Redis.
// Each trajectory is a JSON string; a ZSET index keyed by expiry supports List.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for cached trajectories.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(input uint64) string {
	return s.prefix + strconv.FormatUint(input, 10)
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Save persists the trajectory to Redis.
func (s *Store) Save(ctx context.Context, traj *domain.Trajectory) error {
	if traj == nil {
		return fmt.Errorf("trajectory cannot be nil")
	}
	data, err := json.Marshal(traj)
	if err != nil {
		return fmt.Errorf("failed to marshal trajectory: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(traj.Input), data, s.ttl)

	// Score = expiry time; entries without TTL get a far-future score.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: strconv.FormatUint(traj.Input, 10),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the trajectory from Redis.
func (s *Store) Load(ctx context.Context, input uint64) (*domain.Trajectory, error) {
	val, err := s.client.Get(ctx, s.key(input)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var traj domain.Trajectory
	if err := json.Unmarshal(val, &traj); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trajectory: %w", err)
	}
	return &traj, nil
}

// Delete removes the trajectory and its index entry.
func (s *Store) Delete(ctx context.Context, input uint64) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(input))
	pipe.ZRem(ctx, s.indexKey(), strconv.FormatUint(input, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// List returns stored inputs, lazily pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]uint64, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired results: %w", err)
	}

	members, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	inputs := make([]uint64, 0, len(members))
	for _, m := range members {
		input, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
