package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aretw0/collatz/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[uint64]*domain.Trajectory
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[uint64]*domain.Trajectory),
	}
}

// Save persists the trajectory in memory.
func (s *Store) Save(ctx context.Context, traj *domain.Trajectory) error {
	if traj == nil {
		return errors.New("trajectory cannot be nil")
	}
	// Deep copy to ensure isolation, similar to serialization
	copied := traj.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[traj.Input] = copied
	return nil
}

// Load retrieves the trajectory from memory.
func (s *Store) Load(ctx context.Context, input uint64) (*domain.Trajectory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	traj, ok := s.data[input]
	if !ok {
		return nil, domain.ErrResultNotFound
	}

	// Copy on read so callers can't mutate store state by pointer
	return traj.Clone(), nil
}

// Delete removes the trajectory.
func (s *Store) Delete(ctx context.Context, input uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, input)
	return nil
}

// List returns stored inputs in ascending order.
func (s *Store) List(ctx context.Context) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inputs := make([]uint64, 0, len(s.data))
	for input := range s.data {
		inputs = append(inputs, input)
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i] < inputs[j] })
	return inputs, nil
}

// Len returns the number of stored trajectories.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
