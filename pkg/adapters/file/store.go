package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/collatz/pkg/domain"
)

// Store implements ports.ResultStore using the local filesystem.
// It stores one trajectory per JSON file in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".collatz/results".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".collatz", "results")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(input uint64) string {
	return filepath.Join(s.BasePath, strconv.FormatUint(input, 10)+".json")
}

// Save persists the trajectory to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, traj *domain.Trajectory) error {
	if traj == nil {
		return fmt.Errorf("trajectory cannot be nil")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure results directory: %w", err)
	}

	data, err := json.MarshalIndent(traj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trajectory: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-*.json.part")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	destPath := s.path(traj.Input)
	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing result file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load retrieves the trajectory from its JSON file.
func (s *Store) Load(ctx context.Context, input uint64) (*domain.Trajectory, error) {
	data, err := os.ReadFile(s.path(input))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	var traj domain.Trajectory
	if err := json.Unmarshal(data, &traj); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trajectory: %w", err)
	}
	return &traj, nil
}

// Delete removes the result file.
func (s *Store) Delete(ctx context.Context, input uint64) error {
	err := os.Remove(s.path(input))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete result file: %w", err)
	}
	return nil
}

// List returns all stored inputs in ascending order.
func (s *Store) List(ctx context.Context) ([]uint64, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []uint64{}, nil
		}
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	inputs := []uint64{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		input, err := strconv.ParseUint(strings.TrimSuffix(name, ".json"), 10, 64)
		if err != nil {
			continue // not ours
		}
		inputs = append(inputs, input)
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i] < inputs[j] })
	return inputs, nil
}
