package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a value is not a valid trajectory input.
var ErrInvalidInput = errors.New("invalid input")

// ErrDepthExceeded is returned when an evaluation exhausts its step budget.
var ErrDepthExceeded = errors.New("step budget exceeded")

// ErrOverflow is returned when 3n+1 does not fit in 64 bits.
var ErrOverflow = errors.New("integer overflow")

// ErrResultNotFound is returned when a trajectory cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")

// InvalidInputError names the offending value.
type InvalidInputError struct {
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%q is not a valid input: %s", e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// DepthExceededError carries the partial trajectory of an abandoned evaluation.
type DepthExceededError struct {
	Input   uint64
	Budget  int
	Partial *Trajectory
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("input %d: %s after %d steps", e.Input, ErrDepthExceeded, e.Budget)
}

func (e *DepthExceededError) Unwrap() error { return ErrDepthExceeded }

// OverflowError reports the value whose successor could not be represented.
type OverflowError struct {
	Input uint64
	Value uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("input %d: %s computing 3*%d+1", e.Input, ErrOverflow, e.Value)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }
