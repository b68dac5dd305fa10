package domain

import "errors"

// Outcome classifies how a batch item ended.
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeIndivisible   Outcome = "indivisible"
	OutcomeDepthExceeded Outcome = "depth_exceeded"
	OutcomeFailed        Outcome = "failed"
)

// Result is what the runner hands to a reporter for one input.
type Result struct {
	Input      uint64
	Trajectory *Trajectory // nil unless Outcome == OutcomeSuccess
	Err        error
	Cached     bool
}

// Outcome derives the classification from the result fields.
func (r Result) Outcome() Outcome {
	switch {
	case r.Err != nil && errors.Is(r.Err, ErrDepthExceeded):
		return OutcomeDepthExceeded
	case r.Err != nil:
		return OutcomeFailed
	case r.Input == 0:
		return OutcomeIndivisible
	default:
		return OutcomeSuccess
	}
}
