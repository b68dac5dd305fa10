package domain

import "fmt"

// StepKind classifies a trajectory entry.
type StepKind string

const (
	StepHalve    StepKind = "halve"    // n is even, n -> n/2
	StepTriple   StepKind = "triple"   // n is odd, n -> 3n+1
	StepTerminal StepKind = "terminal" // n == 1, end of trajectory
)

// Step is a single entry of a trajectory log.
type Step struct {
	Kind   StepKind `json:"kind"`
	Input  uint64   `json:"input"`
	Output uint64   `json:"output"`
}

// String renders the human-readable log line for the step.
func (s Step) String() string {
	switch s.Kind {
	case StepHalve:
		return fmt.Sprintf("%d is divisible by 2 → %d", s.Input, s.Output)
	case StepTriple:
		return fmt.Sprintf("%d is not divisible by 2 → %d", s.Input, s.Output)
	case StepTerminal:
		return fmt.Sprintf("terminal: %d", s.Input)
	default:
		return fmt.Sprintf("%d -> %d (%s)", s.Input, s.Output, s.Kind)
	}
}

// Trajectory is the ordered, append-only log of an evaluation.
// A complete trajectory ends with exactly one StepTerminal entry.
type Trajectory struct {
	Input    uint64 `json:"input"`
	Terminal uint64 `json:"terminal"`
	Peak     uint64 `json:"peak"`
	Steps    []Step `json:"steps"`
}

// NewTrajectory creates an empty trajectory for the given input.
func NewTrajectory(input uint64) *Trajectory {
	return &Trajectory{
		Input: input,
		Peak:  input,
		Steps: []Step{},
	}
}

// Append records a transition and tracks the highest value reached.
func (t *Trajectory) Append(step Step) {
	t.Steps = append(t.Steps, step)
	if step.Output > t.Peak {
		t.Peak = step.Output
	}
}

// Finish appends the terminal entry.
func (t *Trajectory) Finish(value uint64) {
	t.Steps = append(t.Steps, Step{Kind: StepTerminal, Input: value, Output: value})
	t.Terminal = value
}

// Complete reports whether the trajectory ends with its terminal entry.
func (t *Trajectory) Complete() bool {
	n := len(t.Steps)
	return n > 0 && t.Steps[n-1].Kind == StepTerminal
}

// Transitions returns the number of Collatz steps taken, excluding the terminal entry.
func (t *Trajectory) Transitions() int {
	if t.Complete() {
		return len(t.Steps) - 1
	}
	return len(t.Steps)
}

// Log returns the rendered log lines in order.
func (t *Trajectory) Log() []string {
	lines := make([]string, len(t.Steps))
	for i, s := range t.Steps {
		lines[i] = s.String()
	}
	return lines
}

// Clone returns a deep copy so stores can hand out isolated values.
func (t *Trajectory) Clone() *Trajectory {
	if t == nil {
		return nil
	}
	c := *t
	c.Steps = make([]Step, len(t.Steps))
	copy(c.Steps, t.Steps)
	return &c
}
