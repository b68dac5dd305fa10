package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/collatz/pkg/domain"
)

// Styler decorates a line before it is written (e.g. terminal colours).
type Styler func(outcome domain.Outcome, line string) string

// TextReporter implements the human-readable line format.
type TextReporter struct {
	Writer     io.Writer
	ShowSteps  bool
	ShowResult bool
	Styler     Styler
}

// TextReporterOption defines configuration for TextReporter.
type TextReporterOption func(*TextReporter)

// WithShowSteps toggles printing every trajectory entry.
func WithShowSteps(show bool) TextReporterOption {
	return func(r *TextReporter) {
		r.ShowSteps = show
	}
}

// WithShowResult toggles printing the final-number line.
func WithShowResult(show bool) TextReporterOption {
	return func(r *TextReporter) {
		r.ShowResult = show
	}
}

// WithStyler configures line decoration.
func WithStyler(s Styler) TextReporterOption {
	return func(r *TextReporter) {
		r.Styler = s
	}
}

// NewTextReporter creates a reporter for standard text output.
// Results are shown and steps hidden unless configured otherwise.
func NewTextReporter(w io.Writer, opts ...TextReporterOption) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	r := &TextReporter{
		Writer:     w,
		ShowResult: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TextReporter) Report(ctx context.Context, result domain.Result) error {
	outcome := result.Outcome()
	switch outcome {
	case domain.OutcomeIndivisible:
		// Zero has no trajectory, so there are never step lines to print.
		if r.ShowResult {
			return r.line(outcome, fmt.Sprintf("%8d is indivisible", result.Input))
		}
		return nil

	case domain.OutcomeDepthExceeded:
		budget := 0
		var depthErr *domain.DepthExceededError
		if errors.As(result.Err, &depthErr) {
			budget = depthErr.Budget
		}
		return r.line(outcome, fmt.Sprintf(
			"Depth exceeded with number %d (budget %d steps), increase max_steps",
			result.Input, budget))

	case domain.OutcomeFailed:
		return r.line(outcome, fmt.Sprintf("Unexpected error with number %d: %v", result.Input, result.Err))
	}

	traj := result.Trajectory
	if r.ShowResult {
		if err := r.line(outcome, fmt.Sprintf("%8d led to final number: %d", result.Input, traj.Terminal)); err != nil {
			return err
		}
	}
	if r.ShowSteps {
		for _, l := range traj.Log() {
			if err := r.line(outcome, l); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *TextReporter) line(outcome domain.Outcome, s string) error {
	if r.Styler != nil {
		s = r.Styler(outcome, s)
	}
	_, err := fmt.Fprintln(r.Writer, s)
	return err
}
