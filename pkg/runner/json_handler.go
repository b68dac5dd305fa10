package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/collatz/pkg/domain"
)

// JSONRecord is one NDJSON line emitted by JSONReporter.
type JSONRecord struct {
	Input       uint64         `json:"input"`
	Outcome     domain.Outcome `json:"outcome"`
	Terminal    *uint64        `json:"terminal,omitempty"`
	Transitions *int           `json:"transitions,omitempty"`
	Peak        *uint64        `json:"peak,omitempty"`
	Log         []string       `json:"log,omitempty"`
	Error       string         `json:"error,omitempty"`
	Cached      bool           `json:"cached,omitempty"`
}

// NewJSONRecord flattens a result. Steps are included only when withSteps is set.
func NewJSONRecord(result domain.Result, withSteps bool) JSONRecord {
	rec := JSONRecord{
		Input:   result.Input,
		Outcome: result.Outcome(),
		Cached:  result.Cached,
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
	}
	if traj := result.Trajectory; traj != nil {
		terminal, transitions, peak := traj.Terminal, traj.Transitions(), traj.Peak
		rec.Terminal = &terminal
		rec.Transitions = &transitions
		rec.Peak = &peak
		if withSteps {
			rec.Log = traj.Log()
		}
	}
	return rec
}

// JSONReporter implements the Reporter interface for structured JSON-Lines output.
// With ShowResult off, indivisible records are dropped and success records
// are written only when they carry steps. Diagnostics are always written.
type JSONReporter struct {
	Writer     io.Writer
	Encoder    *json.Encoder
	ShowSteps  bool
	ShowResult bool
}

// NewJSONReporter creates a reporter for NDJSON output.
func NewJSONReporter(w io.Writer, showSteps, showResult bool) *JSONReporter {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONReporter{
		Writer:     w,
		Encoder:    enc,
		ShowSteps:  showSteps,
		ShowResult: showResult,
	}
}

func (r *JSONReporter) Report(ctx context.Context, result domain.Result) error {
	if !r.ShowResult {
		switch result.Outcome() {
		case domain.OutcomeIndivisible:
			return nil
		case domain.OutcomeSuccess:
			if !r.ShowSteps {
				return nil
			}
		}
	}
	return r.Encoder.Encode(NewJSONRecord(result, r.ShowSteps))
}
