package runner

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/collatz/pkg/domain"
)

// Summary aggregates the outcomes of a batch run.
type Summary struct {
	RunID         string        `json:"run_id"`
	Evaluated     int           `json:"evaluated"`
	Succeeded     int           `json:"succeeded"`
	Indivisible   int           `json:"indivisible"`
	DepthExceeded int           `json:"depth_exceeded"`
	Failed        int           `json:"failed"`
	CacheHits     int           `json:"cache_hits"`
	Duration      time.Duration `json:"duration"`

	LongestInput       uint64 `json:"longest_input"`
	LongestTransitions int    `json:"longest_transitions"`
	PeakInput          uint64 `json:"peak_input"`
	PeakValue          uint64 `json:"peak_value"`
}

func (s *Summary) observe(result domain.Result) {
	s.Evaluated++
	if result.Cached {
		s.CacheHits++
	}

	switch result.Outcome() {
	case domain.OutcomeIndivisible:
		s.Indivisible++
	case domain.OutcomeDepthExceeded:
		s.DepthExceeded++
	case domain.OutcomeFailed:
		s.Failed++
	case domain.OutcomeSuccess:
		s.Succeeded++
		traj := result.Trajectory
		if n := traj.Transitions(); n > s.LongestTransitions || s.Succeeded == 1 {
			s.LongestTransitions = n
			s.LongestInput = result.Input
		}
		if traj.Peak > s.PeakValue {
			s.PeakValue = traj.Peak
			s.PeakInput = result.Input
		}
	}
}

// Markdown renders the summary as a Markdown table.
func (s *Summary) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Run %s\n\n", s.RunID)
	b.WriteString("| Metric | Value |\n|---|---|\n")
	rows := []struct {
		k string
		v any
	}{
		{"Evaluated", s.Evaluated},
		{"Succeeded", s.Succeeded},
		{"Indivisible", s.Indivisible},
		{"Depth exceeded", s.DepthExceeded},
		{"Failed", s.Failed},
		{"Cache hits", s.CacheHits},
		{"Longest trajectory", fmt.Sprintf("%d (%d steps)", s.LongestInput, s.LongestTransitions)},
		{"Highest peak", fmt.Sprintf("%d (from %d)", s.PeakValue, s.PeakInput)},
		{"Duration", s.Duration.Round(time.Microsecond)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %v |\n", r.k, r.v)
	}
	return b.String()
}
