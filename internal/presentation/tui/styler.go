package tui

import (
	"io"
	"os"

	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewStyler returns a line decorator for terminal output, or nil when w is not a terminal.
func NewStyler(w io.Writer) runner.Styler {
	if !IsTerminal(w) {
		return nil
	}
	return NewProfileStyler(termenv.NewOutput(w).Profile)
}

// NewProfileStyler colours diagnostics for an explicit colour profile.
// Successful result lines are left untouched.
func NewProfileStyler(p termenv.Profile) runner.Styler {
	return func(outcome domain.Outcome, line string) string {
		switch outcome {
		case domain.OutcomeDepthExceeded:
			return p.String(line).Foreground(p.Color("#fbbf24")).String()
		case domain.OutcomeFailed:
			return p.String(line).Foreground(p.Color("#f87171")).Bold().String()
		case domain.OutcomeIndivisible:
			return p.String(line).Faint().String()
		}
		return line
	}
}
