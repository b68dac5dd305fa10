package runtime_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/aretw0/collatz/internal/runtime"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/google/go-cmp/cmp"
)

func TestEvaluator_Six(t *testing.T) {
	engine := runtime.NewEvaluator()

	traj, err := engine.Evaluate(context.Background(), 6)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	want := []string{
		"6 is divisible by 2 → 3",
		"3 is not divisible by 2 → 10",
		"10 is divisible by 2 → 5",
		"5 is not divisible by 2 → 16",
		"16 is divisible by 2 → 8",
		"8 is divisible by 2 → 4",
		"4 is divisible by 2 → 2",
		"2 is divisible by 2 → 1",
		"terminal: 1",
	}
	if diff := cmp.Diff(want, traj.Log()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	if traj.Terminal != 1 {
		t.Errorf("expected terminal 1, got %d", traj.Terminal)
	}
	if traj.Peak != 16 {
		t.Errorf("expected peak 16, got %d", traj.Peak)
	}
}

func TestEvaluator_Seven(t *testing.T) {
	traj, err := runtime.NewEvaluator().Evaluate(context.Background(), 7)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if traj.Terminal != 1 {
		t.Errorf("expected terminal 1, got %d", traj.Terminal)
	}
	if len(traj.Log()) != 17 {
		t.Errorf("expected 17 log entries, got %d", len(traj.Log()))
	}
	if traj.Transitions() != 16 {
		t.Errorf("expected 16 transitions, got %d", traj.Transitions())
	}
}

func TestEvaluator_One(t *testing.T) {
	traj, err := runtime.NewEvaluator().Evaluate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if diff := cmp.Diff([]string{"terminal: 1"}, traj.Log()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	if traj.Terminal != 1 || traj.Transitions() != 0 {
		t.Errorf("unexpected trajectory: %+v", traj)
	}
}

func TestEvaluator_FirstStepPolicy(t *testing.T) {
	engine := runtime.NewEvaluator()
	ctx := context.Background()

	for n := uint64(2); n < 200; n++ {
		traj, err := engine.Evaluate(ctx, n)
		if err != nil {
			t.Fatalf("Evaluate(%d) failed: %v", n, err)
		}
		first := traj.Steps[0]
		if n%2 == 0 {
			if first.Kind != domain.StepHalve || first.Output != n/2 {
				t.Errorf("Evaluate(%d): expected halve to %d, got %+v", n, n/2, first)
			}
		} else {
			if first.Kind != domain.StepTriple || first.Output != 3*n+1 {
				t.Errorf("Evaluate(%d): expected triple to %d, got %+v", n, 3*n+1, first)
			}
		}
	}
}

func TestEvaluator_AllSampleRangeTerminates(t *testing.T) {
	engine := runtime.NewEvaluator()
	ctx := context.Background()

	for n := uint64(1); n < domain.DefaultSampleHigh; n++ {
		traj, err := engine.Evaluate(ctx, n)
		if err != nil {
			t.Fatalf("Evaluate(%d) failed: %v", n, err)
		}
		if traj.Terminal != 1 {
			t.Fatalf("Evaluate(%d): terminal %d", n, traj.Terminal)
		}
		terminals := 0
		for _, s := range traj.Steps {
			if s.Kind == domain.StepTerminal {
				terminals++
			}
		}
		if terminals != 1 || !traj.Complete() {
			t.Fatalf("Evaluate(%d): expected exactly one trailing terminal entry", n)
		}
	}
}

func TestEvaluator_Budget(t *testing.T) {
	ctx := context.Background()

	if _, err := runtime.NewEvaluator(runtime.WithMaxSteps(16)).Evaluate(ctx, 7); err != nil {
		t.Fatalf("budget of 16 should be enough for 7: %v", err)
	}

	_, err := runtime.NewEvaluator(runtime.WithMaxSteps(15)).Evaluate(ctx, 7)
	if !errors.Is(err, domain.ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
	var depthErr *domain.DepthExceededError
	if !errors.As(err, &depthErr) {
		t.Fatalf("expected *DepthExceededError, got %T", err)
	}
	if depthErr.Input != 7 || depthErr.Budget != 15 {
		t.Errorf("unexpected error fields: %+v", depthErr)
	}
	if depthErr.Partial.Transitions() != 15 || depthErr.Partial.Complete() {
		t.Errorf("expected 15 partial transitions without terminal, got %d", depthErr.Partial.Transitions())
	}
}

func TestEvaluator_DefaultBudget(t *testing.T) {
	if got := runtime.NewEvaluator(runtime.WithMaxSteps(0)).MaxSteps(); got != domain.DefaultMaxSteps {
		t.Errorf("expected default budget %d, got %d", domain.DefaultMaxSteps, got)
	}
}

func TestEvaluator_Zero(t *testing.T) {
	_, err := runtime.NewEvaluator().Evaluate(context.Background(), 0)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEvaluator_Overflow(t *testing.T) {
	_, err := runtime.NewEvaluator().Evaluate(context.Background(), math.MaxUint64)
	if !errors.Is(err, domain.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestEvaluator_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runtime.NewEvaluator().Evaluate(ctx, 27)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNext(t *testing.T) {
	step, err := runtime.Next(10)
	if err != nil || step.Output != 5 || step.Kind != domain.StepHalve {
		t.Errorf("Next(10) = %+v, %v", step, err)
	}
	step, err = runtime.Next(5)
	if err != nil || step.Output != 16 || step.Kind != domain.StepTriple {
		t.Errorf("Next(5) = %+v, %v", step, err)
	}
}
