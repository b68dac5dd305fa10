package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/collatz/internal/runtime"
	"github.com/aretw0/collatz/pkg/domain"
)

func TestEvaluator_LifecycleHooks(t *testing.T) {
	var starts, steps int
	var end *domain.EvaluationEvent

	hooks := domain.LifecycleHooks{
		OnEvaluateStart: func(ctx context.Context, e *domain.EvaluationEvent) { starts++ },
		OnStep:          func(ctx context.Context, e *domain.StepEvent) { steps++ },
		OnEvaluateEnd:   func(ctx context.Context, e *domain.EvaluationEvent) { end = e },
	}

	engine := runtime.NewEvaluator(runtime.WithLifecycleHooks(hooks))
	if _, err := engine.Evaluate(context.Background(), 6); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if starts != 1 {
		t.Errorf("expected 1 start event, got %d", starts)
	}
	if steps != 9 {
		t.Errorf("expected 9 step events (8 transitions + terminal), got %d", steps)
	}
	if end == nil || end.Outcome != domain.OutcomeSuccess || end.Transitions != 8 || end.Peak != 16 {
		t.Errorf("unexpected end event: %+v", end)
	}
}

func TestEvaluator_LifecycleHooks_DepthExceeded(t *testing.T) {
	var end *domain.EvaluationEvent
	hooks := domain.LifecycleHooks{
		OnEvaluateEnd: func(ctx context.Context, e *domain.EvaluationEvent) { end = e },
	}

	engine := runtime.NewEvaluator(runtime.WithMaxSteps(3), runtime.WithLifecycleHooks(hooks))
	if _, err := engine.Evaluate(context.Background(), 27); err == nil {
		t.Fatal("expected depth error")
	}

	if end == nil || end.Outcome != domain.OutcomeDepthExceeded || end.Err == nil {
		t.Errorf("unexpected end event: %+v", end)
	}
}
