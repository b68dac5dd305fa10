package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluateStart EventType = "evaluate_start"
	EventStep          EventType = "step"
	EventEvaluateEnd   EventType = "evaluate_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Input     uint64    `json:"input"`
}

// StepEvent is emitted for every trajectory entry.
type StepEvent struct {
	EventBase
	Step  Step `json:"step"`
	Index int  `json:"index"`
}

// EvaluationEvent marks the start or end of an evaluation.
type EvaluationEvent struct {
	EventBase
	Outcome     Outcome       `json:"outcome,omitempty"`
	Transitions int           `json:"transitions"`
	Peak        uint64        `json:"peak"`
	Duration    time.Duration `json:"duration,omitempty"`
	Err         error         `json:"-"`
}

// LifecycleHooks defines callbacks for evaluator observability.
type LifecycleHooks struct {
	OnEvaluateStart func(context.Context, *EvaluationEvent)
	OnStep          func(context.Context, *StepEvent)
	OnEvaluateEnd   func(context.Context, *EvaluationEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnEvaluateStart: chain(h.OnEvaluateStart, other.OnEvaluateStart),
		OnStep:          chain(h.OnStep, other.OnStep),
		OnEvaluateEnd:   chain(h.OnEvaluateEnd, other.OnEvaluateEnd),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
