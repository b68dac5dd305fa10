package domain_test

import (
	"testing"

	"github.com/aretw0/collatz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_String(t *testing.T) {
	tests := []struct {
		step domain.Step
		want string
	}{
		{domain.Step{Kind: domain.StepHalve, Input: 6, Output: 3}, "6 is divisible by 2 → 3"},
		{domain.Step{Kind: domain.StepTriple, Input: 3, Output: 10}, "3 is not divisible by 2 → 10"},
		{domain.Step{Kind: domain.StepTerminal, Input: 1, Output: 1}, "terminal: 1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.step.String())
	}
}

func TestTrajectory_AppendFinish(t *testing.T) {
	tr := domain.NewTrajectory(3)
	assert.False(t, tr.Complete())

	tr.Append(domain.Step{Kind: domain.StepTriple, Input: 3, Output: 10})
	tr.Append(domain.Step{Kind: domain.StepHalve, Input: 10, Output: 5})
	assert.Equal(t, 2, tr.Transitions())
	assert.Equal(t, uint64(10), tr.Peak)

	tr.Finish(1)
	require.True(t, tr.Complete())
	assert.Equal(t, 2, tr.Transitions())
	assert.Equal(t, uint64(1), tr.Terminal)
	assert.Len(t, tr.Log(), 3)
	assert.Equal(t, "terminal: 1", tr.Log()[2])
}

func TestTrajectory_CloneIsolation(t *testing.T) {
	tr := domain.NewTrajectory(2)
	tr.Append(domain.Step{Kind: domain.StepHalve, Input: 2, Output: 1})
	tr.Finish(1)

	c := tr.Clone()
	c.Steps[0].Output = 99

	assert.Equal(t, uint64(1), tr.Steps[0].Output, "clone must not share the step slice")
	assert.Nil(t, (*domain.Trajectory)(nil).Clone())
}

func TestResult_Outcome(t *testing.T) {
	assert.Equal(t, domain.OutcomeIndivisible, domain.Result{Input: 0}.Outcome())
	assert.Equal(t, domain.OutcomeSuccess, domain.Result{Input: 5, Trajectory: domain.NewTrajectory(5)}.Outcome())
	assert.Equal(t, domain.OutcomeDepthExceeded, domain.Result{
		Input: 5,
		Err:   &domain.DepthExceededError{Input: 5, Budget: 1},
	}.Outcome())
	assert.Equal(t, domain.OutcomeFailed, domain.Result{
		Input: 5,
		Err:   &domain.OverflowError{Input: 5, Value: 5},
	}.Outcome())
}
