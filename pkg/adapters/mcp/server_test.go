package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/collatz/internal/runtime"
	"github.com/aretw0/collatz/pkg/adapters/memory"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, s *Server, args map[string]interface{}) (EvaluateResponse, error) {
	t.Helper()
	return s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, args)
}

func TestHandleEvaluate(t *testing.T) {
	s := NewServer(runtime.NewEvaluator())

	resp, err := call(t, s, map[string]interface{}{"n": "27"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, resp.Outcome)
	assert.Equal(t, uint64(1), resp.Terminal)
	assert.Equal(t, 111, resp.Transitions)
	assert.Equal(t, uint64(9232), resp.Peak)
	assert.Empty(t, resp.Log)
}

func TestHandleEvaluate_Steps(t *testing.T) {
	s := NewServer(runtime.NewEvaluator())

	resp, err := call(t, s, map[string]interface{}{"n": float64(6), "include_steps": true})
	require.NoError(t, err)
	require.Len(t, resp.Log, 9)
	assert.Equal(t, "terminal: 1", resp.Log[8])
}

func TestHandleEvaluate_Outcomes(t *testing.T) {
	s := NewServer(runtime.NewEvaluator(runtime.WithMaxSteps(10)))

	zero, err := call(t, s, map[string]interface{}{"n": "0"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIndivisible, zero.Outcome)

	deep, err := call(t, s, map[string]interface{}{"n": "27"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDepthExceeded, deep.Outcome)
	assert.NotEmpty(t, deep.Error)
}

func TestHandleEvaluate_InvalidInput(t *testing.T) {
	s := NewServer(runtime.NewEvaluator())

	for _, args := range []map[string]interface{}{
		{},
		{"n": "abc"},
		{"n": "-3"},
		{"n": float64(2.5)},
		{"n": true},
	} {
		_, err := call(t, s, args)
		assert.Error(t, err, "%v", args)
	}

	_, err := call(t, s, map[string]interface{}{"n": "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandleEvaluate_Cache(t *testing.T) {
	store := memory.NewStore()
	s := NewServer(runtime.NewEvaluator(), WithStore(store))

	first, err := call(t, s, map[string]interface{}{"n": "9"})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := call(t, s, map[string]interface{}{"n": "9"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Transitions, second.Transitions)
}
