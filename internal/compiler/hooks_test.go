package compiler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks_OnPhaseStart(t *testing.T) {
	var captured PhaseContext
	hooks := Hooks{OnPhaseStart: func(ctx PhaseContext) { captured = ctx }}

	err := hooks.runPhase(context.Background(), PhaseLoad, "run-1", func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, PhaseLoad, captured.Phase)
	assert.Equal(t, "run-1", captured.RunID)
	assert.False(t, captured.StartedAt.IsZero())
	assert.Zero(t, captured.Duration)
}

func TestHooks_OnPhaseDone(t *testing.T) {
	var captured PhaseContext
	var errorCalled bool
	hooks := Hooks{
		OnPhaseDone:  func(ctx PhaseContext) { captured = ctx },
		OnPhaseError: func(PhaseContext, error) { errorCalled = true },
	}

	err := hooks.runPhase(context.Background(), PhaseGenerate, "run-1", func(context.Context) error {
		time.Sleep(5 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)
	assert.False(t, errorCalled)
	assert.Equal(t, PhaseGenerate, captured.Phase)
	assert.GreaterOrEqual(t, captured.Duration, 5*time.Millisecond)
}

func TestHooks_OnPhaseError(t *testing.T) {
	boom := errors.New("boom")
	var capturedErr error
	var doneCalled bool
	hooks := Hooks{
		OnPhaseDone:  func(PhaseContext) { doneCalled = true },
		OnPhaseError: func(_ PhaseContext, err error) { capturedErr = err },
	}

	err := hooks.runPhase(context.Background(), PhaseWrite, "run-1", func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, capturedErr, boom)
	assert.False(t, doneCalled)
}

func TestHooks_NilHooksAreSkipped(t *testing.T) {
	err := Hooks{}.runPhase(context.Background(), PhaseVerify, "run-1", func(context.Context) error { return nil })
	assert.NoError(t, err)
}

func TestHooks_Merge(t *testing.T) {
	var order []string
	first := Hooks{
		OnPhaseStart: func(PhaseContext) { order = append(order, "first.start") },
		OnPhaseError: func(PhaseContext, error) { order = append(order, "first.error") },
	}
	second := Hooks{
		OnPhaseStart: func(PhaseContext) { order = append(order, "second.start") },
		OnPhaseDone:  func(PhaseContext) { order = append(order, "second.done") },
		OnPhaseError: func(PhaseContext, error) { order = append(order, "second.error") },
	}
	merged := first.Merge(second)

	require.NoError(t, merged.runPhase(context.Background(), PhaseLoad, "r", func(context.Context) error { return nil }))
	_ = merged.runPhase(context.Background(), PhaseLoad, "r", func(context.Context) error { return errors.New("x") })

	assert.Equal(t, []string{
		"first.start", "second.start", "second.done",
		"first.start", "second.start", "first.error", "second.error",
	}, order)
}
