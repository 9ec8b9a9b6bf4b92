package compiler

import (
	"context"
	"time"
)

// Phase names a step of a compilation.
type Phase string

const (
	PhaseLoad     Phase = "load"
	PhaseGenerate Phase = "generate"
	PhaseWrite    Phase = "write"
	PhaseVerify   Phase = "verify"
)

// PhaseContext describes one phase execution to hooks.
type PhaseContext struct {
	// Phase is the step being executed.
	Phase Phase
	// RunID identifies the compilation the phase belongs to.
	RunID string
	// Context is the context of the compilation.
	Context context.Context
	// StartedAt is when the phase started.
	StartedAt time.Time
	// Duration is how long the phase took (only set in OnPhaseDone and
	// OnPhaseError).
	Duration time.Duration
}

// Hooks defines callbacks for phase lifecycle events.
// All hooks are optional - nil hooks are simply not called.
type Hooks struct {
	OnPhaseStart func(ctx PhaseContext)
	OnPhaseDone  func(ctx PhaseContext)
	OnPhaseError func(ctx PhaseContext, err error)
}

// Merge combines two Hooks, creating a new Hooks that calls both.
// The hooks from 'other' are called after the hooks from 'h'.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnPhaseStart: chain(h.OnPhaseStart, other.OnPhaseStart),
		OnPhaseDone:  chain(h.OnPhaseDone, other.OnPhaseDone),
		OnPhaseError: chainError(h.OnPhaseError, other.OnPhaseError),
	}
}

func chain(a, b func(PhaseContext)) func(PhaseContext) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx PhaseContext) {
		a(ctx)
		b(ctx)
	}
}

func chainError(a, b func(PhaseContext, error)) func(PhaseContext, error) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx PhaseContext, err error) {
		a(ctx, err)
		b(ctx, err)
	}
}

// runPhase executes fn between the start and completion hooks.
func (h Hooks) runPhase(ctx context.Context, phase Phase, runID string, fn func(context.Context) error) error {
	pc := PhaseContext{Phase: phase, RunID: runID, Context: ctx, StartedAt: time.Now()}
	if h.OnPhaseStart != nil {
		h.OnPhaseStart(pc)
	}
	err := fn(ctx)
	pc.Duration = time.Since(pc.StartedAt)
	if err != nil {
		if h.OnPhaseError != nil {
			h.OnPhaseError(pc, err)
		}
		return err
	}
	if h.OnPhaseDone != nil {
		h.OnPhaseDone(pc)
	}
	return nil
}
