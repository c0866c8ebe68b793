package fsm_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func benchMachine(b *testing.B) *fsm.Machine[*post] {
	b.Helper()

	return fsm.MustNew(
		fsm.WithStateAccessor(
			func(p *post) fsm.State { return p.state },
			func(p *post, s fsm.State) { p.state = s },
		),
		fsm.WithTransitions(
			fsm.Transition[*post]{Name: "publish", Source: []fsm.State{stateNew}, Target: statePublished},
			fsm.Transition[*post]{Name: "hide", Source: []fsm.State{statePublished}, Target: stateHidden},
			fsm.Transition[*post]{Name: "restore", Source: []fsm.State{stateHidden}, Target: stateNew},
		),
	)
}

func BenchmarkMachine_Invoke(b *testing.B) {
	ctx := context.Background()
	m := benchMachine(b)
	p := &post{state: stateNew}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Cycle through the three states.
		_, _ = m.Invoke(ctx, "publish", p)
		_, _ = m.Invoke(ctx, "hide", p)
		_, _ = m.Invoke(ctx, "restore", p)
	}
}

func BenchmarkMachine_InvokeWithGuards(b *testing.B) {
	ctx := context.Background()

	guard := func(ctx context.Context, p *post, args ...any) bool { return true }

	m := fsm.MustNew(
		fsm.WithStateAccessor(
			func(p *post) fsm.State { return p.state },
			func(p *post, s fsm.State) { p.state = s },
		),
		fsm.WithTransitions(
			fsm.Transition[*post]{
				Name:   "publish",
				Source: []fsm.State{stateNew},
				Target: statePublished,
				Guards: []fsm.Guard[*post]{guard, guard},
			},
			fsm.Transition[*post]{
				Name:   "restore",
				Source: []fsm.State{statePublished},
				Target: stateNew,
				Guards: []fsm.Guard[*post]{guard, guard},
			},
		),
	)

	p := &post{state: stateNew}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = m.Invoke(ctx, "publish", p)
		_, _ = m.Invoke(ctx, "restore", p)
	}
}

func BenchmarkMachine_CanProceed(b *testing.B) {
	ctx := context.Background()
	m := benchMachine(b)
	p := &post{state: stateNew}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.CanProceed(ctx, "publish", p)
	}
}

func BenchmarkMachine_Available(b *testing.B) {
	m := benchMachine(b)
	p := &post{state: statePublished}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Available(p)
	}
}
