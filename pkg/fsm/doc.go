// Package fsm provides declarative finite-state-machine behavior for
// arbitrary stateful objects.
//
// Instead of hand-validating and mutating a "state" attribute, callers
// declare named transitions — a source state set (or the "*" wildcard), a
// concrete target state, optional guard conditions and an optional wrapped
// body — and invoke them through a Machine that enforces the full contract on
// every call:
//  1. Source validation against the owner's current state
//  2. Guard evaluation with the exact call-time arguments
//  3. Body execution (state untouched if the body errors)
//  4. State mutation to the declared target
//  5. Optional persistence through a caller-supplied hook
//
// The Machine owns no state itself. It is a frozen rule table generic over
// the owner type; owners keep their state attribute and the machine reads and
// writes it through an accessor (or the Stateful interface).
//
// # Usage
//
//	type Post struct{ State fsm.State }
//
//	const (
//	    StateNew       = fsm.State("new")
//	    StatePublished = fsm.State("published")
//	    StateRemoved   = fsm.State("removed")
//	)
//
//	machine := fsm.MustNew(
//	    fsm.WithStateAccessor(
//	        func(p *Post) fsm.State { return p.State },
//	        func(p *Post, s fsm.State) { p.State = s },
//	    ),
//	    fsm.WithTransition(fsm.Transition[*Post]{
//	        Name:   "publish",
//	        Source: []fsm.State{StateNew},
//	        Target: StatePublished,
//	    }),
//	    fsm.WithTransition(fsm.Transition[*Post]{
//	        Name:   "remove",
//	        Source: []fsm.State{fsm.Wildcard},
//	        Target: StateRemoved,
//	        Guards: []fsm.Guard[*Post]{notUnderReview},
//	    }),
//	)
//
//	_, err := machine.Invoke(ctx, "publish", post)
//
// # Guards
//
// Guards are pure predicates over the owner and the Invoke-time arguments:
//
//	notUnderReview := func(ctx context.Context, p *Post, args ...any) bool {
//	    return !p.UnderReview
//	}
//
// All guards of a transition must pass; evaluation is in declared order and
// stops at the first rejection.
//
// # Persistence
//
// Transitions declared with Save trigger the hook configured via
// WithPersistence after the in-memory mutation, restricted to the state field
// only. The pkg/fsmpg, pkg/fsmredis and pkg/fsmmongo packages provide
// ready-made hooks. A hook failure surfaces as PersistenceError while the
// in-memory change stands; the engine performs no automatic rollback.
//
// # Introspection
//
// CanProceed answers "would Invoke pass validation and guards" without
// executing anything — it never mutates state, and guard panics or unknown
// names degrade to false. Available lists the transitions whose source set
// admits the owner's current state.
//
// # Declarative charts
//
// Transition tables can live in YAML documents loaded with ParseChart and
// bound with WithChart; see Chart.
//
// # Error Handling
//
// Runtime failures are typed and distinguishable: IsInvalidTransitionError
// (wrong state), IsConditionsNotMetError (guards rejected),
// IsUnknownTransitionError, IsPersistenceError. Declaration mistakes fail New
// immediately.
//
// # Concurrency
//
// A Machine is immutable after New and safe for concurrent use across many
// owners. Owner instances are not guarded: concurrent transitions on the same
// owner must be serialized by the caller.
package fsm
