package fsm

import (
	"context"
)

// State is an opaque label identifying one point in an owner's finite state
// space. States carry no structure; only equality matters.
type State string

// Wildcard is the any-source sentinel. A transition whose source set contains
// Wildcard is applicable from every current state. Wildcard is never a valid
// target.
const Wildcard State = "*"

// Stateful is implemented by owner types that expose their own state
// attribute. Owners implementing it need no explicit accessor option.
type Stateful interface {
	CurrentState() State
	SetCurrentState(State)
}

// Guard is a pure predicate gating a transition. It receives the owner and
// the exact arguments passed to Invoke, so guards may depend on call-time
// data as well as owner state. Guards must not mutate anything.
type Guard[O any] func(ctx context.Context, owner O, args ...any) bool

// Body is the behavior wrapped by a transition. It may perform arbitrary side
// effects (notifications, cache updates, cross-object writes) but must not
// write the owner's state attribute; that mutation is the machine's exclusive
// responsibility. A body error aborts the transition with the owner's state
// untouched.
type Body[O any] func(ctx context.Context, owner O, args ...any) (any, error)

// PersistFunc durably stores the owner's current state, restricted to the
// state field only. It is invoked for transitions declared with Save after
// the in-memory mutation succeeds.
type PersistFunc[O any] func(ctx context.Context, owner O) error

// Observer is notified after a transition mutates owner state. Observers run
// after the optional persistence step, cannot veto, and must not invoke
// further transitions on the same owner.
type Observer[O any] func(ctx context.Context, change Change[O])

// Change describes a completed state mutation delivered to observers.
type Change[O any] struct {
	Transition string
	From       State
	To         State
	Owner      O
	// Persisted reports whether the durable write succeeded. It is false for
	// transitions declared without Save and for persistence-hook failures
	// (the in-memory mutation stands either way).
	Persisted bool
}

// Transition declares a named state change for one owner type.
type Transition[O any] struct {
	Name   string
	Source []State // must be non-empty; may contain Wildcard
	Target State   // concrete state, never Wildcard
	Guards []Guard[O]
	Body   Body[O] // optional; nil means a pure state change
	Save   bool    // trigger the persistence hook after mutation
}

// allows reports whether the transition is applicable from current.
func (t Transition[O]) allows(current State) bool {
	for _, s := range t.Source {
		if s == Wildcard || s == current {
			return true
		}
	}
	return false
}
