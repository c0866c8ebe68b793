package fsm

import (
	"context"
	"log/slog"
	"slices"
)

// Machine is the transition registry and invoker for one owner type. It holds
// no owner state itself: the rule table is built once by New and frozen, so a
// single Machine may be shared across any number of owner instances and read
// concurrently without locks. Concurrent invocations on the SAME owner
// instance must be serialized by the caller.
type Machine[O any] struct {
	getState  func(O) State
	setState  func(O, State)
	persist   PersistFunc[O]
	observers []Observer[O]
	log       *slog.Logger

	rules map[string]Transition[O]
	names []string // registration order
}

// State returns the owner's current state through the configured accessor.
func (m *Machine[O]) State(owner O) State {
	return m.getState(owner)
}

// Transitions returns the names of all registered transitions, sorted.
func (m *Machine[O]) Transitions() []string {
	names := slices.Clone(m.names)
	slices.Sort(names)
	return names
}

// Transition returns a copy of the named rule, or UnknownTransitionError.
func (m *Machine[O]) Transition(name string) (Transition[O], error) {
	rule, ok := m.rules[name]
	if !ok {
		return Transition[O]{}, NewUnknownTransitionError(name)
	}
	rule.Source = slices.Clone(rule.Source)
	rule.Guards = slices.Clone(rule.Guards)
	return rule, nil
}

// Available returns the names of transitions whose source set admits the
// owner's current state, sorted. Guards are not evaluated here because they
// may depend on call-time arguments; pair with CanProceed for a full check.
func (m *Machine[O]) Available(owner O) []string {
	current := m.getState(owner)
	var names []string
	for _, name := range m.names {
		if m.rules[name].allows(current) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Invoke applies the named transition to owner. The contract is enforced in
// strict order: source validation, guard evaluation, body execution, state
// mutation, optional persistence. The owner's state changes only if the body
// completes without error; body errors propagate unchanged. The body's return
// value is passed through to the caller.
//
// A persistence-hook failure is returned as PersistenceError; the in-memory
// mutation stands and is not rolled back.
func (m *Machine[O]) Invoke(ctx context.Context, name string, owner O, args ...any) (any, error) {
	rule, ok := m.rules[name]
	if !ok {
		return nil, NewUnknownTransitionError(name)
	}

	current := m.getState(owner)
	if !rule.allows(current) {
		return nil, NewInvalidTransitionError(name, current, rule.Source)
	}

	// Guards are declared pure, so the logical AND over all of them is
	// unaffected by short-circuiting on the first rejection.
	for _, guard := range rule.Guards {
		if guard != nil && !guard(ctx, owner, args...) {
			return nil, NewConditionsNotMetError(name, current)
		}
	}

	var result any
	if rule.Body != nil {
		var err error
		if result, err = rule.Body(ctx, owner, args...); err != nil {
			return nil, err
		}
	}

	m.setState(owner, rule.Target)

	var persistErr error
	persisted := false
	if rule.Save {
		if persistErr = m.persist(ctx, owner); persistErr != nil {
			m.log.WarnContext(ctx, "state persisted in memory only",
				slog.String("transition", name),
				slog.String("state", string(rule.Target)),
				slog.Any("error", persistErr))
			persistErr = NewPersistenceError(name, persistErr)
		} else {
			persisted = true
		}
	}

	m.log.DebugContext(ctx, "transition applied",
		slog.String("transition", name),
		slog.String("from", string(current)),
		slog.String("to", string(rule.Target)),
		slog.Bool("persisted", persisted))

	change := Change[O]{
		Transition: name,
		From:       current,
		To:         rule.Target,
		Owner:      owner,
		Persisted:  persisted,
	}
	for _, obs := range m.observers {
		obs(ctx, change)
	}

	return result, persistErr
}

// CanProceed reports whether Invoke with the same arguments would pass source
// validation and all guards. It never executes the body, never mutates state
// and never persists. Pass the args the guards expect; unknown names and
// guard panics degrade to false because this surface is a pure boolean query.
// The recovery also covers a panicking state accessor, so an accessor bug
// surfaces here only as a false result (logged at debug); Invoke still
// propagates it.
func (m *Machine[O]) CanProceed(ctx context.Context, name string, owner O, args ...any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.log.DebugContext(ctx, "guard panicked during introspection",
				slog.String("transition", name),
				slog.Any("panic", r))
			ok = false
		}
	}()

	rule, found := m.rules[name]
	if !found {
		return false
	}
	if !rule.allows(m.getState(owner)) {
		return false
	}
	for _, guard := range rule.Guards {
		if guard != nil && !guard(ctx, owner, args...) {
			return false
		}
	}
	return true
}
