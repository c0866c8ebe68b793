package fsm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Option configures a Machine during construction.
type Option[O any] func(*Machine[O]) error

// New builds the frozen transition registry for one owner type. All
// declaration-time validation happens here and fails fast: structurally
// invalid definitions, duplicate names, a Save transition without a
// persistence hook, or a missing state accessor all abort construction.
func New[O any](opts ...Option[O]) (*Machine[O], error) {
	m := &Machine[O]{
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		rules: make(map[string]Transition[O]),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.getState == nil || m.setState == nil {
		var zero O
		if _, ok := any(zero).(Stateful); !ok {
			return nil, ErrNoStateAccess
		}
		m.getState = func(o O) State { return any(o).(Stateful).CurrentState() }
		m.setState = func(o O, s State) { any(o).(Stateful).SetCurrentState(s) }
	}

	if m.persist == nil {
		for _, name := range m.names {
			if m.rules[name].Save {
				return nil, fmt.Errorf("transition %q: %w", name, ErrNoPersistence)
			}
		}
	}

	return m, nil
}

// MustNew is New that panics on error. Declaration mistakes are programming
// errors and should prevent startup rather than surface at invoke time.
func MustNew[O any](opts ...Option[O]) *Machine[O] {
	m, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("fsm: failed to build machine: %v", err))
	}
	return m
}

// WithStateAccessor supplies the read and write hooks for the owner's state
// attribute. Required unless the owner type implements Stateful.
func WithStateAccessor[O any](get func(O) State, set func(O, State)) Option[O] {
	return func(m *Machine[O]) error {
		if get == nil || set == nil {
			return errors.New("state accessor requires both get and set")
		}
		m.getState = get
		m.setState = set
		return nil
	}
}

// WithPersistence supplies the durable-storage hook invoked for transitions
// declared with Save.
func WithPersistence[O any](persist PersistFunc[O]) Option[O] {
	return func(m *Machine[O]) error {
		m.persist = persist
		return nil
	}
}

// WithObserver registers a post-transition callback. Observers are invoked in
// registration order.
func WithObserver[O any](obs Observer[O]) Option[O] {
	return func(m *Machine[O]) error {
		if obs != nil {
			m.observers = append(m.observers, obs)
		}
		return nil
	}
}

// WithLogger routes the machine's debug/warn records through log. The default
// logger discards everything.
func WithLogger[O any](log *slog.Logger) Option[O] {
	return func(m *Machine[O]) error {
		if log != nil {
			m.log = log
		}
		return nil
	}
}

// WithTransition declares a single transition.
func WithTransition[O any](t Transition[O]) Option[O] {
	return func(m *Machine[O]) error {
		return m.register(t)
	}
}

// WithTransitions declares multiple transitions at once.
func WithTransitions[O any](ts ...Transition[O]) Option[O] {
	return func(m *Machine[O]) error {
		for _, t := range ts {
			if err := m.register(t); err != nil {
				return err
			}
		}
		return nil
	}
}

func (m *Machine[O]) register(t Transition[O]) error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: transition name is required", ErrInvalidDefinition)
	case t.Target == "":
		return fmt.Errorf("%w: transition %q: target state is required", ErrInvalidDefinition, t.Name)
	case t.Target == Wildcard:
		return fmt.Errorf("%w: transition %q: target must be a concrete state", ErrInvalidDefinition, t.Name)
	case len(t.Source) == 0:
		return fmt.Errorf("%w: transition %q: source set must not be empty", ErrInvalidDefinition, t.Name)
	}

	if _, exists := m.rules[t.Name]; exists {
		return NewDuplicateTransitionError(t.Name)
	}

	// Own the slices so later mutation of the caller's definition cannot
	// reach the frozen registry.
	t.Source = slices.Clone(t.Source)
	t.Guards = slices.Clone(t.Guards)

	m.rules[t.Name] = t
	m.names = append(m.names, t.Name)
	return nil
}
