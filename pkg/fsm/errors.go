package fsm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStateAccess indicates the owner type neither implements Stateful
	// nor was given a state accessor via WithStateAccessor.
	ErrNoStateAccess = errors.New("no state accessor configured and owner type does not implement Stateful")

	// ErrNoPersistence indicates a transition was declared with Save but no
	// persistence hook was configured via WithPersistence.
	ErrNoPersistence = errors.New("transition declares save but no persistence hook is configured")

	// ErrInvalidDefinition indicates a structurally invalid transition
	// declaration (blank name, missing or wildcard target, empty source set).
	ErrInvalidDefinition = errors.New("invalid transition definition")
)

// InvalidTransitionError indicates the owner's current state is not in the
// transition's declared source set.
type InvalidTransitionError struct {
	Transition string
	Current    State
	Source     []State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot apply transition %q from state %q (declared sources %v)", e.Transition, e.Current, e.Source)
}

func NewInvalidTransitionError(transition string, current State, source []State) *InvalidTransitionError {
	return &InvalidTransitionError{Transition: transition, Current: current, Source: source}
}

// ConditionsNotMetError indicates one or more guard conditions rejected the
// transition. Distinguishable from InvalidTransitionError so callers can
// render "wrong state" and "not allowed yet" differently.
type ConditionsNotMetError struct {
	Transition string
	Current    State
}

func (e *ConditionsNotMetError) Error() string {
	return fmt.Sprintf("conditions not met for transition %q in state %q", e.Transition, e.Current)
}

func NewConditionsNotMetError(transition string, current State) *ConditionsNotMetError {
	return &ConditionsNotMetError{Transition: transition, Current: current}
}

// DuplicateTransitionError indicates two declarations share a name for the
// same owner type. Raised at construction time only; a name maps to exactly
// one rule to avoid silent shadowing.
type DuplicateTransitionError struct {
	Transition string
}

func (e *DuplicateTransitionError) Error() string {
	return fmt.Sprintf("transition %q is already registered", e.Transition)
}

func NewDuplicateTransitionError(transition string) *DuplicateTransitionError {
	return &DuplicateTransitionError{Transition: transition}
}

// UnknownTransitionError indicates a lookup of a name that was never
// registered for this owner type.
type UnknownTransitionError struct {
	Transition string
}

func (e *UnknownTransitionError) Error() string {
	return fmt.Sprintf("unknown transition %q", e.Transition)
}

func NewUnknownTransitionError(transition string) *UnknownTransitionError {
	return &UnknownTransitionError{Transition: transition}
}

// PersistenceError wraps a persistence-hook failure. The in-memory state
// mutation has already happened when it is returned; the caller decides
// whether to retry persistence or roll back manually.
type PersistenceError struct {
	Transition string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("transition %q applied but persisting state failed: %v", e.Transition, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(transition string, err error) *PersistenceError {
	return &PersistenceError{Transition: transition, Err: err}
}

func IsInvalidTransitionError(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}

func IsConditionsNotMetError(err error) bool {
	var e *ConditionsNotMetError
	return errors.As(err, &e)
}

func IsDuplicateTransitionError(err error) bool {
	var e *DuplicateTransitionError
	return errors.As(err, &e)
}

func IsUnknownTransitionError(err error) bool {
	var e *UnknownTransitionError
	return errors.As(err, &e)
}

func IsPersistenceError(err error) bool {
	var e *PersistenceError
	return errors.As(err, &e)
}
