package fsmpg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Table names the owner table and the two columns the persister is allowed to
// touch. Empty column names default to "id" and "state".
type Table struct {
	Name        string
	IDColumn    string
	StateColumn string
}

// Persister durably stores owner state in a PostgreSQL column. PersistState
// satisfies fsm.PersistFunc and writes the state column ONLY — the rest of
// the owner row is the storage layer's business, never this package's.
type Persister[O any] struct {
	pool    *pgxpool.Pool
	update  string
	query   string
	ownerID func(O) any
	state   func(O) fsm.State
}

// NewPersister builds a persister over pool. ownerID extracts the value of
// the id column for an owner; state reads the owner's current in-memory
// state. Nil arguments are programming errors and panic, matching the
// fail-fast construction used across the module.
func NewPersister[O any](pool *pgxpool.Pool, table Table, ownerID func(O) any, state func(O) fsm.State) *Persister[O] {
	if pool == nil {
		panic("fsmpg: pool cannot be nil")
	}
	if table.Name == "" {
		panic("fsmpg: table name is required")
	}
	if ownerID == nil || state == nil {
		panic("fsmpg: ownerID and state extractors cannot be nil")
	}

	if table.IDColumn == "" {
		table.IDColumn = "id"
	}
	if table.StateColumn == "" {
		table.StateColumn = "state"
	}

	tbl := pgx.Identifier{table.Name}.Sanitize()
	idCol := pgx.Identifier{table.IDColumn}.Sanitize()
	stateCol := pgx.Identifier{table.StateColumn}.Sanitize()

	return &Persister[O]{
		pool:    pool,
		update:  fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2", tbl, stateCol, idCol),
		query:   fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", stateCol, tbl, idCol),
		ownerID: ownerID,
		state:   state,
	}
}

// PersistState writes the owner's current state to its row. Pass it to
// fsm.WithPersistence.
func (p *Persister[O]) PersistState(ctx context.Context, owner O) error {
	tag, err := p.pool.Exec(ctx, p.update, string(p.state(owner)), p.ownerID(owner))
	if err != nil {
		return errors.Join(ErrFailedToPersistState, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOwnerNotFound
	}
	return nil
}

// LoadState reads the durable state for the owner with the given id, for
// rehydrating owners from storage.
func (p *Persister[O]) LoadState(ctx context.Context, id any) (fsm.State, error) {
	var state string
	if err := p.pool.QueryRow(ctx, p.query, id).Scan(&state); err != nil {
		if IsNotFoundError(err) {
			return "", ErrOwnerNotFound
		}
		return "", errors.Join(ErrFailedToLoadState, err)
	}
	return fsm.State(state), nil
}
