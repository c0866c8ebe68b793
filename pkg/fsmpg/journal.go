package fsmpg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/fsmjournal"
)

// Journal stores transition journal entries in a PostgreSQL table. It
// implements fsmjournal.Recorder. The expected schema:
//
//	CREATE TABLE fsm_journal (
//	    id          UUID PRIMARY KEY,
//	    owner_id    TEXT        NOT NULL,
//	    transition  TEXT        NOT NULL,
//	    from_state  TEXT        NOT NULL,
//	    to_state    TEXT        NOT NULL,
//	    persisted   BOOLEAN     NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL
//	);
type Journal struct {
	pool   *pgxpool.Pool
	insert string
	query  string
}

// NewJournal builds a journal store writing to the named table.
func NewJournal(pool *pgxpool.Pool, table string) *Journal {
	if pool == nil {
		panic("fsmpg: pool cannot be nil")
	}
	if table == "" {
		panic("fsmpg: journal table name is required")
	}

	tbl := pgx.Identifier{table}.Sanitize()

	return &Journal{
		pool: pool,
		insert: fmt.Sprintf(
			"INSERT INTO %s (id, owner_id, transition, from_state, to_state, persisted, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
			tbl),
		query: fmt.Sprintf(
			"SELECT id, owner_id, transition, from_state, to_state, persisted, created_at FROM %s WHERE owner_id = $1 ORDER BY created_at, id",
			tbl),
	}
}

func (j *Journal) Record(ctx context.Context, entry fsmjournal.Entry) error {
	_, err := j.pool.Exec(ctx, j.insert,
		entry.ID, entry.OwnerID, entry.Transition,
		string(entry.From), string(entry.To),
		entry.Persisted, entry.CreatedAt)
	if err != nil {
		return errors.Join(ErrFailedToRecordEntry, err)
	}
	return nil
}

// Entries returns the recorded history for one owner, oldest first.
func (j *Journal) Entries(ctx context.Context, ownerID string) ([]fsmjournal.Entry, error) {
	rows, err := j.pool.Query(ctx, j.query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []fsmjournal.Entry
	for rows.Next() {
		var e fsmjournal.Entry
		var from, to string
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Transition, &from, &to, &e.Persisted, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.From, e.To = fsm.State(from), fsm.State(to)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
