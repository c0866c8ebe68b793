package fsmredis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Persister durably stores owner state under a namespaced Redis key.
// PersistState satisfies fsm.PersistFunc; only the state value is written,
// never any other owner data.
type Persister[O any] struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	ownerID func(O) string
	state   func(O) fsm.State
}

// NewPersister builds a persister over client using the key prefix and TTL
// from cfg. ownerID extracts a stable key suffix for an owner; state reads
// the owner's current in-memory state. Nil arguments panic, matching the
// fail-fast construction used across the module.
func NewPersister[O any](client redis.UniversalClient, cfg Config, ownerID func(O) string, state func(O) fsm.State) *Persister[O] {
	if client == nil {
		panic("fsmredis: client cannot be nil")
	}
	if ownerID == nil || state == nil {
		panic("fsmredis: ownerID and state extractors cannot be nil")
	}

	return &Persister[O]{
		client:  client,
		prefix:  cfg.KeyPrefix,
		ttl:     cfg.StateTTL,
		ownerID: ownerID,
		state:   state,
	}
}

// PersistState writes the owner's current state to its key. Pass it to
// fsm.WithPersistence.
func (p *Persister[O]) PersistState(ctx context.Context, owner O) error {
	key := p.prefix + p.ownerID(owner)
	if err := p.client.Set(ctx, key, string(p.state(owner)), p.ttl).Err(); err != nil {
		return errors.Join(ErrFailedToPersistState, err)
	}
	return nil
}

// LoadState reads the durable state for the owner with the given id.
func (p *Persister[O]) LoadState(ctx context.Context, id string) (fsm.State, error) {
	val, err := p.client.Get(ctx, p.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrOwnerNotFound
		}
		return "", errors.Join(ErrFailedToLoadState, err)
	}
	return fsm.State(val), nil
}
