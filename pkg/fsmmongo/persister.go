package fsmmongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Persister durably stores owner state in a document field. PersistState
// satisfies fsm.PersistFunc and issues a $set on the state field ONLY; the
// rest of the document belongs to the storage layer.
type Persister[O any] struct {
	coll       *mongo.Collection
	stateField string
	ownerID    func(O) any
	state      func(O) fsm.State
}

// NewPersister builds a persister over coll. ownerID extracts the _id value
// for an owner; state reads the owner's current in-memory state. Nil
// arguments panic, matching the fail-fast construction used across the
// module.
func NewPersister[O any](coll *mongo.Collection, cfg Config, ownerID func(O) any, state func(O) fsm.State) *Persister[O] {
	if coll == nil {
		panic("fsmmongo: collection cannot be nil")
	}
	if ownerID == nil || state == nil {
		panic("fsmmongo: ownerID and state extractors cannot be nil")
	}

	stateField := cfg.StateField
	if stateField == "" {
		stateField = "state"
	}

	return &Persister[O]{
		coll:       coll,
		stateField: stateField,
		ownerID:    ownerID,
		state:      state,
	}
}

// PersistState writes the owner's current state to its document. Pass it to
// fsm.WithPersistence.
func (p *Persister[O]) PersistState(ctx context.Context, owner O) error {
	res, err := p.coll.UpdateOne(ctx,
		bson.M{"_id": p.ownerID(owner)},
		bson.M{"$set": bson.M{p.stateField: string(p.state(owner))}},
	)
	if err != nil {
		return errors.Join(ErrFailedToPersistState, err)
	}
	if res.MatchedCount == 0 {
		return ErrOwnerNotFound
	}
	return nil
}

// LoadState reads the durable state for the owner with the given id.
func (p *Persister[O]) LoadState(ctx context.Context, id any) (fsm.State, error) {
	var doc bson.M
	err := p.coll.FindOne(ctx,
		bson.M{"_id": id},
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrOwnerNotFound
		}
		return "", errors.Join(ErrFailedToLoadState, err)
	}

	state, _ := doc[p.stateField].(string)
	return fsm.State(state), nil
}
