// Package fsmmongo persists owner state in MongoDB.
//
// It is a storage collaborator for the fsm engine: Persister.PersistState
// issues a $set on the configured state field of the owner's document and
// satisfies fsm.PersistFunc; LoadState rehydrates owners. New/Healthcheck
// handle client wiring with retry.
//
// # Usage
//
//	cfg, err := fsmmongo.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	db, err := fsmmongo.NewWithDatabase(ctx, cfg, "app")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	persister := fsmmongo.NewPersister(db.Collection("orders"), cfg,
//		func(o *Order) any { return o.ID },
//		func(o *Order) fsm.State { return o.State },
//	)
//
//	machine := fsm.MustNew(
//		fsm.WithStateAccessor(getState, setState),
//		fsm.WithPersistence(persister.PersistState),
//		fsm.WithTransition(ship), // Save: true
//	)
package fsmmongo
