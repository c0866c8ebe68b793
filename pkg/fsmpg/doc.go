// Package fsmpg persists owner state and transition journals in PostgreSQL.
//
// The package is the storage collaborator the fsm engine consumes: a
// Persister whose PersistState writes the state column of the owner's row and
// nothing else, a Journal implementing fsmjournal.Recorder, pool Connect with
// retry, a health check closure and goose-backed schema migrations.
//
// # Usage
//
//	cfg, err := fsmpg.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pool, err := fsmpg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	persister := fsmpg.NewPersister(pool,
//		fsmpg.Table{Name: "posts"},
//		func(p *Post) any { return p.ID },
//		func(p *Post) fsm.State { return p.State },
//	)
//
//	machine := fsm.MustNew(
//		fsm.WithStateAccessor(getState, setState),
//		fsm.WithPersistence(persister.PersistState),
//		fsm.WithTransition(publish), // Save: true
//	)
//
// Transitions declared with Save now write through to the posts.state column
// after each successful in-memory mutation.
package fsmpg
