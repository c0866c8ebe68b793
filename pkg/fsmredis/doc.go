// Package fsmredis persists owner state in Redis.
//
// It is a storage collaborator for the fsm engine: Persister.PersistState
// writes the owner's state value under "<prefix><owner-id>" and satisfies
// fsm.PersistFunc, LoadState rehydrates owners, and Connect/Healthcheck
// handle client wiring with retry.
//
// # Usage
//
//	cfg, err := fsmredis.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := fsmredis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	persister := fsmredis.NewPersister(client, cfg,
//		func(s *Session) string { return s.ID },
//		func(s *Session) fsm.State { return s.State },
//	)
//
//	machine := fsm.MustNew(
//		fsm.WithStateAccessor(getState, setState),
//		fsm.WithPersistence(persister.PersistState),
//		fsm.WithTransition(expire), // Save: true
//	)
package fsmredis
