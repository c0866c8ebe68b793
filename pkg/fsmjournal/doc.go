// Package fsmjournal records successful state transitions as audit entries.
//
// The package bridges the fsm engine's observer hook to pluggable storage:
// Observer turns a Recorder into an fsm.Observer producing one Entry (uuid,
// owner id, from/to states, persisted flag, timestamp) per applied
// transition. Journaling is strictly passive — a failing Recorder is logged
// and can never veto or fail a transition.
//
// Recorders included here: MemoryRecorder (tests and development),
// SlogRecorder (structured log output), and AsyncRecorder, which buffers
// writes behind a background worker so slow storage stays off the transition
// path. Durable recorders live with their drivers, e.g. fsmpg.Journal.
//
// # Usage
//
//	journal := fsmjournal.NewMemoryRecorder()
//
//	machine := fsm.MustNew(
//	    fsm.WithStateAccessor(get, set),
//	    fsm.WithObserver(fsmjournal.Observer(journal, func(p *Post) string {
//	        return p.ID
//	    })),
//	    fsm.WithTransition(publish),
//	)
package fsmjournal
