package fsmjournal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Entry is one recorded state transition.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Transition string    `json:"transition"`
	From       fsm.State `json:"from"`
	To         fsm.State `json:"to"`
	Persisted  bool      `json:"persisted"`
	CreatedAt  time.Time `json:"created_at"`
}

// Recorder stores journal entries. Implementations must tolerate concurrent
// calls; entries for one owner arrive in invocation order because the engine
// serializes per-owner transitions.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// ObserverOption configures the observer bridge.
type ObserverOption func(*observerConfig)

type observerConfig struct {
	log *slog.Logger
	now func() time.Time
}

// WithLogger routes recorder failures through log instead of discarding them.
func WithLogger(log *slog.Logger) ObserverOption {
	return func(c *observerConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock overrides the entry timestamp source.
func WithClock(now func() time.Time) ObserverOption {
	return func(c *observerConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// Observer adapts a Recorder into an fsm.Observer. Each successful transition
// produces one entry; ownerID extracts a stable identifier for the owner.
// Recorder failures are logged and swallowed so journaling can never fail or
// veto a transition.
func Observer[O any](rec Recorder, ownerID func(O) string, opts ...ObserverOption) fsm.Observer[O] {
	if rec == nil {
		panic("fsmjournal: recorder cannot be nil")
	}
	if ownerID == nil {
		panic("fsmjournal: owner id extractor cannot be nil")
	}

	cfg := observerConfig{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx context.Context, change fsm.Change[O]) {
		entry := Entry{
			ID:         uuid.New(),
			OwnerID:    ownerID(change.Owner),
			Transition: change.Transition,
			From:       change.From,
			To:         change.To,
			Persisted:  change.Persisted,
			CreatedAt:  cfg.now().UTC(),
		}
		if err := rec.Record(ctx, entry); err != nil {
			cfg.log.ErrorContext(ctx, "failed to record transition",
				slog.String("transition", entry.Transition),
				slog.String("owner_id", entry.OwnerID),
				slog.Any("error", err))
		}
	}
}
