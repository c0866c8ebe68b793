package fsmjournal

import (
	"context"
	"log/slog"
)

// SlogRecorder emits each entry as a structured log record. Useful when log
// aggregation is the journal's durable store.
type SlogRecorder struct {
	log   *slog.Logger
	level slog.Level
}

func NewSlogRecorder(log *slog.Logger) *SlogRecorder {
	if log == nil {
		log = slog.Default()
	}
	return &SlogRecorder{log: log, level: slog.LevelInfo}
}

func (r *SlogRecorder) Record(ctx context.Context, entry Entry) error {
	r.log.Log(ctx, r.level, "state transition",
		slog.String("id", entry.ID.String()),
		slog.String("owner_id", entry.OwnerID),
		slog.String("transition", entry.Transition),
		slog.String("from", string(entry.From)),
		slog.String("to", string(entry.To)),
		slog.Bool("persisted", entry.Persisted),
		slog.Time("created_at", entry.CreatedAt),
	)
	return nil
}
