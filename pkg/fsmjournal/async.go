package fsmjournal

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// AsyncOptions configures the buffering behavior of an AsyncRecorder.
type AsyncOptions struct {
	BufferSize    int           // Max entries queued before falling back to synchronous writes
	RecordTimeout time.Duration // Per-entry timeout for the wrapped recorder
	Logger        *slog.Logger  // Destination for background write failures
}

// AsyncRecorder decouples journal writes from the transition path: entries are
// queued and written by a background worker, so slow storage does not stall
// invocations. When the buffer is full the write degrades to synchronous
// rather than dropping the entry.
type AsyncRecorder struct {
	inner   Recorder
	entries chan Entry
	done    chan struct{}
	wg      sync.WaitGroup
	closer  sync.Once
	timeout time.Duration
	log     *slog.Logger
}

// NewAsyncRecorder wraps inner with a buffered background writer. The
// returned close function stops the worker and drains queued entries, bounded
// by the caller's context.
func NewAsyncRecorder(inner Recorder, opts AsyncOptions) (*AsyncRecorder, func(context.Context) error) {
	if inner == nil {
		panic("fsmjournal: recorder cannot be nil")
	}

	if opts.BufferSize <= 0 {
		opts.BufferSize = 256
	}
	if opts.RecordTimeout <= 0 {
		opts.RecordTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := &AsyncRecorder{
		inner:   inner,
		entries: make(chan Entry, opts.BufferSize),
		done:    make(chan struct{}),
		timeout: opts.RecordTimeout,
		log:     opts.Logger,
	}

	r.wg.Add(1)
	go r.worker()

	return r, r.Close
}

func (r *AsyncRecorder) Record(ctx context.Context, entry Entry) error {
	select {
	case <-r.done:
		return ErrRecorderClosed
	default:
	}

	select {
	case r.entries <- entry:
		return nil
	case <-r.done:
		return ErrRecorderClosed
	default:
		// Buffer full: write synchronously instead of losing the entry.
		return r.inner.Record(ctx, entry)
	}
}

// Close stops accepting entries and drains the queue. Waiting is bounded by
// ctx; entries still queued when ctx expires are lost.
func (r *AsyncRecorder) Close(ctx context.Context) error {
	r.closer.Do(func() { close(r.done) })

	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *AsyncRecorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case entry := <-r.entries:
			r.write(entry)
		case <-r.done:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case entry := <-r.entries:
					r.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (r *AsyncRecorder) write(entry Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.inner.Record(ctx, entry); err != nil {
		r.log.ErrorContext(ctx, "failed to write journal entry",
			slog.String("transition", entry.Transition),
			slog.String("owner_id", entry.OwnerID),
			slog.Any("error", err))
	}
}
