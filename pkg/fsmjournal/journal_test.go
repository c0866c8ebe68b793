package fsmjournal_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/fsmjournal"
)

type ticket struct {
	id    string
	state fsm.State
}

func newTicketMachine(t *testing.T, rec fsmjournal.Recorder, opts ...fsmjournal.ObserverOption) *fsm.Machine[*ticket] {
	t.Helper()

	m, err := fsm.New(
		fsm.WithStateAccessor(
			func(tk *ticket) fsm.State { return tk.state },
			func(tk *ticket, s fsm.State) { tk.state = s },
		),
		fsm.WithObserver(fsmjournal.Observer(rec, func(tk *ticket) string { return tk.id }, opts...)),
		fsm.WithTransitions(
			fsm.Transition[*ticket]{
				Name:   "assign",
				Source: []fsm.State{"open"},
				Target: "assigned",
			},
			fsm.Transition[*ticket]{
				Name:   "close",
				Source: []fsm.State{"assigned"},
				Target: "closed",
			},
		),
	)
	require.NoError(t, err)
	return m
}

func TestObserver(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("one entry per successful transition", func(t *testing.T) {
		t.Parallel()

		rec := fsmjournal.NewMemoryRecorder()
		now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		m := newTicketMachine(t, rec, fsmjournal.WithClock(func() time.Time { return now }))

		tk := &ticket{id: "t-1", state: "open"}
		_, err := m.Invoke(ctx, "assign", tk)
		require.NoError(t, err)
		_, err = m.Invoke(ctx, "close", tk)
		require.NoError(t, err)

		entries := rec.Entries()
		require.Len(t, entries, 2)

		assert.NotEqual(t, uuid.Nil, entries[0].ID)
		assert.Equal(t, "t-1", entries[0].OwnerID)
		assert.Equal(t, "assign", entries[0].Transition)
		assert.Equal(t, fsm.State("open"), entries[0].From)
		assert.Equal(t, fsm.State("assigned"), entries[0].To)
		assert.False(t, entries[0].Persisted)
		assert.Equal(t, now, entries[0].CreatedAt)

		assert.Equal(t, "close", entries[1].Transition)
	})

	t.Run("failed invocations record nothing", func(t *testing.T) {
		t.Parallel()

		rec := fsmjournal.NewMemoryRecorder()
		m := newTicketMachine(t, rec)

		tk := &ticket{id: "t-2", state: "open"}
		_, err := m.Invoke(ctx, "close", tk)
		require.Error(t, err)
		assert.Empty(t, rec.Entries())
	})

	t.Run("recorder failure never reaches the caller", func(t *testing.T) {
		t.Parallel()

		m := newTicketMachine(t, failingRecorder{})

		tk := &ticket{id: "t-3", state: "open"}
		_, err := m.Invoke(ctx, "assign", tk)
		require.NoError(t, err)
		assert.Equal(t, fsm.State("assigned"), tk.state)
	})
}

type failingRecorder struct{}

func (failingRecorder) Record(ctx context.Context, entry fsmjournal.Entry) error {
	return errors.New("storage down")
}

func TestMemoryRecorder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rec := fsmjournal.NewMemoryRecorder()
	for _, owner := range []string{"a", "b", "a"} {
		require.NoError(t, rec.Record(ctx, fsmjournal.Entry{ID: uuid.New(), OwnerID: owner}))
	}

	assert.Len(t, rec.Entries(), 3)
	assert.Len(t, rec.ByOwner("a"), 2)
	assert.Len(t, rec.ByOwner("b"), 1)
	assert.Empty(t, rec.ByOwner("c"))

	rec.Reset()
	assert.Empty(t, rec.Entries())
}

// blockingRecorder releases entries only when signaled, to exercise the async
// buffer path deterministically. When started is set it is closed once the
// first write begins, so tests can wait for the worker to park inside Record.
type blockingRecorder struct {
	mu        sync.Mutex
	entries   []fsmjournal.Entry
	release   chan struct{}
	started   chan struct{}
	startOnce sync.Once
}

func (r *blockingRecorder) Record(ctx context.Context, entry fsmjournal.Entry) error {
	if r.started != nil {
		r.startOnce.Do(func() { close(r.started) })
	}
	<-r.release
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *blockingRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestAsyncRecorder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes are drained on close", func(t *testing.T) {
		t.Parallel()

		inner := &blockingRecorder{release: make(chan struct{})}
		async, closeFn := fsmjournal.NewAsyncRecorder(inner, fsmjournal.AsyncOptions{BufferSize: 8})

		for i := 0; i < 5; i++ {
			require.NoError(t, async.Record(ctx, fsmjournal.Entry{ID: uuid.New()}))
		}
		close(inner.release)

		closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		require.NoError(t, closeFn(closeCtx))
		assert.Equal(t, 5, inner.count())
	})

	t.Run("record after close fails", func(t *testing.T) {
		t.Parallel()

		inner := fsmjournal.NewMemoryRecorder()
		async, closeFn := fsmjournal.NewAsyncRecorder(inner, fsmjournal.AsyncOptions{})
		require.NoError(t, closeFn(ctx))

		err := async.Record(ctx, fsmjournal.Entry{ID: uuid.New()})
		require.Error(t, err)
		assert.ErrorIs(t, err, fsmjournal.ErrRecorderClosed)
	})

	t.Run("full buffer degrades to synchronous write", func(t *testing.T) {
		t.Parallel()

		inner := &blockingRecorder{release: make(chan struct{}), started: make(chan struct{})}
		async, closeFn := fsmjournal.NewAsyncRecorder(inner, fsmjournal.AsyncOptions{BufferSize: 1})

		// First entry occupies the worker: wait for it to park inside the
		// recorder before queuing the second, so the second is guaranteed to
		// fill the buffer and the third to take the synchronous path.
		require.NoError(t, async.Record(ctx, fsmjournal.Entry{ID: uuid.New()}))
		<-inner.started
		require.NoError(t, async.Record(ctx, fsmjournal.Entry{ID: uuid.New()}))

		go func() {
			time.Sleep(50 * time.Millisecond)
			close(inner.release)
		}()
		require.NoError(t, async.Record(ctx, fsmjournal.Entry{ID: uuid.New()}))

		closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		require.NoError(t, closeFn(closeCtx))
		assert.Equal(t, 3, inner.count())
	})
}
