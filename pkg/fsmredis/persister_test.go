package fsmredis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/fsmredis"
)

type session struct {
	id    string
	state fsm.State
}

func newTestPersister(t *testing.T, cfg fsmredis.Config) (*fsmredis.Persister[*session], *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	p := fsmredis.NewPersister(client, cfg,
		func(s *session) string { return s.id },
		func(s *session) fsm.State { return s.state },
	)
	return p, srv
}

func TestPersister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trips state", func(t *testing.T) {
		t.Parallel()

		p, _ := newTestPersister(t, fsmredis.Config{KeyPrefix: "fsm:state:"})

		s := &session{id: "s-1", state: "active"}
		require.NoError(t, p.PersistState(ctx, s))

		got, err := p.LoadState(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, fsm.State("active"), got)
	})

	t.Run("writes only the namespaced key", func(t *testing.T) {
		t.Parallel()

		p, srv := newTestPersister(t, fsmredis.Config{KeyPrefix: "fsm:state:"})

		require.NoError(t, p.PersistState(ctx, &session{id: "s-2", state: "expired"}))

		assert.Equal(t, []string{"fsm:state:s-2"}, srv.Keys())
		got, err := srv.Get("fsm:state:s-2")
		require.NoError(t, err)
		assert.Equal(t, "expired", got)
	})

	t.Run("unknown owner id", func(t *testing.T) {
		t.Parallel()

		p, _ := newTestPersister(t, fsmredis.Config{KeyPrefix: "fsm:state:"})

		_, err := p.LoadState(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, fsmredis.ErrOwnerNotFound)
	})

	t.Run("applies configured ttl", func(t *testing.T) {
		t.Parallel()

		p, srv := newTestPersister(t, fsmredis.Config{KeyPrefix: "fsm:state:", StateTTL: time.Minute})

		require.NoError(t, p.PersistState(ctx, &session{id: "s-3", state: "active"}))
		assert.Equal(t, time.Minute, srv.TTL("fsm:state:s-3"))

		srv.FastForward(2 * time.Minute)
		_, err := p.LoadState(ctx, "s-3")
		assert.ErrorIs(t, err, fsmredis.ErrOwnerNotFound)
	})

	t.Run("works as machine persistence hook", func(t *testing.T) {
		t.Parallel()

		cfg := fsmredis.Config{KeyPrefix: "fsm:state:"}
		p, srv := newTestPersister(t, cfg)

		m, err := fsm.New(
			fsm.WithStateAccessor(
				func(s *session) fsm.State { return s.state },
				func(s *session, st fsm.State) { s.state = st },
			),
			fsm.WithPersistence(p.PersistState),
			fsm.WithTransition(fsm.Transition[*session]{
				Name:   "expire",
				Source: []fsm.State{"active"},
				Target: "expired",
				Save:   true,
			}),
		)
		require.NoError(t, err)

		s := &session{id: "s-4", state: "active"}
		_, err = m.Invoke(ctx, "expire", s)
		require.NoError(t, err)

		got, err := srv.Get("fsm:state:s-4")
		require.NoError(t, err)
		assert.Equal(t, "expired", got)
	})
}
