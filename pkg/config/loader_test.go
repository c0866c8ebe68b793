package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/config"
)

type storeConfig struct {
	URL    string   `env:"TEST_STORE_URL"`
	Table  string   `env:"TEST_STORE_TABLE" envDefault:"fsm_states"`
	Labels []string `env:"TEST_STORE_LABELS" envSeparator:","`
}

type requiredConfig struct {
	URL string `env:"TEST_STORE_REQUIRED_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env with defaults", func(t *testing.T) {
		t.Setenv("TEST_STORE_URL", "postgres://localhost:5432/app")
		t.Setenv("TEST_STORE_LABELS", "orders,invoices")

		var cfg storeConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "postgres://localhost:5432/app", cfg.URL)
		assert.Equal(t, "fsm_states", cfg.Table)
		assert.Equal(t, []string{"orders", "invoices"}, cfg.Labels)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		err := config.Load[storeConfig](nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads files in order", func(t *testing.T) {
		require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

		var cfg storeConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "postgres://override:5432/app", cfg.URL)
		assert.Equal(t, "overridden", cfg.Table)
	})

	t.Run("missing file fails", func(t *testing.T) {
		err := config.LoadEnv("testdata/.env.missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no paths fails", func(t *testing.T) {
		err := config.LoadEnv()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrNoEnvFiles)
	})

	t.Run("must load env panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoadEnv("testdata/.env.missing")
		})
	})
}
