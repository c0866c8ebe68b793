package fsmredis

import (
	"time"

	"github.com/dmitrymomot/fsmkit/pkg/config"
)

type Config struct {
	ConnectionURL  string        `env:"FSM_REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the server, e.g. "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"FSM_REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of retry attempts to connect to the server.
	RetryInterval  time.Duration `env:"FSM_REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"FSM_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout bounds the whole connection phase.

	KeyPrefix string        `env:"FSM_REDIS_KEY_PREFIX" envDefault:"fsm:state:"` // KeyPrefix namespaces the per-owner state keys.
	StateTTL  time.Duration `env:"FSM_REDIS_STATE_TTL" envDefault:"0"`           // StateTTL expires persisted states; zero keeps them forever.
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
