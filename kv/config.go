package kv

import (
	"time"

	"github.com/goliatone/go-cache-replay/internal/kvinfra"
)

// Config exposes the Redis backend configuration for consumers of the kv
// package.
type Config struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is the optional AUTH credential.
	Password string

	// DB selects the logical database number.
	DB int

	// DialTimeout, ReadTimeout, and WriteTimeout are passed through to the
	// client unchanged. Zero values keep the client defaults; this layer
	// defines no timeout behavior of its own.
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns a Config targeting a local Redis on the default port.
func DefaultConfig() Config {
	return convertFromInternal(kvinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewStore constructs the default Redis-backed Store using the provided
// configuration. The returned Store holds a live client; callers own its
// lifecycle and should Close it when done.
func NewStore(cfg Config) (Store, error) {
	return kvinfra.NewRedisStore(cfg.toInternal())
}

func (c Config) toInternal() kvinfra.Config {
	return kvinfra.Config{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
}

func convertFromInternal(cfg kvinfra.Config) Config {
	return Config{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
