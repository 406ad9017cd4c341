package di

import (
	"context"
	"io"

	"github.com/goliatone/go-cache-replay/cachereplay"
	"github.com/goliatone/go-cache-replay/internal/kvinfra"
	"github.com/goliatone/go-cache-replay/kv"
)

// Container provides dependency injection for the instrumented cache
// components. It manages singleton instances of the store and the cache and
// offers a convenience entry point into replay.
type Container struct {
	store  kv.Store
	cache  *cachereplay.Cache
	config kvinfra.Config
}

// NewContainer creates a new DI container with the provided store
// configuration. It builds the Redis-backed store and then the instrumented
// cache on top of it.
//
// Constructing the cache flushes the configured database; see
// cachereplay.New.
func NewContainer(ctx context.Context, config kvinfra.Config) (*Container, error) {
	store, err := kvinfra.NewRedisStore(config)
	if err != nil {
		return nil, err
	}

	cache, err := cachereplay.New(ctx, store)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Container{
		store:  store,
		cache:  cache,
		config: config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default
// configuration. This is a convenience constructor for typical use cases
// where custom configuration is not required.
func NewContainerWithDefaults(ctx context.Context) (*Container, error) {
	return NewContainer(ctx, kvinfra.DefaultConfig())
}

// NewContainerWithStore creates a container around an already-constructed
// store. This is how tests wire the in-memory store from pkg/testsupport,
// and how callers reuse a client whose lifecycle they manage themselves. The
// flush-on-init still applies.
func NewContainerWithStore(ctx context.Context, store kv.Store) (*Container, error) {
	cache, err := cachereplay.New(ctx, store)
	if err != nil {
		return nil, err
	}

	return &Container{
		store: store,
		cache: cache,
	}, nil
}

// Store returns the singleton store instance. This allows issuing raw
// commands against the same database the cache instruments.
func (c *Container) Store() kv.Store {
	return c.store
}

// Cache returns the singleton instrumented cache instance.
func (c *Container) Cache() *cachereplay.Cache {
	return c.cache
}

// Config returns a copy of the store configuration used by this container.
// Zero-valued when the container was built around an injected store.
func (c *Container) Config() kvinfra.Config {
	return c.config
}

// Replay writes the recorded trace for opID to w using the container's
// store.
func (c *Container) Replay(ctx context.Context, opID string, w io.Writer) error {
	return cachereplay.Replay(ctx, c.store, opID, w)
}

// Close releases the underlying store connection.
func (c *Container) Close() error {
	return c.store.Close()
}
