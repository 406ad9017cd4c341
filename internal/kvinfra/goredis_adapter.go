package kvinfra

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the configuration for the go-redis store adapter.
type Config struct {
	// Addr is the host:port of the Redis server. Must be non-empty.
	Addr string

	// Password is the optional AUTH credential. Empty means no auth.
	Password string

	// DB selects the logical database number. Must be non-negative.
	DB int

	// DialTimeout, ReadTimeout, and WriteTimeout are handed to the client
	// verbatim. Zero keeps the go-redis defaults; this adapter adds no
	// timeout logic of its own.
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns a Config targeting localhost:6379, database 0.
func DefaultConfig() Config {
	return Config{
		Addr: "localhost:6379",
		DB:   0,
	}
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	if c.Addr == "" {
		return &ConfigError{Field: "Addr", Message: "must not be empty"}
	}

	if c.DB < 0 {
		return &ConfigError{Field: "DB", Message: "must be non-negative"}
	}

	if c.DialTimeout < 0 {
		return &ConfigError{Field: "DialTimeout", Message: "must be non-negative"}
	}

	if c.ReadTimeout < 0 {
		return &ConfigError{Field: "ReadTimeout", Message: "must be non-negative"}
	}

	if c.WriteTimeout < 0 {
		return &ConfigError{Field: "WriteTimeout", Message: "must be non-negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// redisStore implements kv.Store on top of a go-redis client.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store from the provided configuration.
// It validates the configuration and initializes a go-redis client; no
// connection is attempted until the first command is issued.
//
// Version compatibility note: this adapter assumes the go-redis v9 API.
func NewRedisStore(cfg Config) (*redisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	return &redisStore{client: client}, nil
}

// Get returns the bytes stored under key. The redis.Nil reply for a missing
// key is translated into the (nil, nil) sentinel the kv.Store contract
// specifies; every other error is returned unmodified.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Set stores value under key. go-redis serializes string, []byte, integer,
// and float values natively, which is the full set this module stores.
func (s *redisStore) Set(ctx context.Context, key string, value any) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Incr atomically increments the integer at key and returns the new value.
func (s *redisStore) Incr(ctx context.Context, key string) (int64, error) {
	return s.client.Incr(ctx, key).Result()
}

// RPush appends values to the list at key and returns the new length.
func (s *redisStore) RPush(ctx context.Context, key string, values ...any) (int64, error) {
	return s.client.RPush(ctx, key, values...).Result()
}

// LRange returns the list elements between start and stop inclusive.
func (s *redisStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return s.client.LRange(ctx, key, start, stop).Result()
}

// FlushDB removes every key in the configured database.
func (s *redisStore) FlushDB(ctx context.Context) error {
	return s.client.FlushDB(ctx).Err()
}

// Close releases the client and its connection pool.
func (s *redisStore) Close() error {
	return s.client.Close()
}
