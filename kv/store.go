package kv

import "context"

// Store is the minimal command surface this module needs from a key-value
// store backend. Every method issues a single blocking command and returns
// whatever the backend reports; no retries, timeouts, or pooling are layered
// on top at this level.
type Store interface {
	// Get returns the raw bytes stored under key. A missing key returns
	// (nil, nil): the nil slice is the store's "no value" sentinel, not an
	// error condition.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key verbatim. Supported value types are
	// string, []byte, the integer kinds, and float32/float64; everything
	// round-trips back through Get as bytes, so callers that want the
	// original type back decode explicitly.
	Set(ctx context.Context, key string, value any) error

	// Incr atomically increments the integer stored under key, creating it
	// at 0 first if absent, and returns the new value. It errors when the
	// held value is not an integer.
	Incr(ctx context.Context, key string) (int64, error)

	// RPush appends values to the tail of the list stored under key and
	// returns the resulting list length.
	RPush(ctx context.Context, key string, values ...any) (int64, error)

	// LRange returns the list elements between start and stop inclusive.
	// Negative indexes count from the tail, so (0, -1) is the whole list.
	// A missing key yields an empty slice.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// FlushDB removes every key in the active database. Destructive and
	// not limited to keys written through this module.
	FlushDB(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
