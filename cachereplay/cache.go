package cachereplay

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/goliatone/go-cache-replay/kv"
)

const (
	// StoreOpID identifies the Cache.Store operation in the backing store:
	// it is the counter key and, with the suffixes below, the stem of the
	// history list keys. Statically assigned rather than derived from the
	// method at runtime so the identifier survives refactors and shows up
	// verbatim in replay output.
	StoreOpID = "Cache.Store"

	inputsSuffix  = ":inputs"
	outputsSuffix = ":outputs"
)

// DecodeFunc converts the raw bytes fetched from the store into a typed
// value. It receives the store's nil sentinel unchanged when the key was
// absent, so decoders define their own missing-value behavior.
type DecodeFunc func(raw []byte) (any, error)

// Cache wraps a key-value store with per-call instrumentation: every Store
// invocation increments a call counter and appends the rendered arguments
// and the returned key to append-only history lists, all co-located in the
// same store under the operation identifier. Replay reads that state back as
// a formatted trace.
type Cache struct {
	store   kv.Store
	args    ArgSerializer
	newKey  func() string
	storeFn storeOp
}

// New creates a Cache around store and flushes the store's active database
// so the cache starts empty.
//
// Destructive: the flush removes every key in the target database, not just
// keys this cache wrote. Point the store at a dedicated database.
func New(ctx context.Context, store kv.Store) (*Cache, error) {
	c := &Cache{
		store:  store,
		args:   NewTupleSerializer(),
		newKey: uuid.NewString,
	}

	// Counting is the outermost layer: the counter ticks before the input
	// history entry is written, which is written before the core persist
	// runs.
	c.storeFn = c.withCallCount(StoreOpID, c.withCallHistory(StoreOpID, c.persist))

	if err := store.FlushDB(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Store persists value under a freshly generated random key and returns that
// key. Accepted value types are string, []byte, the integer kinds, and
// floats; the store keeps bytes, so reading the key back yields bytes unless
// the caller decodes explicitly.
//
// Keys are random UUIDs with no collision check; at 122 random bits a
// collision is treated as statistically negligible.
//
// Instrumentation side effects, in order: the Cache.Store counter is
// incremented, the argument tuple is appended to the inputs history, the
// value is persisted, and the generated key is appended to the outputs
// history. Any store command failure propagates unmodified.
func (c *Cache) Store(ctx context.Context, value any) (string, error) {
	return c.storeFn(ctx, value)
}

// persist is the core operation the interceptors wrap: generate a key, set
// the value under it, hand the key back.
func (c *Cache) persist(ctx context.Context, value any) (string, error) {
	key := c.newKey()
	if err := c.store.Set(ctx, key, value); err != nil {
		return "", err
	}
	return key, nil
}

// Get fetches the raw bytes stored under key. A missing key yields
// (nil, nil). When decode is non-nil it is applied to the raw bytes —
// including the nil sentinel — and its result is returned instead.
func (c *Cache) Get(ctx context.Context, key string, decode DecodeFunc) (any, error) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if decode != nil {
		return decode(raw)
	}
	if raw == nil {
		return nil, nil
	}
	return raw, nil
}

// GetString fetches the value under key and decodes it as UTF-8 text. Unlike
// GetInt there is no fallback: an absent key is an error wrapping ErrNoValue
// and bytes that are not valid UTF-8 are an error wrapping
// ErrInvalidEncoding.
func (c *Cache) GetString(ctx context.Context, key string) (string, error) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", fmt.Errorf("%w: %q", ErrNoValue, key)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, key)
	}
	return string(raw), nil
}

// GetInt fetches the value under key and parses it as a base-10 integer.
// Every decode-level failure — missing key, non-UTF-8 bytes, non-numeric
// text — returns 0 with a nil error; returning zero instead of failing is
// the accessor's contract, not permissive error handling. Store-level
// failures still propagate.
func (c *Cache) GetInt(ctx context.Context, key string) (int, error) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if raw == nil || !utf8.Valid(raw) {
		return 0, nil
	}

	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, nil
	}
	return n, nil
}
