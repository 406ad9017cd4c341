// Package cachereplay provides an instrumented cache over a key-value store
// together with a replay utility that prints the recorded call history.
//
// # Overview
//
// Cache assigns a random UUID key to every stored value and layers two
// always-on decorations around the persist operation:
//
//   - CallCounter: an atomic counter under the operation identifier,
//     incremented exactly once per invocation.
//   - CallHistory: two append-only lists under the identifier plus ":inputs"
//     and ":outputs", holding the rendered argument tuple and the returned
//     key for each call at matching positions.
//
// Counting is the outer layer and history the inner one, so for a single
// call the store sees INCR, then the input append, then the SET of the
// value, then the output append. All of this state lives in the same store
// as the cached values and is wiped together with them when a new Cache is
// constructed.
//
// # Basic Usage
//
//	store, err := kv.NewStore(kv.DefaultConfig())
//	if err != nil { ... }
//	cache, err := cachereplay.New(ctx, store) // flushes the database
//	if err != nil { ... }
//
//	key, err := cache.Store(ctx, "hello")
//	s, err := cache.GetString(ctx, key) // "hello"
//
//	err = cachereplay.Replay(ctx, store, cachereplay.StoreOpID, os.Stdout)
//
// # Decoding
//
// The store keeps bytes, so values come back as bytes regardless of the type
// that went in. Get accepts an optional DecodeFunc for one-off conversions;
// GetString and GetInt are the two canned policies. They differ on missing
// data on purpose: GetString fails (ErrNoValue), GetInt returns 0. The zero
// fallback also covers undecodable bytes and non-numeric text, which makes
// GetInt the right reader for counters that may not exist yet.
//
// # Concurrency
//
// Each store command is atomic on its own, but a Store call is not atomic as
// a whole: concurrent callers may interleave between the counter increment,
// the history appends, and the value write. Per-call ordering holds; no
// cross-call serialization is added.
//
// # Errors
//
// Connectivity failures from the underlying store are never caught here —
// they propagate to the caller from whichever command hit them. Decode
// failures are policy per accessor, described above.
package cachereplay
