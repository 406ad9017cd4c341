// Package kv defines the key-value store contract the rest of the module is
// written against, together with the exported configuration for the default
// Redis backend.
//
// # Overview
//
// The Store interface covers exactly the commands the instrumented cache and
// the replay utility issue: GET, SET, INCR, RPUSH, LRANGE, and FLUSHDB. It is
// deliberately narrow — the backend engines themselves (querying, indexing,
// persistence, replication) are external systems this module only talks to,
// never reimplements.
//
// # Backends
//
// NewStore builds the production implementation on top of
// [github.com/redis/go-redis/v9]; see the internal kvinfra package for the
// adapter. Tests use the in-memory implementation from pkg/testsupport, which
// honors the same command semantics without a server.
//
// # Missing keys
//
// Get reports a missing key as (nil, nil) rather than an error, matching the
// backend's own nil reply. Callers that need stricter semantics layer them on
// top; see the typed accessors in the cachereplay package for two different
// policies built on the same primitive.
//
// # Errors
//
// Connectivity failures are never caught at this layer: every method returns
// the backend client's error unmodified and callers decide what, if anything,
// to do about it.
package kv
