// Package testsupport provides shared helpers for tests across the module,
// chiefly an in-memory kv.Store that honors the Redis command semantics the
// production adapter relies on. It lives under pkg so integration tests in
// other packages can wire it wherever a real store would go.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// ErrNotInteger is returned by Incr when the value held under the key cannot
// be parsed as an integer, mirroring the Redis error for the same condition.
var ErrNotInteger = errors.New("value is not an integer or out of range")

// ErrWrongType is returned when a command touches a key holding the other
// kind of value (string command on a list key or vice versa).
var ErrWrongType = errors.New("operation against a key holding the wrong kind of value")

// MemoryStore is an in-memory kv.Store implementation. All operations are
// safe for concurrent use; each method call is atomic, same as the single
// commands it stands in for.
type MemoryStore struct {
	mu      sync.RWMutex
	strings map[string][]byte
	lists   map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		strings: make(map[string][]byte),
		lists:   make(map[string][]string),
	}
}

// Get returns the bytes under key, or (nil, nil) when the key is absent.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.lists[key]; ok {
		return nil, ErrWrongType
	}
	val, ok := s.strings[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// Set stores value under key, encoding it the way the Redis client would.
func (s *MemoryStore) Set(ctx context.Context, key string, value any) error {
	encoded, err := encodeValue(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.lists, key)
	s.strings[key] = encoded
	return nil
}

// Incr increments the integer under key, creating it at 0 first if absent,
// and returns the new value.
func (s *MemoryStore) Incr(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[key]; ok {
		return 0, ErrWrongType
	}

	var current int64
	if raw, ok := s.strings[key]; ok {
		parsed, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return 0, ErrNotInteger
		}
		current = parsed
	}

	current++
	s.strings[key] = []byte(strconv.FormatInt(current, 10))
	return current, nil
}

// RPush appends values to the tail of the list under key and returns the new
// list length.
func (s *MemoryStore) RPush(ctx context.Context, key string, values ...any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.strings[key]; ok {
		return 0, ErrWrongType
	}

	for _, v := range values {
		encoded, err := encodeValue(v)
		if err != nil {
			return 0, err
		}
		s.lists[key] = append(s.lists[key], string(encoded))
	}
	return int64(len(s.lists[key])), nil
}

// LRange returns list elements between start and stop inclusive, with Redis
// negative-index semantics. A missing key yields an empty slice.
func (s *MemoryStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.strings[key]; ok {
		return nil, ErrWrongType
	}

	list := s.lists[key]
	n := int64(len(list))

	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return []string{}, nil
	}

	out := make([]string, 0, stop-start+1)
	out = append(out, list[start:stop+1]...)
	return out, nil
}

// FlushDB removes every key.
func (s *MemoryStore) FlushDB(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.strings = make(map[string][]byte)
	s.lists = make(map[string][]string)
	return nil
}

// Close is a no-op; the store holds no external resources.
func (s *MemoryStore) Close() error {
	return nil
}

// Len reports the total number of live keys. Test-only convenience, not part
// of the kv.Store contract.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.strings) + len(s.lists)
}

// encodeValue flattens a store value to bytes the way go-redis encodes
// command arguments.
func encodeValue(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case int:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	case uint:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return []byte(strconv.FormatUint(v, 10)), nil
	case float32:
		return []byte(strconv.FormatFloat(float64(v), 'f', -1, 32)), nil
	case float64:
		return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", value)
	}
}
