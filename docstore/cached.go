package docstore

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/goliatone/go-cache-replay/internal/docinfra"
)

// KeySeparator delimits the segments of a listing cache key.
const KeySeparator = "::"

// CacheConfig exposes the listing-cache configuration for consumers of the
// docstore package.
type CacheConfig struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
}

// DefaultCacheConfig returns a CacheConfig populated with sensible defaults.
func DefaultCacheConfig() CacheConfig {
	return convertFromInternal(docinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c CacheConfig) Validate() error {
	return c.toInternal().Validate()
}

// CachedLister decorates ListAll with an in-process read-through cache, so
// repeated listings of the same collection hit the document store at most
// once per TTL window.
type CachedLister struct {
	coll  Collection
	cache *sturdyc.Client[[]bson.M]
	key   string
}

// NewCachedLister creates a CachedLister over coll. The name identifies the
// collection in the cache keyspace and should be stable across calls —
// typically the collection's own name.
func NewCachedLister(coll Collection, name string, cfg CacheConfig) (*CachedLister, error) {
	cache, err := docinfra.NewListCache(cfg.toInternal())
	if err != nil {
		return nil, err
	}

	return &CachedLister{
		coll:  coll,
		cache: cache,
		key:   "ListAll" + KeySeparator + name,
	}, nil
}

// ListAll returns the cached listing for the collection, fetching it from
// the document store on a miss or after the TTL lapses. The fetch delegates
// to the package-level ListAll, so nil-handle and error semantics are
// identical to the uncached path.
func (l *CachedLister) ListAll(ctx context.Context) ([]bson.M, error) {
	return l.cache.GetOrFetch(ctx, l.key, func(ctx context.Context) ([]bson.M, error) {
		return ListAll(ctx, l.coll)
	})
}

func (c CacheConfig) toInternal() docinfra.Config {
	return docinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg docinfra.Config) CacheConfig {
	return CacheConfig{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
