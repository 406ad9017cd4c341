package docinfra

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, "Capacity"},
		{"negative capacity", func(c *Config) { c.Capacity = -1 }, "Capacity"},
		{"zero shards", func(c *Config) { c.NumShards = 0 }, "NumShards"},
		{"zero ttl", func(c *Config) { c.TTL = 0 }, "TTL"},
		{"eviction percentage zero", func(c *Config) { c.EvictionPercentage = 0 }, "EvictionPercentage"},
		{"eviction percentage over 100", func(c *Config) { c.EvictionPercentage = 101 }, "EvictionPercentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("expected error on field %s, got %s", tt.wantField, cfgErr.Field)
			}
		})
	}
}

func TestNewListCache_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumShards = 0

	if _, err := NewListCache(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestNewListCache_CachesFetchedListings(t *testing.T) {
	client, err := NewListCache(DefaultConfig())
	if err != nil {
		t.Fatalf("NewListCache returned error: %v", err)
	}

	fetches := 0
	fetch := func(ctx context.Context) ([]bson.M, error) {
		fetches++
		return []bson.M{{"n": 1}}, nil
	}

	ctx := context.Background()
	if _, err := client.GetOrFetch(ctx, "key", fetch); err != nil {
		t.Fatalf("first GetOrFetch returned error: %v", err)
	}
	if _, err := client.GetOrFetch(ctx, "key", fetch); err != nil {
		t.Fatalf("second GetOrFetch returned error: %v", err)
	}

	if fetches != 1 {
		t.Errorf("expected one fetch, got %d", fetches)
	}
}
