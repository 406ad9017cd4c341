package di

import (
	"context"
	"testing"

	"github.com/goliatone/go-cache-replay/internal/kvinfra"
	"github.com/goliatone/go-cache-replay/pkg/testsupport"
)

func TestNewContainer_RejectsInvalidConfig(t *testing.T) {
	cfg := kvinfra.DefaultConfig()
	cfg.Addr = ""

	if _, err := NewContainer(context.Background(), cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestNewContainerWithStore_WiresSingletons(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewMemoryStore()

	container, err := NewContainerWithStore(ctx, store)
	if err != nil {
		t.Fatalf("NewContainerWithStore returned error: %v", err)
	}

	if container.Store() == nil {
		t.Error("expected a store instance")
	}
	if container.Cache() == nil {
		t.Error("expected a cache instance")
	}
	if got, want := container.Store(), container.Store(); got != want {
		t.Error("expected Store to return the same singleton")
	}
	if got, want := container.Cache(), container.Cache(); got != want {
		t.Error("expected Cache to return the same singleton")
	}
}

func TestNewContainerWithStore_FlushesOnInit(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewMemoryStore()

	if err := store.Set(ctx, "leftover", "x"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if _, err := NewContainerWithStore(ctx, store); err != nil {
		t.Fatalf("NewContainerWithStore returned error: %v", err)
	}

	raw, err := store.Get(ctx, "leftover")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if raw != nil {
		t.Errorf("expected leftover key to be flushed, got %q", raw)
	}
}

func TestContainer_ConfigIsZeroForInjectedStore(t *testing.T) {
	container, err := NewContainerWithStore(context.Background(), testsupport.NewMemoryStore())
	if err != nil {
		t.Fatalf("NewContainerWithStore returned error: %v", err)
	}

	if cfg := container.Config(); cfg != (kvinfra.Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}
