package cafe

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *ListCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewListCache(client, time.Minute)
}

func TestListCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected cache miss on empty cache")
	}

	cafes := []*Cafe{
		{ID: "cafe_1", Name: "Beanhi"},
		{ID: "cafe_2", Name: "Brew & Co"},
	}
	if err := cache.Set(ctx, cafes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := cache.Get(ctx)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 || got[0].Name != "Beanhi" {
		t.Errorf("unexpected cached list: %+v", got)
	}
}

func TestListCacheInvalidate(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, []*Cafe{{ID: "cafe_1"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected cache miss after invalidation")
	}
}

func TestServiceUsesListCache(t *testing.T) {
	cache := newTestCache(t)
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, cache)
	ctx := context.Background()

	if _, err := service.CreateCafe(ctx, Form{Name: "Beanhi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First list populates the cache.
	if _, err := service.ListCafes(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.Get(ctx); !ok {
		t.Fatal("expected cache populated after list")
	}

	// A write invalidates it.
	if _, err := service.CreateCafe(ctx, Form{Name: "Brew & Co"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected cache invalidated after create")
	}
}
