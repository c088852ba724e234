package cafe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const listCacheKey = "cafes:list"

// ListCache keeps the rendered café list in Redis so repeated list requests
// skip the primary store. Every write invalidates it.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

func (c *ListCache) Get(ctx context.Context) ([]*Cafe, bool) {
	raw, err := c.client.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var cafes []*Cafe
	if err := json.Unmarshal(raw, &cafes); err != nil {
		return nil, false
	}
	return cafes, true
}

func (c *ListCache) Set(ctx context.Context, cafes []*Cafe) error {
	raw, err := json.Marshal(cafes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listCacheKey, raw, c.ttl).Err()
}

func (c *ListCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listCacheKey).Err()
}
