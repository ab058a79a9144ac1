package cache

import (
	"context"
	"encoding/json"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

// GetJSON decodes a cached value into dst. A miss or an undecodable entry
// reports false.
func GetJSON(ctx context.Context, c Cache, key string, dst any) bool {
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// SetJSON stores v best-effort; cache failures never fail a request.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, raw, ttl)
}
