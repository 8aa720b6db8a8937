package cache

import (
	"context"
	"encoding/json"
	"time"

	"Tably/types"

	"github.com/redis/go-redis/v9"
)

const (
	menuCacheKey = "tably:menu:items"
	menuCacheTTL = 5 * time.Minute
)

// MenuStorage is a read cache for the full menu listing. Catalog writes
// invalidate it; a stale miss just falls through to MySQL.
type MenuStorage struct {
	redis *redis.Client
}

func NewMenuStorage(rds *redis.Client) *MenuStorage {
	return &MenuStorage{redis: rds}
}

func (m *MenuStorage) Get(ctx context.Context) ([]types.ItemView, bool) {
	val, err := m.redis.Get(ctx, menuCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var items []types.ItemView
	if json.Unmarshal([]byte(val), &items) != nil {
		return nil, false
	}
	return items, true
}

func (m *MenuStorage) Set(ctx context.Context, items []types.ItemView) error {
	text, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return m.redis.Set(ctx, menuCacheKey, text, menuCacheTTL).Err()
}

func (m *MenuStorage) Invalidate(ctx context.Context) error {
	return m.redis.Del(ctx, menuCacheKey).Err()
}
