package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "menu:"

const (
	KeyCategories = keyPrefix + "categories"
	KeyFeatured   = keyPrefix + "featured"
)

// MenuCache stores rendered catalog reads in Redis. A nil *MenuCache is a
// valid cache that never hits.
type MenuCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func NewMenuCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *MenuCache {
	return &MenuCache{rdb: rdb, ttl: ttl, log: log}
}

// Load decodes the cached value of key into dst and reports whether it was found.
func (m *MenuCache) Load(ctx context.Context, key string, dst any) bool {
	if m == nil || m.rdb == nil {
		return false
	}
	raw, err := m.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			m.log.Warn("menu cache get", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		m.log.Warn("menu cache decode", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (m *MenuCache) Store(ctx context.Context, key string, v any) {
	if m == nil || m.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		m.log.Warn("menu cache encode", zap.String("key", key), zap.Error(err))
		return
	}
	if err := m.rdb.Set(ctx, key, raw, m.ttl).Err(); err != nil {
		m.log.Warn("menu cache set", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops every menu key after a catalog write.
func (m *MenuCache) Invalidate(ctx context.Context) {
	if m == nil || m.rdb == nil {
		return
	}
	if err := m.rdb.Del(ctx, KeyCategories, KeyFeatured).Err(); err != nil {
		m.log.Warn("menu cache invalidate", zap.Error(err))
	}
}

func (m *MenuCache) Ping(ctx context.Context) error {
	if m == nil || m.rdb == nil {
		return nil
	}
	return m.rdb.Ping(ctx).Err()
}
