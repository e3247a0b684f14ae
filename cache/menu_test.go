package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNilMenuCacheIsNoop(t *testing.T) {
	var m *MenuCache
	ctx := context.Background()

	var dst []string
	assert.False(t, m.Load(ctx, KeyCategories, &dst))
	m.Store(ctx, KeyCategories, []string{"Pizzas"})
	m.Invalidate(ctx)
	assert.NoError(t, m.Ping(ctx))
}

func TestUnreachableRedisMisses(t *testing.T) {
	rdb := NewRedisClient("127.0.0.1:1", "", 0)
	defer rdb.Close()
	m := NewMenuCache(rdb, time.Minute, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.Error(t, m.Ping(ctx))

	var dst []string
	assert.False(t, m.Load(ctx, KeyFeatured, &dst))
	m.Store(ctx, KeyFeatured, []string{"x"})
	assert.Empty(t, dst)
}
