package catalog

import (
	"context"
	"sync"
	"time"

	"venus-catalog-api/internal/application/query"
	"venus-catalog-api/internal/infrastructure/persistence/redis"
	"venus-catalog-api/pkg/logger"
)

// Invalidator 把连续写操作触发的缓存失效合并为一次，
// 每个实体集合各有一个去抖器。
type Invalidator struct {
	cache *redis.Cache
	delay time.Duration

	mu         sync.Mutex
	debouncers map[string]*query.Debouncer[string]
}

// NewInvalidator 创建缓存失效器
func NewInvalidator(cache *redis.Cache, delay time.Duration) *Invalidator {
	return &Invalidator{
		cache:      cache,
		delay:      delay,
		debouncers: make(map[string]*query.Debouncer[string]),
	}
}

// Invalidate 请求使某实体集合缓存失效，连续请求被合并
func (i *Invalidator) Invalidate(entityName string) {
	i.mu.Lock()
	d, ok := i.debouncers[entityName]
	if !ok {
		d = query.NewDebouncer(func(name string) {
			ctx := context.Background()
			if err := i.cache.InvalidateCollection(ctx, name); err != nil {
				logger.Error(ctx, "failed to invalidate collection cache", err, "entity", name)
			}
		})
		i.debouncers[entityName] = d
	}
	i.mu.Unlock()

	d.Observe(entityName, i.delay)
}

// Stop 停止全部去抖器，丢弃尚未触发的失效
func (i *Invalidator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, d := range i.debouncers {
		d.Stop()
	}
}
