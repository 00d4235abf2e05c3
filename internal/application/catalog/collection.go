package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"venus-catalog-api/internal/application/query"
	"venus-catalog-api/internal/infrastructure/persistence/redis"
	apperrors "venus-catalog-api/pkg/errors"
	"venus-catalog-api/pkg/logger"
	"venus-catalog-api/pkg/metrics"
)

var tracer = otel.Tracer("catalog")

// collection 单个实体集合的列表查询管线：
// 缓存读穿 -> 反序列化 -> 查询引擎。
type collection struct {
	name   string
	engine *query.Engine
	cache  *redis.Cache
	ttl    time.Duration
	load   func(ctx context.Context) ([]query.Record, error)
}

func newCollection(name string, specs []query.FilterFieldSpec, cache *redis.Cache, ttl time.Duration, load func(ctx context.Context) ([]query.Record, error)) (*collection, error) {
	engine, err := query.NewEngine(specs)
	if err != nil {
		return nil, fmt.Errorf("invalid filter specs for %s: %w", name, err)
	}
	return &collection{
		name:   name,
		engine: engine,
		cache:  cache,
		ttl:    ttl,
		load:   load,
	}, nil
}

// List 执行列表查询
func (c *collection) List(ctx context.Context, in query.Input) (*query.Result, error) {
	ctx, span := tracer.Start(ctx, "catalog.List",
		trace.WithAttributes(attribute.String("catalog.entity", c.name)))
	defer span.End()

	start := time.Now()

	records, err := c.records(ctx)
	if err != nil {
		metrics.CatalogQueryTotal.WithLabelValues(c.name, "error").Inc()
		span.RecordError(err)
		return nil, err
	}

	result, err := c.engine.Query(records, in)
	if err != nil {
		metrics.CatalogQueryTotal.WithLabelValues(c.name, "error").Inc()
		span.RecordError(err)
		if query.IsConfigurationError(err) {
			return nil, apperrors.Wrap(err, apperrors.CodeQueryConfigError, "invalid query configuration")
		}
		return nil, err
	}

	metrics.CatalogQueryTotal.WithLabelValues(c.name, "ok").Inc()
	metrics.CatalogQueryDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	metrics.CatalogRecordsScanned.WithLabelValues(c.name).Observe(float64(len(records)))
	metrics.CatalogRecordsMatched.WithLabelValues(c.name).Observe(float64(result.Metadata.Total))

	span.SetAttributes(
		attribute.Int("catalog.scanned", len(records)),
		attribute.Int("catalog.matched", result.Metadata.Total),
	)
	return result, nil
}

// records 获取集合记录，优先走缓存，缓存不可用时直连仓储
func (c *collection) records(ctx context.Context) ([]query.Record, error) {
	key := redis.CollectionKey(c.name)

	loaded := false
	raw, err := c.cache.GetOrLoadSafe(ctx, key, c.ttl, func() (interface{}, error) {
		loaded = true
		return c.load(ctx)
	})
	if err != nil {
		if loaded {
			return nil, err
		}
		// 缓存故障降级为直接读库
		logger.Warn(ctx, "collection cache unavailable, falling back to repository",
			"entity", c.name, "error", err)
		return c.load(ctx)
	}

	if loaded {
		metrics.CacheMissTotal.WithLabelValues(c.name).Inc()
	} else {
		metrics.CacheHitTotal.WithLabelValues(c.name).Inc()
	}

	var records []query.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode cached collection %s: %w", c.name, err)
	}
	return records, nil
}

// Specs 返回集合的过滤器声明
func (c *collection) Specs() []query.FilterFieldSpec {
	return c.engine.Specs()
}
