// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"venus-catalog-api/internal/domain/entity"
	"venus-catalog-api/pkg/metrics"
)

// ItemRepository 道具仓储实现
type ItemRepository struct {
	client *Client
}

// NewItemRepository 创建道具仓储
func NewItemRepository(client *Client) *ItemRepository {
	return &ItemRepository{client: client}
}

func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	ctx, span := tracer.Start(ctx, "postgres.ItemRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(item).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	ctx, span := tracer.Start(ctx, "postgres.ItemRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var item entity.Item
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	ctx, span := tracer.Start(ctx, "postgres.ItemRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(item).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.ItemRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Item{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]*entity.Item, error) {
	ctx, span := tracer.Start(ctx, "postgres.ItemRepository.ListAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("list_all", "items").Observe(time.Since(start).Seconds())
	}()

	db := getDB(ctx, r.client.db)
	var items []*entity.Item
	if err := db.Order("created_at ASC").Find(&items).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
