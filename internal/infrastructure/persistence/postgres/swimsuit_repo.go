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

// SwimsuitRepository 泳装仓储实现
type SwimsuitRepository struct {
	client *Client
}

// NewSwimsuitRepository 创建泳装仓储
func NewSwimsuitRepository(client *Client) *SwimsuitRepository {
	return &SwimsuitRepository{client: client}
}

// Create 创建泳装
func (r *SwimsuitRepository) Create(ctx context.Context, swimsuit *entity.Swimsuit) error {
	ctx, span := tracer.Start(ctx, "postgres.SwimsuitRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(swimsuit).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create swimsuit: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取泳装
func (r *SwimsuitRepository) GetByID(ctx context.Context, id string) (*entity.Swimsuit, error) {
	ctx, span := tracer.Start(ctx, "postgres.SwimsuitRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var swimsuit entity.Swimsuit
	if err := db.First(&swimsuit, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get swimsuit: %w", err)
	}
	return &swimsuit, nil
}

// Update 更新泳装
func (r *SwimsuitRepository) Update(ctx context.Context, swimsuit *entity.Swimsuit) error {
	ctx, span := tracer.Start(ctx, "postgres.SwimsuitRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(swimsuit).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update swimsuit: %w", err)
	}
	return nil
}

// Delete 删除泳装
func (r *SwimsuitRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.SwimsuitRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Swimsuit{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete swimsuit: %w", err)
	}
	return nil
}

// ListAll 获取全部泳装
func (r *SwimsuitRepository) ListAll(ctx context.Context) ([]*entity.Swimsuit, error) {
	ctx, span := tracer.Start(ctx, "postgres.SwimsuitRepository.ListAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("list_all", "swimsuits").Observe(time.Since(start).Seconds())
	}()

	db := getDB(ctx, r.client.db)
	var swimsuits []*entity.Swimsuit
	if err := db.Order("created_at ASC").Find(&swimsuits).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list swimsuits: %w", err)
	}
	return swimsuits, nil
}

// CountByCharacter 统计某角色的泳装数量
func (r *SwimsuitRepository) CountByCharacter(ctx context.Context, characterID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.SwimsuitRepository.CountByCharacter")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.Swimsuit{}).Where("character_id = ?", characterID).Count(&count).Error; err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to count swimsuits: %w", err)
	}
	return count, nil
}
