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

// CharacterRepository 角色仓储实现
type CharacterRepository struct {
	client *Client
}

// NewCharacterRepository 创建角色仓储
func NewCharacterRepository(client *Client) *CharacterRepository {
	return &CharacterRepository{client: client}
}

// Create 创建角色
func (r *CharacterRepository) Create(ctx context.Context, character *entity.Character) error {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(character).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取角色
func (r *CharacterRepository) GetByID(ctx context.Context, id string) (*entity.Character, error) {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var character entity.Character
	if err := db.First(&character, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return &character, nil
}

// Update 更新角色
func (r *CharacterRepository) Update(ctx context.Context, character *entity.Character) error {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(character).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

// Delete 删除角色
func (r *CharacterRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Character{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

// ListAll 获取全部角色
func (r *CharacterRepository) ListAll(ctx context.Context) ([]*entity.Character, error) {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.ListAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("list_all", "characters").Observe(time.Since(start).Seconds())
	}()

	db := getDB(ctx, r.client.db)
	var characters []*entity.Character
	if err := db.Order("created_at ASC").Find(&characters).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

// SetHasSwimsuit 标记角色是否拥有泳装
func (r *CharacterRepository) SetHasSwimsuit(ctx context.Context, id string, has bool) error {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.SetHasSwimsuit")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Character{}).Where("id = ?", id).Update("has_swimsuit", has).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to set has_swimsuit: %w", err)
	}
	return nil
}
