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

// SkillRepository 技能仓储实现
type SkillRepository struct {
	client *Client
}

// NewSkillRepository 创建技能仓储
func NewSkillRepository(client *Client) *SkillRepository {
	return &SkillRepository{client: client}
}

func (r *SkillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	ctx, span := tracer.Start(ctx, "postgres.SkillRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(skill).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id string) (*entity.Skill, error) {
	ctx, span := tracer.Start(ctx, "postgres.SkillRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var skill entity.Skill
	if err := db.First(&skill, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &skill, nil
}

func (r *SkillRepository) Update(ctx context.Context, skill *entity.Skill) error {
	ctx, span := tracer.Start(ctx, "postgres.SkillRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(skill).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.SkillRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Skill{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) ListAll(ctx context.Context) ([]*entity.Skill, error) {
	ctx, span := tracer.Start(ctx, "postgres.SkillRepository.ListAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("list_all", "skills").Observe(time.Since(start).Seconds())
	}()

	db := getDB(ctx, r.client.db)
	var skills []*entity.Skill
	if err := db.Order("created_at ASC").Find(&skills).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}
