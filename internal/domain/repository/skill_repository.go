// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"venus-catalog-api/internal/domain/entity"
)

// SkillRepository 技能仓储接口
type SkillRepository interface {
	Create(ctx context.Context, skill *entity.Skill) error
	GetByID(ctx context.Context, id string) (*entity.Skill, error)
	Update(ctx context.Context, skill *entity.Skill) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*entity.Skill, error)
}
