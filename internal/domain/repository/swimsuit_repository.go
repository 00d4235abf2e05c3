// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"venus-catalog-api/internal/domain/entity"
)

// SwimsuitRepository 泳装仓储接口
type SwimsuitRepository interface {
	Create(ctx context.Context, swimsuit *entity.Swimsuit) error
	GetByID(ctx context.Context, id string) (*entity.Swimsuit, error)
	Update(ctx context.Context, swimsuit *entity.Swimsuit) error
	Delete(ctx context.Context, id string) error

	// ListAll 获取全部泳装
	ListAll(ctx context.Context) ([]*entity.Swimsuit, error)

	// CountByCharacter 统计某角色的泳装数量
	CountByCharacter(ctx context.Context, characterID string) (int64, error)
}
