// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"venus-catalog-api/internal/domain/entity"
)

// CharacterRepository 角色仓储接口
type CharacterRepository interface {
	// Create 创建角色
	Create(ctx context.Context, character *entity.Character) error

	// GetByID 根据 ID 获取角色
	GetByID(ctx context.Context, id string) (*entity.Character, error)

	// Update 更新角色
	Update(ctx context.Context, character *entity.Character) error

	// Delete 删除角色
	Delete(ctx context.Context, id string) error

	// ListAll 获取全部角色，列表页查询在内存中完成
	ListAll(ctx context.Context) ([]*entity.Character, error)

	// SetHasSwimsuit 标记角色是否拥有泳装
	SetHasSwimsuit(ctx context.Context, id string, has bool) error
}
