// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"venus-catalog-api/internal/domain/entity"
)

// ItemRepository 道具仓储接口
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*entity.Item, error)
}
