// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"venus-catalog-api/internal/domain/entity"
)

// DocumentRepository 文档仓储接口
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	Update(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*entity.Document, error)

	// SetPublished 更新发布状态
	SetPublished(ctx context.Context, id string, published bool) error
}
