// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"time"

	"venus-catalog-api/internal/domain/entity"
)

// EventRepository 活动仓储接口
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*entity.Event, error)

	// ListActive 获取给定时刻进行中的活动
	ListActive(ctx context.Context, at time.Time) ([]*entity.Event, error)
}
