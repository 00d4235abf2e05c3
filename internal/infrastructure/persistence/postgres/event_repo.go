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

// EventRepository 活动仓储实现
type EventRepository struct {
	client *Client
}

// NewEventRepository 创建活动仓储
func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	ctx, span := tracer.Start(ctx, "postgres.EventRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(event).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	ctx, span := tracer.Start(ctx, "postgres.EventRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var event entity.Event
	if err := db.First(&event, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	ctx, span := tracer.Start(ctx, "postgres.EventRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(event).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.EventRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Event{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]*entity.Event, error) {
	ctx, span := tracer.Start(ctx, "postgres.EventRepository.ListAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("list_all", "events").Observe(time.Since(start).Seconds())
	}()

	db := getDB(ctx, r.client.db)
	var events []*entity.Event
	if err := db.Order("start_at ASC").Find(&events).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListActive 获取给定时刻进行中的活动
func (r *EventRepository) ListActive(ctx context.Context, at time.Time) ([]*entity.Event, error) {
	ctx, span := tracer.Start(ctx, "postgres.EventRepository.ListActive")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var events []*entity.Event
	if err := db.Where("start_at <= ? AND end_at > ?", at, at).Order("start_at ASC").Find(&events).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list active events: %w", err)
	}
	return events, nil
}
