package catalog

import (
	"context"
	"time"

	"venus-catalog-api/internal/application/query"
	"venus-catalog-api/internal/domain/entity"
	"venus-catalog-api/internal/domain/repository"
	"venus-catalog-api/internal/infrastructure/persistence/redis"
	apperrors "venus-catalog-api/pkg/errors"
)

// EventService 活动应用服务
type EventService struct {
	repo        repository.EventRepository
	col         *collection
	invalidator *Invalidator
	now         func() time.Time
}

// NewEventService 创建活动应用服务
func NewEventService(repo repository.EventRepository, cache *redis.Cache, ttl time.Duration, invalidator *Invalidator) (*EventService, error) {
	svc := &EventService{
		repo:        repo,
		invalidator: invalidator,
		now:         time.Now,
	}
	col, err := newCollection(EntityEvent, EventSpecs(), cache, ttl, svc.loadRecords)
	if err != nil {
		return nil, err
	}
	svc.col = col
	return svc, nil
}

func (s *EventService) loadRecords(ctx context.Context) ([]query.Record, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]query.Record, 0, len(events))
	for _, e := range events {
		records = append(records, EventRecord(e))
	}
	return records, nil
}

// List 活动列表查询
func (s *EventService) List(ctx context.Context, in query.Input) (*query.Result, error) {
	return s.col.List(ctx, in)
}

// ListActive 当前进行中的活动
func (s *EventService) ListActive(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.repo.ListActive(ctx, s.now())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list active events")
	}
	return events, nil
}

// Specs 活动列表过滤器声明
func (s *EventService) Specs() []query.FilterFieldSpec {
	return s.col.Specs()
}

// Get 获取单个活动
func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get event")
	}
	if event == nil {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

// Create 创建活动
func (s *EventService) Create(ctx context.Context, event *entity.Event) error {
	if event.EndAt.Before(event.StartAt) {
		return apperrors.ErrInvalidParam.WithDetail("end_at must not precede start_at")
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create event")
	}
	s.invalidator.Invalidate(EntityEvent)
	return nil
}

// Update 更新活动
func (s *EventService) Update(ctx context.Context, event *entity.Event) error {
	existing, err := s.repo.GetByID(ctx, event.ID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get event")
	}
	if existing == nil {
		return apperrors.ErrEventNotFound
	}
	if event.EndAt.Before(event.StartAt) {
		return apperrors.ErrInvalidParam.WithDetail("end_at must not precede start_at")
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update event")
	}
	s.invalidator.Invalidate(EntityEvent)
	return nil
}

// Delete 删除活动
func (s *EventService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get event")
	}
	if existing == nil {
		return apperrors.ErrEventNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete event")
	}
	s.invalidator.Invalidate(EntityEvent)
	return nil
}
