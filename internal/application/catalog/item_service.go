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

// ItemService 道具应用服务
type ItemService struct {
	repo        repository.ItemRepository
	col         *collection
	invalidator *Invalidator
}

// NewItemService 创建道具应用服务
func NewItemService(repo repository.ItemRepository, cache *redis.Cache, ttl time.Duration, invalidator *Invalidator) (*ItemService, error) {
	svc := &ItemService{
		repo:        repo,
		invalidator: invalidator,
	}
	col, err := newCollection(EntityItem, ItemSpecs(), cache, ttl, svc.loadRecords)
	if err != nil {
		return nil, err
	}
	svc.col = col
	return svc, nil
}

func (s *ItemService) loadRecords(ctx context.Context) ([]query.Record, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]query.Record, 0, len(items))
	for _, it := range items {
		records = append(records, ItemRecord(it))
	}
	return records, nil
}

// List 道具列表查询
func (s *ItemService) List(ctx context.Context, in query.Input) (*query.Result, error) {
	return s.col.List(ctx, in)
}

// Specs 道具列表过滤器声明
func (s *ItemService) Specs() []query.FilterFieldSpec {
	return s.col.Specs()
}

// Get 获取单个道具
func (s *ItemService) Get(ctx context.Context, id string) (*entity.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get item")
	}
	if item == nil {
		return nil, apperrors.ErrItemNotFound
	}
	return item, nil
}

// Create 创建道具
func (s *ItemService) Create(ctx context.Context, item *entity.Item) error {
	if err := s.repo.Create(ctx, item); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create item")
	}
	s.invalidator.Invalidate(EntityItem)
	return nil
}

// Update 更新道具
func (s *ItemService) Update(ctx context.Context, item *entity.Item) error {
	existing, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get item")
	}
	if existing == nil {
		return apperrors.ErrItemNotFound
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update item")
	}
	s.invalidator.Invalidate(EntityItem)
	return nil
}

// Delete 删除道具
func (s *ItemService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get item")
	}
	if existing == nil {
		return apperrors.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete item")
	}
	s.invalidator.Invalidate(EntityItem)
	return nil
}
