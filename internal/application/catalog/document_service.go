package catalog

import (
	"context"
	"time"

	"venus-catalog-api/internal/application/query"
	"venus-catalog-api/internal/domain/entity"
	"venus-catalog-api/internal/domain/repository"
	"venus-catalog-api/internal/infrastructure/persistence/redis"
	apperrors "venus-catalog-api/pkg/errors"
	"venus-catalog-api/pkg/logger"
)

// DocumentService 文档应用服务
type DocumentService struct {
	repo        repository.DocumentRepository
	col         *collection
	invalidator *Invalidator
}

// NewDocumentService 创建文档应用服务
func NewDocumentService(repo repository.DocumentRepository, cache *redis.Cache, ttl time.Duration, invalidator *Invalidator) (*DocumentService, error) {
	svc := &DocumentService{
		repo:        repo,
		invalidator: invalidator,
	}
	col, err := newCollection(EntityDocument, DocumentSpecs(), cache, ttl, svc.loadRecords)
	if err != nil {
		return nil, err
	}
	svc.col = col
	return svc, nil
}

func (s *DocumentService) loadRecords(ctx context.Context) ([]query.Record, error) {
	documents, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]query.Record, 0, len(documents))
	for _, d := range documents {
		records = append(records, DocumentRecord(d))
	}
	return records, nil
}

// List 文档列表查询
func (s *DocumentService) List(ctx context.Context, in query.Input) (*query.Result, error) {
	return s.col.List(ctx, in)
}

// Specs 文档列表过滤器声明
func (s *DocumentService) Specs() []query.FilterFieldSpec {
	return s.col.Specs()
}

// Get 获取单个文档
func (s *DocumentService) Get(ctx context.Context, id string) (*entity.Document, error) {
	document, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get document")
	}
	if document == nil {
		return nil, apperrors.ErrDocumentNotFound
	}
	return document, nil
}

// Create 创建文档
func (s *DocumentService) Create(ctx context.Context, document *entity.Document) error {
	if err := s.repo.Create(ctx, document); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create document")
	}
	s.invalidator.Invalidate(EntityDocument)
	return nil
}

// Update 更新文档
func (s *DocumentService) Update(ctx context.Context, document *entity.Document) error {
	existing, err := s.repo.GetByID(ctx, document.ID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get document")
	}
	if existing == nil {
		return apperrors.ErrDocumentNotFound
	}
	if err := s.repo.Update(ctx, document); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update document")
	}
	s.invalidator.Invalidate(EntityDocument)
	return nil
}

// SetPublished 切换文档发布状态
func (s *DocumentService) SetPublished(ctx context.Context, id string, published bool) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get document")
	}
	if existing == nil {
		return apperrors.ErrDocumentNotFound
	}
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to set published")
	}
	logger.Info(ctx, "document publish state changed", "document_id", id, "published", published)
	s.invalidator.Invalidate(EntityDocument)
	return nil
}

// Delete 删除文档
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get document")
	}
	if existing == nil {
		return apperrors.ErrDocumentNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete document")
	}
	s.invalidator.Invalidate(EntityDocument)
	return nil
}
