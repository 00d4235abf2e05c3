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

// DocumentRepository 文档仓储实现
type DocumentRepository struct {
	client *Client
}

// NewDocumentRepository 创建文档仓储
func NewDocumentRepository(client *Client) *DocumentRepository {
	return &DocumentRepository{client: client}
}

func (r *DocumentRepository) Create(ctx context.Context, document *entity.Document) error {
	ctx, span := tracer.Start(ctx, "postgres.DocumentRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(document).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	ctx, span := tracer.Start(ctx, "postgres.DocumentRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var document entity.Document
	if err := db.First(&document, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &document, nil
}

func (r *DocumentRepository) Update(ctx context.Context, document *entity.Document) error {
	ctx, span := tracer.Start(ctx, "postgres.DocumentRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(document).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.DocumentRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Document{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) ListAll(ctx context.Context) ([]*entity.Document, error) {
	ctx, span := tracer.Start(ctx, "postgres.DocumentRepository.ListAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("list_all", "documents").Observe(time.Since(start).Seconds())
	}()

	db := getDB(ctx, r.client.db)
	var documents []*entity.Document
	if err := db.Order("created_at ASC").Find(&documents).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

// SetPublished 更新发布状态
func (r *DocumentRepository) SetPublished(ctx context.Context, id string, published bool) error {
	ctx, span := tracer.Start(ctx, "postgres.DocumentRepository.SetPublished")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Document{}).Where("id = ?", id).Update("published", published).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to set published: %w", err)
	}
	return nil
}
