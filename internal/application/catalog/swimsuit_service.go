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

// SwimsuitService 泳装应用服务。泳装归属角色，
// 写操作同时维护角色的 has_swimsuit 标记。
type SwimsuitService struct {
	repo          repository.SwimsuitRepository
	characterRepo repository.CharacterRepository
	tx            repository.Transactor
	col           *collection
	invalidator   *Invalidator
}

// NewSwimsuitService 创建泳装应用服务
func NewSwimsuitService(
	repo repository.SwimsuitRepository,
	characterRepo repository.CharacterRepository,
	tx repository.Transactor,
	cache *redis.Cache,
	ttl time.Duration,
	invalidator *Invalidator,
) (*SwimsuitService, error) {
	svc := &SwimsuitService{
		repo:          repo,
		characterRepo: characterRepo,
		tx:            tx,
		invalidator:   invalidator,
	}
	col, err := newCollection(EntitySwimsuit, SwimsuitSpecs(), cache, ttl, svc.loadRecords)
	if err != nil {
		return nil, err
	}
	svc.col = col
	return svc, nil
}

func (s *SwimsuitService) loadRecords(ctx context.Context) ([]query.Record, error) {
	swimsuits, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]query.Record, 0, len(swimsuits))
	for _, sw := range swimsuits {
		records = append(records, SwimsuitRecord(sw))
	}
	return records, nil
}

// List 泳装列表查询
func (s *SwimsuitService) List(ctx context.Context, in query.Input) (*query.Result, error) {
	return s.col.List(ctx, in)
}

// ListByCharacter 某角色的泳装列表查询，按 character_id 过滤
func (s *SwimsuitService) ListByCharacter(ctx context.Context, characterID string, in query.Input) (*query.Result, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get character")
	}
	if character == nil {
		return nil, apperrors.ErrCharacterNotFound
	}

	if in.Filters == nil {
		in.Filters = query.FilterState{}
	}
	in.Filters["character_id"] = query.Text(characterID)
	return s.col.List(ctx, in)
}

// Specs 泳装列表过滤器声明
func (s *SwimsuitService) Specs() []query.FilterFieldSpec {
	return s.col.Specs()
}

// Get 获取单个泳装
func (s *SwimsuitService) Get(ctx context.Context, id string) (*entity.Swimsuit, error) {
	swimsuit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get swimsuit")
	}
	if swimsuit == nil {
		return nil, apperrors.ErrSwimsuitNotFound
	}
	return swimsuit, nil
}

// Create 创建泳装并标记角色拥有泳装
func (s *SwimsuitService) Create(ctx context.Context, swimsuit *entity.Swimsuit) error {
	character, err := s.characterRepo.GetByID(ctx, swimsuit.CharacterID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get character")
	}
	if character == nil {
		return apperrors.ErrCharacterNotFound
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, swimsuit); err != nil {
			return err
		}
		return s.characterRepo.SetHasSwimsuit(ctx, swimsuit.CharacterID, true)
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create swimsuit")
	}

	logger.Info(ctx, "swimsuit created",
		"swimsuit_id", swimsuit.ID, "character_id", swimsuit.CharacterID)
	s.invalidator.Invalidate(EntitySwimsuit)
	s.invalidator.Invalidate(EntityCharacter)
	return nil
}

// Update 更新泳装
func (s *SwimsuitService) Update(ctx context.Context, swimsuit *entity.Swimsuit) error {
	existing, err := s.repo.GetByID(ctx, swimsuit.ID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get swimsuit")
	}
	if existing == nil {
		return apperrors.ErrSwimsuitNotFound
	}
	if err := s.repo.Update(ctx, swimsuit); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update swimsuit")
	}
	s.invalidator.Invalidate(EntitySwimsuit)
	return nil
}

// Delete 删除泳装，角色不再有泳装时清除标记
func (s *SwimsuitService) Delete(ctx context.Context, id string) error {
	swimsuit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get swimsuit")
	}
	if swimsuit == nil {
		return apperrors.ErrSwimsuitNotFound
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		count, err := s.repo.CountByCharacter(ctx, swimsuit.CharacterID)
		if err != nil {
			return err
		}
		if count == 0 {
			return s.characterRepo.SetHasSwimsuit(ctx, swimsuit.CharacterID, false)
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete swimsuit")
	}

	s.invalidator.Invalidate(EntitySwimsuit)
	s.invalidator.Invalidate(EntityCharacter)
	return nil
}
