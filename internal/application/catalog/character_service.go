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

// CharacterService 角色应用服务
type CharacterService struct {
	repo        repository.CharacterRepository
	col         *collection
	invalidator *Invalidator
}

// NewCharacterService 创建角色应用服务
func NewCharacterService(repo repository.CharacterRepository, cache *redis.Cache, ttl time.Duration, invalidator *Invalidator) (*CharacterService, error) {
	svc := &CharacterService{
		repo:        repo,
		invalidator: invalidator,
	}
	col, err := newCollection(EntityCharacter, CharacterSpecs(), cache, ttl, svc.loadRecords)
	if err != nil {
		return nil, err
	}
	svc.col = col
	return svc, nil
}

func (s *CharacterService) loadRecords(ctx context.Context) ([]query.Record, error) {
	characters, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]query.Record, 0, len(characters))
	for _, c := range characters {
		records = append(records, CharacterRecord(c))
	}
	return records, nil
}

// List 角色列表查询
func (s *CharacterService) List(ctx context.Context, in query.Input) (*query.Result, error) {
	return s.col.List(ctx, in)
}

// Specs 角色列表过滤器声明
func (s *CharacterService) Specs() []query.FilterFieldSpec {
	return s.col.Specs()
}

// Get 获取单个角色
func (s *CharacterService) Get(ctx context.Context, id string) (*entity.Character, error) {
	character, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get character")
	}
	if character == nil {
		return nil, apperrors.ErrCharacterNotFound
	}
	return character, nil
}

// Create 创建角色
func (s *CharacterService) Create(ctx context.Context, character *entity.Character) error {
	if err := s.repo.Create(ctx, character); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create character")
	}
	logger.Info(ctx, "character created",
		"character_id", character.ID,
		"name", character.DisplayName(),
	)
	s.invalidator.Invalidate(EntityCharacter)
	return nil
}

// Update 更新角色
func (s *CharacterService) Update(ctx context.Context, character *entity.Character) error {
	existing, err := s.repo.GetByID(ctx, character.ID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get character")
	}
	if existing == nil {
		return apperrors.ErrCharacterNotFound
	}
	if err := s.repo.Update(ctx, character); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update character")
	}
	s.invalidator.Invalidate(EntityCharacter)
	return nil
}

// Delete 删除角色
func (s *CharacterService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get character")
	}
	if existing == nil {
		return apperrors.ErrCharacterNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete character")
	}
	logger.Info(ctx, "character deleted", "character_id", id)
	s.invalidator.Invalidate(EntityCharacter)
	return nil
}
