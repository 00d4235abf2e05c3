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

// SkillService 技能应用服务
type SkillService struct {
	repo        repository.SkillRepository
	col         *collection
	invalidator *Invalidator
}

// NewSkillService 创建技能应用服务
func NewSkillService(repo repository.SkillRepository, cache *redis.Cache, ttl time.Duration, invalidator *Invalidator) (*SkillService, error) {
	svc := &SkillService{
		repo:        repo,
		invalidator: invalidator,
	}
	col, err := newCollection(EntitySkill, SkillSpecs(), cache, ttl, svc.loadRecords)
	if err != nil {
		return nil, err
	}
	svc.col = col
	return svc, nil
}

func (s *SkillService) loadRecords(ctx context.Context) ([]query.Record, error) {
	skills, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]query.Record, 0, len(skills))
	for _, sk := range skills {
		records = append(records, SkillRecord(sk))
	}
	return records, nil
}

// List 技能列表查询
func (s *SkillService) List(ctx context.Context, in query.Input) (*query.Result, error) {
	return s.col.List(ctx, in)
}

// Specs 技能列表过滤器声明
func (s *SkillService) Specs() []query.FilterFieldSpec {
	return s.col.Specs()
}

// Get 获取单个技能
func (s *SkillService) Get(ctx context.Context, id string) (*entity.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get skill")
	}
	if skill == nil {
		return nil, apperrors.ErrSkillNotFound
	}
	return skill, nil
}

// Create 创建技能
func (s *SkillService) Create(ctx context.Context, skill *entity.Skill) error {
	if err := s.repo.Create(ctx, skill); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create skill")
	}
	s.invalidator.Invalidate(EntitySkill)
	return nil
}

// Update 更新技能
func (s *SkillService) Update(ctx context.Context, skill *entity.Skill) error {
	existing, err := s.repo.GetByID(ctx, skill.ID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get skill")
	}
	if existing == nil {
		return apperrors.ErrSkillNotFound
	}
	if err := s.repo.Update(ctx, skill); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update skill")
	}
	s.invalidator.Invalidate(EntitySkill)
	return nil
}

// Delete 删除技能
func (s *SkillService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get skill")
	}
	if existing == nil {
		return apperrors.ErrSkillNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete skill")
	}
	s.invalidator.Invalidate(EntitySkill)
	return nil
}
