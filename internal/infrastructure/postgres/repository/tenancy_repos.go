package repository

import (
	"context"
	"errors"

	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/mappers"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrganizationRepository struct {
	db *gorm.DB
}

func NewDefaultOrganizationRepository(db *gorm.DB) *DefaultOrganizationRepository {
	return &DefaultOrganizationRepository{db: db}
}

func (r *DefaultOrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrganization(&model), nil
}

type DefaultMemberRepository struct {
	db *gorm.DB
}

func NewDefaultMemberRepository(db *gorm.DB) *DefaultMemberRepository {
	return &DefaultMemberRepository{db: db}
}

func (r *DefaultMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMember(&model), nil
}

func (r *DefaultMemberRepository) GetByUserAndOrganization(ctx context.Context, userID, orgID string) (*domain.Member, error) {
	var model models.MemberModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("organization_id = ?", orgID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMember(&model), nil
}

type DefaultProjectRepository struct {
	db *gorm.DB
}

func NewDefaultProjectRepository(db *gorm.DB) *DefaultProjectRepository {
	return &DefaultProjectRepository{db: db}
}

func (r *DefaultProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProject(&model), nil
}

func (r *DefaultProjectRepository) IsProjectMember(ctx context.Context, projectID, memberID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProjectMemberModel{}).
		Where("project_id = ?", projectID).
		Where("member_id = ?", memberID).
		Count(&count).Error
	return count > 0, err
}

func (r *DefaultProjectRepository) ListIDsByOrganization(ctx context.Context, orgID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Where("organization_id = ?", orgID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DefaultProjectRepository) ListIDsByMember(ctx context.Context, memberID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.ProjectMemberModel{}).
		Where("member_id = ?", memberID).
		Pluck("project_id", &ids).Error
	return ids, err
}
