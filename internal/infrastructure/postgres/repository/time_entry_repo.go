package repository

import (
	"context"
	"errors"
	"time"

	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/mappers"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTimeEntryRepository struct {
	db *gorm.DB
}

func NewDefaultTimeEntryRepository(db *gorm.DB) *DefaultTimeEntryRepository {
	return &DefaultTimeEntryRepository{db: db}
}

func (r *DefaultTimeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	model := mappers.ToGORMTimeEntry(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *DefaultTimeEntryRepository) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	var model models.TimeEntryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTimeEntry(&model), nil
}

func (r *DefaultTimeEntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	model := mappers.ToGORMTimeEntry(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *DefaultTimeEntryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TimeEntryModel{}).Error
}

func (r *DefaultTimeEntryRepository) ListByIDsForMember(ctx context.Context, ids []string, memberID string) ([]*domain.TimeEntry, error) {
	var entryModels []models.TimeEntryModel
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("member_id = ?", memberID).
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.TimeEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = mappers.ToDomainTimeEntry(&model)
	}
	return entries, nil
}

func (r *DefaultTimeEntryRepository) UpdateFields(ctx context.Context, ids []string, changes domain.TimeEntryChanges) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if changes.SetProjectID {
		updates["project_id"] = changes.NewProjectID
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	return r.db.WithContext(ctx).Model(&models.TimeEntryModel{}).
		Where("id IN ?", ids).
		Updates(updates).Error
}

func (r *DefaultTimeEntryRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.TimeEntryModel{}).Error
}
