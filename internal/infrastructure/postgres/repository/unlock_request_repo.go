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

type DefaultUnlockRequestRepository struct {
	db *gorm.DB
}

func NewDefaultUnlockRequestRepository(db *gorm.DB) *DefaultUnlockRequestRepository {
	return &DefaultUnlockRequestRepository{db: db}
}

func (r *DefaultUnlockRequestRepository) Create(ctx context.Context, request *domain.UnlockRequest) error {
	model := mappers.ToGORMUnlockRequest(request)
	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil {
		// The partial unique index on pending triples catches
		// concurrent duplicate creates the read-then-insert check
		// cannot see.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateUnlockRequest
		}
		return err
	}
	return nil
}

func (r *DefaultUnlockRequestRepository) GetByID(ctx context.Context, id string) (*domain.UnlockRequest, error) {
	var model models.UnlockRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUnlockRequest(&model), nil
}

func (r *DefaultUnlockRequestRepository) List(ctx context.Context, filter domain.ListUnlockRequestsFilter) ([]*domain.UnlockRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UnlockRequestModel{}).
		Where("organization_id = ?", filter.OrganizationID)

	switch filter.Status {
	case "":
	case "expired":
		// Derived state: approved requests whose window has passed.
		query = query.Where("status = ? AND expires_at <= ?", string(domain.UnlockRequestApproved), time.Now())
	default:
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.RequesterMemberID != "" {
		query = query.Where("requester_member_id = ?", filter.RequesterMemberID)
	}
	if len(filter.ProjectIDs) > 0 {
		query = query.Where("project_id IN ?", filter.ProjectIDs)
	}
	if filter.PendingOnly {
		query = query.Where("status = ?", string(domain.UnlockRequestPending))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var requestModels []models.UnlockRequestModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&requestModels).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]*domain.UnlockRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = mappers.ToDomainUnlockRequest(&model)
	}
	return requests, total, nil
}

// Approve performs the pending -> approved transition as a single
// conditional update. Of two racing reviewers only the first finds a
// pending row; the second gets ErrNotPending and mutates nothing.
func (r *DefaultUnlockRequestRepository) Approve(ctx context.Context, id, approverMemberID string, approvedAt, expiresAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.UnlockRequestModel{}).
		Where("id = ? AND status = ?", id, string(domain.UnlockRequestPending)).
		Updates(map[string]interface{}{
			"status":             string(domain.UnlockRequestApproved),
			"approver_member_id": approverMemberID,
			"approved_at":        approvedAt,
			"expires_at":         expiresAt,
			"updated_at":         approvedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotPending
	}
	return nil
}

func (r *DefaultUnlockRequestRepository) Reject(ctx context.Context, id, approverMemberID string, rejectedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.UnlockRequestModel{}).
		Where("id = ? AND status = ?", id, string(domain.UnlockRequestPending)).
		Updates(map[string]interface{}{
			"status":             string(domain.UnlockRequestRejected),
			"approver_member_id": approverMemberID,
			"rejected_at":        rejectedAt,
			"updated_at":         rejectedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotPending
	}
	return nil
}

func (r *DefaultUnlockRequestRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UnlockRequestModel{}).Error
}

func (r *DefaultUnlockRequestRepository) FindActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (*domain.UnlockRequest, error) {
	var model models.UnlockRequestModel
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("project_id = ?", projectID).
		Where("requester_member_id = ?", memberID).
		Where("status = ?", string(domain.UnlockRequestApproved)).
		Where("expires_at > ?", now).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUnlockRequest(&model), nil
}

func (r *DefaultUnlockRequestRepository) HasActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UnlockRequestModel{}).
		Where("organization_id = ?", orgID).
		Where("project_id = ?", projectID).
		Where("requester_member_id = ?", memberID).
		Where("status = ?", string(domain.UnlockRequestApproved)).
		Where("expires_at > ?", now).
		Count(&count).Error
	return count > 0, err
}

func (r *DefaultUnlockRequestRepository) HasPendingOrActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UnlockRequestModel{}).
		Where("organization_id = ?", orgID).
		Where("project_id = ?", projectID).
		Where("requester_member_id = ?", memberID).
		Where("status = ? OR (status = ? AND expires_at > ?)",
			string(domain.UnlockRequestPending),
			string(domain.UnlockRequestApproved),
			now).
		Count(&count).Error
	return count > 0, err
}
