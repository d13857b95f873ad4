package mappers

import (
	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/models"
)

func ToDomainUnlockRequest(model *models.UnlockRequestModel) *domain.UnlockRequest {
	return &domain.UnlockRequest{
		ID:                model.ID,
		OrganizationID:    model.OrganizationID,
		ProjectID:         model.ProjectID,
		RequesterMemberID: model.RequesterMemberID,
		ApproverMemberID:  model.ApproverMemberID,
		Reason:            model.Reason,
		Status:            domain.UnlockRequestStatus(model.Status),
		ApprovedAt:        model.ApprovedAt,
		RejectedAt:        model.RejectedAt,
		ExpiresAt:         model.ExpiresAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMUnlockRequest(request *domain.UnlockRequest) *models.UnlockRequestModel {
	return &models.UnlockRequestModel{
		ID:                request.ID,
		OrganizationID:    request.OrganizationID,
		ProjectID:         request.ProjectID,
		RequesterMemberID: request.RequesterMemberID,
		ApproverMemberID:  request.ApproverMemberID,
		Reason:            request.Reason,
		Status:            string(request.Status),
		ApprovedAt:        request.ApprovedAt,
		RejectedAt:        request.RejectedAt,
		ExpiresAt:         request.ExpiresAt,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
}
