package mappers

import (
	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/models"
)

func ToDomainOrganization(model *models.OrganizationModel) *domain.Organization {
	return &domain.Organization{
		ID:              model.ID,
		Name:            model.Name,
		LockHorizonDays: model.LockHorizonDays,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToDomainMember(model *models.MemberModel) *domain.Member {
	return &domain.Member{
		ID:             model.ID,
		OrganizationID: model.OrganizationID,
		UserID:         model.UserID,
		Role:           domain.MemberRole(model.Role),
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToDomainProject(model *models.ProjectModel) *domain.Project {
	return &domain.Project{
		ID:             model.ID,
		OrganizationID: model.OrganizationID,
		Name:           model.Name,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
