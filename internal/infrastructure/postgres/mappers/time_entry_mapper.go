package mappers

import (
	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/models"
)

func ToDomainTimeEntry(model *models.TimeEntryModel) *domain.TimeEntry {
	return &domain.TimeEntry{
		ID:             model.ID,
		OrganizationID: model.OrganizationID,
		MemberID:       model.MemberID,
		ProjectID:      model.ProjectID,
		Start:          model.Start,
		End:            model.End,
		Description:    model.Description,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMTimeEntry(entry *domain.TimeEntry) *models.TimeEntryModel {
	return &models.TimeEntryModel{
		ID:             entry.ID,
		OrganizationID: entry.OrganizationID,
		MemberID:       entry.MemberID,
		ProjectID:      entry.ProjectID,
		Start:          entry.Start,
		End:            entry.End,
		Description:    entry.Description,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}
