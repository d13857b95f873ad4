package domain

import (
	"context"
	"time"
)

type Project struct {
	ID             string
	OrganizationID string
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*Project, error)
	// IsProjectMember reports whether the member is assigned to the
	// project. Used by the manager capability check.
	IsProjectMember(ctx context.Context, projectID, memberID string) (bool, error)
	ListIDsByOrganization(ctx context.Context, orgID string) ([]string, error)
	ListIDsByMember(ctx context.Context, memberID string) ([]string, error)
}
