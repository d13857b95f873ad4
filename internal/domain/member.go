package domain

import (
	"context"
	"time"
)

type MemberRole string

const (
	RoleOwner    MemberRole = "owner"
	RoleAdmin    MemberRole = "admin"
	RoleManager  MemberRole = "manager"
	RoleEmployee MemberRole = "employee"
)

// Member is a user's membership in one organization.
type Member struct {
	ID             string
	OrganizationID string
	UserID         string
	Role           MemberRole
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (m *Member) IsOwnerOrAdmin() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}

type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*Member, error)
	GetByUserAndOrganization(ctx context.Context, userID, orgID string) (*Member, error)
}
