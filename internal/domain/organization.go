package domain

import (
	"context"
	"time"
)

// Organization is the tenancy boundary. LockHorizonDays is the
// organization-configured number of days after which time entries
// become immutable; nil disables the lock entirely.
type Organization struct {
	ID              string
	Name            string
	LockHorizonDays *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (*Organization, error)
}
