package domain

import (
	"context"
	"time"
)

type TimeEntry struct {
	ID             string
	OrganizationID string
	MemberID       string
	ProjectID      *string
	Start          time.Time
	End            *time.Time
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TimeEntryChanges is the field set a bulk update may touch. Nil
// pointers leave the field untouched; SetProjectID distinguishes
// "reassign to NewProjectID (possibly none)" from "leave as is".
type TimeEntryChanges struct {
	SetProjectID bool
	NewProjectID *string
	Description  *string
}

type TimeEntryRepository interface {
	Create(ctx context.Context, entry *TimeEntry) error
	GetByID(ctx context.Context, id string) (*TimeEntry, error)
	Update(ctx context.Context, entry *TimeEntry) error
	Delete(ctx context.Context, id string) error
	// ListByIDsForMember resolves bulk ids, silently dropping entries
	// that do not belong to the member.
	ListByIDsForMember(ctx context.Context, ids []string, memberID string) ([]*TimeEntry, error)
	UpdateFields(ctx context.Context, ids []string, changes TimeEntryChanges) error
	DeleteByIDs(ctx context.Context, ids []string) error
}
