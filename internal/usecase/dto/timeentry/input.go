package timeentrydto

import "time"

type CreateTimeEntryInput struct {
	ProjectID   *string
	Start       time.Time
	End         *time.Time
	Description string
}

// UpdateTimeEntryInput carries only the fields the caller wants to
// change. SetProjectID distinguishes "reassign the project" from
// "leave it alone", because the new value may itself be nil.
type UpdateTimeEntryInput struct {
	Start        *time.Time
	End          *time.Time
	Description  *string
	SetProjectID bool
	ProjectID    *string
}

type BulkUpdateInput struct {
	IDs          []string
	SetProjectID bool
	ProjectID    *string
	Description  *string
}
