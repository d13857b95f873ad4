package dto

import "time"

type CreateUnlockRequestRequest struct {
	ProjectID string  `json:"project_id" binding:"required"`
	Reason    *string `json:"reason"`
	// RequesterMemberID lets an owner or admin file on behalf of
	// another member; regular members must leave it empty.
	RequesterMemberID string `json:"requester_member_id"`
}

type CreateTimeEntryRequest struct {
	ProjectID   *string    `json:"project_id"`
	Start       time.Time  `json:"start" binding:"required"`
	End         *time.Time `json:"end"`
	Description string     `json:"description"`
}

// UpdateTimeEntryRequest fields are all optional; the handler
// distinguishes an absent project_id from an explicit null by key
// presence in the raw body.
type UpdateTimeEntryRequest struct {
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Description *string    `json:"description"`
	ProjectID   *string    `json:"project_id"`
}

type BulkUpdateChanges struct {
	ProjectID   *string `json:"project_id"`
	Description *string `json:"description"`
}

type BulkUpdateTimeEntriesRequest struct {
	IDs     []string          `json:"ids" binding:"required"`
	Changes BulkUpdateChanges `json:"changes"`
}

type BulkDeleteTimeEntriesRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
