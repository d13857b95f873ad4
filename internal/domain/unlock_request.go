package domain

import (
	"context"
	"time"
)

type UnlockRequestStatus string

// Status is strictly three-valued. "expired" is observable through
// IsExpired, never stored: an approved request simply stops being
// active once expires_at passes.
const (
	UnlockRequestPending  UnlockRequestStatus = "pending"
	UnlockRequestApproved UnlockRequestStatus = "approved"
	UnlockRequestRejected UnlockRequestStatus = "rejected"
)

// UnlockDuration is how long an approved unlock stays active.
const UnlockDuration = 30 * time.Minute

type UnlockRequest struct {
	ID                string
	OrganizationID    string
	ProjectID         string
	RequesterMemberID string
	ApproverMemberID  *string
	Reason            *string
	Status            UnlockRequestStatus
	ApprovedAt        *time.Time
	RejectedAt        *time.Time
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *UnlockRequest) IsPending() bool {
	return r.Status == UnlockRequestPending
}

// IsActive reports whether the request currently grants a lock bypass.
func (r *UnlockRequest) IsActive(now time.Time) bool {
	return r.Status == UnlockRequestApproved &&
		r.ExpiresAt != nil &&
		r.ExpiresAt.After(now)
}

func (r *UnlockRequest) IsExpired(now time.Time) bool {
	return r.Status == UnlockRequestApproved &&
		r.ExpiresAt != nil &&
		!r.ExpiresAt.After(now)
}

// ListUnlockRequestsFilter narrows List queries. Status additionally
// accepts "expired", which maps to approved requests whose expiry has
// passed.
type ListUnlockRequestsFilter struct {
	OrganizationID    string
	Status            string
	ProjectID         string
	RequesterMemberID string
	ProjectIDs        []string
	PendingOnly       bool
	Page              int
	Limit             int
}

type UnlockRequestRepository interface {
	Create(ctx context.Context, request *UnlockRequest) error
	GetByID(ctx context.Context, id string) (*UnlockRequest, error)
	List(ctx context.Context, filter ListUnlockRequestsFilter) ([]*UnlockRequest, int64, error)
	// Approve transitions pending -> approved with a conditional
	// update. Returns ErrNotPending when the request already left
	// pending, so a racing second approver fails cleanly.
	Approve(ctx context.Context, id, approverMemberID string, approvedAt, expiresAt time.Time) error
	Reject(ctx context.Context, id, approverMemberID string, rejectedAt time.Time) error
	Delete(ctx context.Context, id string) error
	FindActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (*UnlockRequest, error)
	HasActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (bool, error)
	HasPendingOrActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (bool, error)
}
