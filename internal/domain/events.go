package domain

import "time"

// UnlockRequestEvent is published on every lifecycle transition so
// downstream consumers (reporting, admin tooling) can follow the
// grant trail. This is an event stream, not notification delivery.
type UnlockRequestEvent struct {
	EventType         string     `json:"event_type"`
	UnlockRequestID   string     `json:"unlock_request_id"`
	OrganizationID    string     `json:"organization_id"`
	ProjectID         string     `json:"project_id"`
	RequesterMemberID string     `json:"requester_member_id"`
	ApproverMemberID  *string    `json:"approver_member_id,omitempty"`
	Status            string     `json:"status"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	OccurredAt        time.Time  `json:"occurred_at"`
}

const (
	EventUnlockRequestCreated  = "unlock_request.created"
	EventUnlockRequestApproved = "unlock_request.approved"
	EventUnlockRequestRejected = "unlock_request.rejected"
	EventUnlockRequestDeleted  = "unlock_request.deleted"
)

type EventPublisher interface {
	PublishUnlockRequestEvent(event UnlockRequestEvent) error
}
