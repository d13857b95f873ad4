package domain

import (
	"context"
	"time"
)

// AuditEntry is one row of the mutation audit trail. UnlockRequestID
// is set when the mutation was only possible because of an active
// unlock, making privileged edits traceable.
type AuditEntry struct {
	ID              string
	OrganizationID  string
	MemberID        string
	Event           string
	TimeEntryID     string
	UnlockRequestID *string
	CreatedAt       time.Time
}

const (
	AuditEventCreated = "created"
	AuditEventUpdated = "updated"
	AuditEventDeleted = "deleted"
)

type AuditWriter interface {
	// Record persists the entry, picking the authorizing unlock
	// request id off the context when one is present.
	Record(ctx context.Context, entry *AuditEntry) error
}
