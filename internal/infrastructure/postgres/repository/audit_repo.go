package repository

import (
	"context"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultAuditRepository persists mutation audit rows. It is the
// tail end of the audit context: the authorizing unlock request id
// is read off the request context here, so a privileged edit always
// lands in the trail tagged with its grant.
type DefaultAuditRepository struct {
	db    *gorm.DB
	newID func() string
}

func NewDefaultAuditRepository(db *gorm.DB) (*DefaultAuditRepository, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return &DefaultAuditRepository{db: db, newID: idGenerator}, nil
}

func (r *DefaultAuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	model := &models.AuditModel{
		ID:             entry.ID,
		OrganizationID: entry.OrganizationID,
		MemberID:       entry.MemberID,
		Event:          entry.Event,
		TimeEntryID:    entry.TimeEntryID,
		CreatedAt:      entry.CreatedAt,
	}
	if model.ID == "" {
		model.ID = r.newID()
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}
	if unlockID, ok := domain.UnlockRequestIDFromContext(ctx); ok {
		model.UnlockRequestID = &unlockID
	}
	return r.db.WithContext(ctx).Create(model).Error
}
