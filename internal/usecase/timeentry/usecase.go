package timeentry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/solidtrack/timelock-service/internal/domain"
	timeentrydto "github.com/solidtrack/timelock-service/internal/usecase/dto/timeentry"
	"github.com/solidtrack/timelock-service/internal/usecase/lock"
)

type Usecase interface {
	Create(ctx context.Context, org *domain.Organization, actor *domain.Member, input *timeentrydto.CreateTimeEntryInput) (*domain.TimeEntry, error)
	Update(ctx context.Context, org *domain.Organization, actor *domain.Member, entryID string, input *timeentrydto.UpdateTimeEntryInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, org *domain.Organization, actor *domain.Member, entryID string) error
	BulkUpdate(ctx context.Context, org *domain.Organization, actor *domain.Member, input *timeentrydto.BulkUpdateInput) (int, error)
	BulkDelete(ctx context.Context, org *domain.Organization, actor *domain.Member, ids []string) (int, error)
}

// DefaultUsecase runs every mutation through the lock gate before it
// reaches storage, then writes the audit entry with whatever unlock
// request authorized it.
type DefaultUsecase struct {
	entryRepo   domain.TimeEntryRepository
	projectRepo domain.ProjectRepository
	gate        *lock.Gate
	audit       domain.AuditWriter
	now         func() time.Time
}

func NewDefaultUsecase(
	entryRepo domain.TimeEntryRepository,
	projectRepo domain.ProjectRepository,
	gate *lock.Gate,
	audit domain.AuditWriter,
) *DefaultUsecase {
	return &DefaultUsecase{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		gate:        gate,
		audit:       audit,
		now:         time.Now,
	}
}

func (uc *DefaultUsecase) recordAudit(ctx context.Context, org *domain.Organization, actor *domain.Member, event, entryID string) {
	entry := &domain.AuditEntry{
		OrganizationID: org.ID,
		MemberID:       actor.ID,
		Event:          event,
		TimeEntryID:    entryID,
		CreatedAt:      uc.now(),
	}
	if err := uc.audit.Record(ctx, entry); err != nil {
		slog.Error("failed to record audit entry",
			"event", event,
			"time_entry_id", entryID,
			"error", err.Error())
	}
}

// ownedEntry loads an entry and checks it belongs to the organization
// and the acting member.
func (uc *DefaultUsecase) ownedEntry(ctx context.Context, org *domain.Organization, actor *domain.Member, entryID string) (*domain.TimeEntry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.OrganizationID != org.ID || entry.MemberID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return entry, nil
}

// scopedProject validates a project reference against the tenancy
// boundary before it is written anywhere.
func (uc *DefaultUsecase) scopedProject(ctx context.Context, org *domain.Organization, projectID *string) error {
	if projectID == nil {
		return nil
	}
	project, err := uc.projectRepo.GetByID(ctx, *projectID)
	if err != nil {
		return err
	}
	if project.OrganizationID != org.ID {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *DefaultUsecase) Create(ctx context.Context, org *domain.Organization, actor *domain.Member, input *timeentrydto.CreateTimeEntryInput) (*domain.TimeEntry, error) {
	if err := uc.scopedProject(ctx, org, input.ProjectID); err != nil {
		return nil, err
	}
	ctx, err := uc.gate.CheckCreate(ctx, org, actor, input.Start, input.ProjectID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	entry := &domain.TimeEntry{
		ID:             uuid.NewString(),
		OrganizationID: org.ID,
		MemberID:       actor.ID,
		ProjectID:      input.ProjectID,
		Start:          input.Start,
		End:            input.End,
		Description:    input.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	uc.recordAudit(ctx, org, actor, domain.AuditEventCreated, entry.ID)
	return entry, nil
}

func (uc *DefaultUsecase) Update(ctx context.Context, org *domain.Organization, actor *domain.Member, entryID string, input *timeentrydto.UpdateTimeEntryInput) (*domain.TimeEntry, error) {
	entry, err := uc.ownedEntry(ctx, org, actor, entryID)
	if err != nil {
		return nil, err
	}
	if input.SetProjectID {
		if err := uc.scopedProject(ctx, org, input.ProjectID); err != nil {
			return nil, err
		}
	}

	intent := lock.UpdateIntent{
		NewStart:       input.Start,
		ProjectChanged: input.SetProjectID,
		NewProjectID:   input.ProjectID,
	}
	ctx, err = uc.gate.CheckUpdate(ctx, org, actor, entry, intent)
	if err != nil {
		return nil, err
	}

	if input.Start != nil {
		entry.Start = *input.Start
	}
	if input.End != nil {
		entry.End = input.End
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.SetProjectID {
		entry.ProjectID = input.ProjectID
	}
	entry.UpdatedAt = uc.now()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	uc.recordAudit(ctx, org, actor, domain.AuditEventUpdated, entry.ID)
	return entry, nil
}

func (uc *DefaultUsecase) Delete(ctx context.Context, org *domain.Organization, actor *domain.Member, entryID string) error {
	entry, err := uc.ownedEntry(ctx, org, actor, entryID)
	if err != nil {
		return err
	}
	ctx, err = uc.gate.CheckDelete(ctx, org, actor, entry)
	if err != nil {
		return err
	}
	if err := uc.entryRepo.Delete(ctx, entry.ID); err != nil {
		return err
	}
	uc.recordAudit(ctx, org, actor, domain.AuditEventDeleted, entry.ID)
	return nil
}
