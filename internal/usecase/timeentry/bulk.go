package timeentry

import (
	"context"

	"github.com/solidtrack/timelock-service/internal/domain"
	timeentrydto "github.com/solidtrack/timelock-service/internal/usecase/dto/timeentry"
	"github.com/solidtrack/timelock-service/internal/usecase/lock"
)

// BulkUpdate applies the same field changes to every entry in the
// batch. The whole batch is pre-validated against the gate before a
// single row is written; one locked entry without a grant rejects
// everything. Ids not owned by the acting member are dropped.
func (uc *DefaultUsecase) BulkUpdate(ctx context.Context, org *domain.Organization, actor *domain.Member, input *timeentrydto.BulkUpdateInput) (int, error) {
	if input.SetProjectID {
		if err := uc.scopedProject(ctx, org, input.ProjectID); err != nil {
			return 0, err
		}
	}
	entries, err := uc.entryRepo.ListByIDsForMember(ctx, input.IDs, actor.ID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	intent := lock.UpdateIntent{
		ProjectChanged: input.SetProjectID,
		NewProjectID:   input.ProjectID,
	}
	unlockByEntry, err := uc.gate.CheckBulk(ctx, org, actor, entries, lock.IntentBulkUpdate, &intent)
	if err != nil {
		return 0, err
	}

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	changes := domain.TimeEntryChanges{
		SetProjectID: input.SetProjectID,
		NewProjectID: input.ProjectID,
		Description:  input.Description,
	}
	if err := uc.entryRepo.UpdateFields(ctx, ids, changes); err != nil {
		return 0, err
	}

	uc.auditBulk(ctx, org, actor, domain.AuditEventUpdated, entries, unlockByEntry)
	return len(entries), nil
}

// BulkDelete mirrors BulkUpdate for deletion, with the same
// all-or-nothing pre-validation.
func (uc *DefaultUsecase) BulkDelete(ctx context.Context, org *domain.Organization, actor *domain.Member, ids []string) (int, error) {
	entries, err := uc.entryRepo.ListByIDsForMember(ctx, ids, actor.ID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	unlockByEntry, err := uc.gate.CheckBulk(ctx, org, actor, entries, lock.IntentBulkDelete, nil)
	if err != nil {
		return 0, err
	}

	owned := make([]string, len(entries))
	for i, entry := range entries {
		owned[i] = entry.ID
	}
	if err := uc.entryRepo.DeleteByIDs(ctx, owned); err != nil {
		return 0, err
	}

	uc.auditBulk(ctx, org, actor, domain.AuditEventDeleted, entries, unlockByEntry)
	return len(entries), nil
}

// auditBulk writes one audit row per entry, each tagged with the
// unlock request that authorized that particular entry, if any.
func (uc *DefaultUsecase) auditBulk(ctx context.Context, org *domain.Organization, actor *domain.Member, event string, entries []*domain.TimeEntry, unlockByEntry map[string]string) {
	for _, entry := range entries {
		entryCtx := ctx
		if unlockID, ok := unlockByEntry[entry.ID]; ok {
			entryCtx = domain.WithUnlockRequestID(ctx, unlockID)
		}
		uc.recordAudit(entryCtx, org, actor, event, entry.ID)
	}
}
