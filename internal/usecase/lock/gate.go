package lock

import (
	"context"
	"errors"
	"time"

	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/metrics"
)

// Mutation intents, used as metric labels and in bulk decisions.
const (
	IntentCreate     = "create"
	IntentUpdate     = "update"
	IntentDelete     = "delete"
	IntentBulkUpdate = "bulk_update"
	IntentBulkDelete = "bulk_delete"
)

// UpdateIntent carries the proposed new field values of an update.
// Nil NewStart means the start timestamp is untouched. ProjectChanged
// distinguishes "reassign to NewProjectID" (which may be nil, meaning
// no project) from "leave the project alone".
type UpdateIntent struct {
	NewStart       *time.Time
	ProjectChanged bool
	NewProjectID   *string
}

// Gate intercepts every time entry mutation before it reaches
// storage. It consults the lock evaluator and the unlock request
// store and either allows the operation, blocks it with a structured
// BlockedError, or, on project reassignment of a locked entry,
// demands active unlocks for both projects.
type Gate struct {
	evaluator   *Evaluator
	unlockRepo  domain.UnlockRequestRepository
	projectRepo domain.ProjectRepository
	metrics     *metrics.LockMetrics
	now         func() time.Time
}

func NewGate(
	evaluator *Evaluator,
	unlockRepo domain.UnlockRequestRepository,
	projectRepo domain.ProjectRepository,
	lockMetrics *metrics.LockMetrics,
) *Gate {
	return &Gate{
		evaluator:   evaluator,
		unlockRepo:  unlockRepo,
		projectRepo: projectRepo,
		metrics:     lockMetrics,
		now:         time.Now,
	}
}

func (g *Gate) blocked(org *domain.Organization) *BlockedError {
	return &BlockedError{
		Message:    lockedMessage,
		Code:       ReasonLocked,
		CutoffDate: g.evaluator.CutoffDate(org.LockHorizonDays),
	}
}

// activeUnlock returns the active unlock request for the member and
// project, or nil when there is none. A nil projectID can never have
// an unlock.
func (g *Gate) activeUnlock(ctx context.Context, org *domain.Organization, member *domain.Member, projectID *string) (*domain.UnlockRequest, error) {
	if projectID == nil {
		return nil, nil
	}
	request, err := g.unlockRepo.FindActive(ctx, org.ID, *projectID, member.ID, g.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return request, nil
}

// CheckCreate gates the creation of a time entry with the proposed
// start timestamp and project. On allow-via-unlock the returned
// context carries the authorizing unlock request id.
func (g *Gate) CheckCreate(ctx context.Context, org *domain.Organization, member *domain.Member, start time.Time, projectID *string) (context.Context, error) {
	if !g.evaluator.IsLocked(start, org.LockHorizonDays) {
		g.metrics.RecordAllowed(IntentCreate)
		return ctx, nil
	}
	unlock, err := g.activeUnlock(ctx, org, member, projectID)
	if err != nil {
		return ctx, err
	}
	if unlock == nil {
		g.metrics.RecordBlocked(IntentCreate, ReasonLocked)
		return ctx, g.blocked(org)
	}
	g.metrics.RecordViaUnlock(IntentCreate)
	return domain.WithUnlockRequestID(ctx, unlock.ID), nil
}

// CheckUpdate gates an update of an existing entry. The hardest case
// is a project reassignment while the entry is locked: that needs
// active unlocks for BOTH the old and the new project, and the
// rejection names whichever side is missing.
func (g *Gate) CheckUpdate(ctx context.Context, org *domain.Organization, member *domain.Member, entry *domain.TimeEntry, intent UpdateIntent) (context.Context, error) {
	entryLocked := g.evaluator.IsLocked(entry.Start, org.LockHorizonDays)

	if entryLocked && intent.ProjectChanged && !sameProject(entry.ProjectID, intent.NewProjectID) {
		return g.checkDualUnlock(ctx, org, member, entry.ProjectID, intent.NewProjectID)
	}

	if entryLocked {
		unlock, err := g.activeUnlock(ctx, org, member, entry.ProjectID)
		if err != nil {
			return ctx, err
		}
		if unlock == nil {
			g.metrics.RecordBlocked(IntentUpdate, ReasonLocked)
			return ctx, g.blocked(org)
		}
		ctx = domain.WithUnlockRequestID(ctx, unlock.ID)
	}

	// Moving the start timestamp into the locked range needs a grant
	// for the project governing the new date, even when the entry
	// itself was not locked before.
	if intent.NewStart != nil && g.evaluator.IsLocked(*intent.NewStart, org.LockHorizonDays) {
		governing := entry.ProjectID
		if intent.ProjectChanged {
			governing = intent.NewProjectID
		}
		unlock, err := g.activeUnlock(ctx, org, member, governing)
		if err != nil {
			return ctx, err
		}
		if unlock == nil {
			g.metrics.RecordBlocked(IntentUpdate, ReasonLocked)
			return ctx, g.blocked(org)
		}
		if _, tagged := domain.UnlockRequestIDFromContext(ctx); !tagged {
			ctx = domain.WithUnlockRequestID(ctx, unlock.ID)
		}
	}

	if _, viaUnlock := domain.UnlockRequestIDFromContext(ctx); viaUnlock {
		g.metrics.RecordViaUnlock(IntentUpdate)
	} else {
		g.metrics.RecordAllowed(IntentUpdate)
	}
	return ctx, nil
}

// checkDualUnlock resolves both sides of a project reassignment and
// builds the structured dual-unlock rejection when either grant is
// missing. The returned context is tagged with the old side's unlock
// id, the grant that authorized touching the locked entry at all.
func (g *Gate) checkDualUnlock(ctx context.Context, org *domain.Organization, member *domain.Member, oldProjectID, newProjectID *string) (context.Context, error) {
	oldState, oldUnlock, err := g.projectUnlockState(ctx, org, member, oldProjectID)
	if err != nil {
		return ctx, err
	}
	newState, _, err := g.projectUnlockState(ctx, org, member, newProjectID)
	if err != nil {
		return ctx, err
	}

	var missing []MissingUnlock
	for _, state := range []*ProjectUnlockState{oldState, newState} {
		if state.HasUnlock {
			continue
		}
		reason := reasonNoUnlock
		if state.ID == "" {
			reason = reasonNoProject
		}
		missing = append(missing, MissingUnlock{
			ProjectID:   state.ID,
			ProjectName: state.Name,
			Reason:      reason,
		})
	}

	if len(missing) > 0 {
		g.metrics.RecordBlocked(IntentUpdate, ReasonDualUnlock)
		return ctx, &BlockedError{
			Message:            dualMessage,
			Code:               ReasonDualUnlock,
			CutoffDate:         g.evaluator.CutoffDate(org.LockHorizonDays),
			RequiresDualUnlock: true,
			MissingUnlocks:     missing,
			OldProject:         oldState,
			NewProject:         newState,
		}
	}

	g.metrics.RecordViaUnlock(IntentUpdate)
	return domain.WithUnlockRequestID(ctx, oldUnlock.ID), nil
}

func (g *Gate) projectUnlockState(ctx context.Context, org *domain.Organization, member *domain.Member, projectID *string) (*ProjectUnlockState, *domain.UnlockRequest, error) {
	if projectID == nil {
		return &ProjectUnlockState{}, nil, nil
	}
	project, err := g.projectRepo.GetByID(ctx, *projectID)
	if err != nil {
		return nil, nil, err
	}
	unlock, err := g.activeUnlock(ctx, org, member, projectID)
	if err != nil {
		return nil, nil, err
	}
	return &ProjectUnlockState{
		ID:        project.ID,
		Name:      project.Name,
		HasUnlock: unlock != nil,
	}, unlock, nil
}

// CheckDelete gates the deletion of an existing entry.
func (g *Gate) CheckDelete(ctx context.Context, org *domain.Organization, member *domain.Member, entry *domain.TimeEntry) (context.Context, error) {
	if !g.evaluator.IsLocked(entry.Start, org.LockHorizonDays) {
		g.metrics.RecordAllowed(IntentDelete)
		return ctx, nil
	}
	unlock, err := g.activeUnlock(ctx, org, member, entry.ProjectID)
	if err != nil {
		return ctx, err
	}
	if unlock == nil {
		g.metrics.RecordBlocked(IntentDelete, ReasonLocked)
		return ctx, g.blocked(org)
	}
	g.metrics.RecordViaUnlock(IntentDelete)
	return domain.WithUnlockRequestID(ctx, unlock.ID), nil
}

// CheckBulk pre-validates a whole batch before any write. If ANY
// entry fails its per-entry check the batch is rejected as a whole.
// On success it returns the authorizing unlock request id per entry
// id, for entries that needed one, so each audit row can be tagged
// individually.
func (g *Gate) CheckBulk(ctx context.Context, org *domain.Organization, member *domain.Member, entries []*domain.TimeEntry, intent string, changes *UpdateIntent) (map[string]string, error) {
	unlockByEntry := make(map[string]string)
	for _, entry := range entries {
		var (
			entryCtx context.Context
			err      error
		)
		if changes != nil {
			entryCtx, err = g.CheckUpdate(ctx, org, member, entry, *changes)
		} else {
			entryCtx, err = g.CheckDelete(ctx, org, member, entry)
		}
		if err != nil {
			var blockedErr *BlockedError
			if errors.As(err, &blockedErr) {
				g.metrics.RecordBlocked(intent, blockedErr.Code)
			}
			return nil, err
		}
		if id, ok := domain.UnlockRequestIDFromContext(entryCtx); ok {
			unlockByEntry[entry.ID] = id
		}
	}
	g.metrics.RecordAllowed(intent)
	return unlockByEntry, nil
}

func sameProject(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
