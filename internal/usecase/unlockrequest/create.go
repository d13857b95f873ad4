package unlockrequest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/solidtrack/timelock-service/internal/domain"
	unlockrequestdto "github.com/solidtrack/timelock-service/internal/usecase/dto/unlockrequest"
)

// Create files a new unlock request in pending state. It fails with
// ErrDuplicateUnlockRequest when the requester already has a pending
// or active-approved request for the same project; a partial unique
// index backs the pending half of that rule against concurrent
// creates.
func (uc *DefaultUsecase) Create(ctx context.Context, actor *domain.Member, input *unlockrequestdto.CreateUnlockRequestInput) (*domain.UnlockRequest, error) {
	if !uc.resolver.CanCreate(actor) {
		return nil, domain.ErrForbidden
	}

	project, err := uc.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != input.OrganizationID {
		return nil, domain.ErrForbidden
	}

	requester := actor
	if input.RequesterMemberID != "" && input.RequesterMemberID != actor.ID {
		if !uc.resolver.CanCreateFor(actor, input.RequesterMemberID) {
			return nil, domain.ErrForbidden
		}
		requester, err = uc.memberRepo.GetByID(ctx, input.RequesterMemberID)
		if err != nil {
			return nil, err
		}
		if requester.OrganizationID != input.OrganizationID {
			return nil, domain.ErrForbidden
		}
	}

	exists, err := uc.unlockRepo.HasPendingOrActive(ctx, input.OrganizationID, project.ID, requester.ID, uc.now())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUnlockRequest
	}

	now := uc.now()
	request := &domain.UnlockRequest{
		ID:                uuid.NewString(),
		OrganizationID:    input.OrganizationID,
		ProjectID:         project.ID,
		RequesterMemberID: requester.ID,
		Reason:            input.Reason,
		Status:            domain.UnlockRequestPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.unlockRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	uc.metrics.RecordUnlockRequest("created")
	uc.publish(domain.EventUnlockRequestCreated, request)
	return request, nil
}

func (uc *DefaultUsecase) publish(eventType string, request *domain.UnlockRequest) {
	if uc.publisher == nil {
		return
	}
	event := domain.UnlockRequestEvent{
		EventType:         eventType,
		UnlockRequestID:   request.ID,
		OrganizationID:    request.OrganizationID,
		ProjectID:         request.ProjectID,
		RequesterMemberID: request.RequesterMemberID,
		ApproverMemberID:  request.ApproverMemberID,
		Status:            string(request.Status),
		ExpiresAt:         request.ExpiresAt,
		OccurredAt:        uc.now(),
	}
	go func() {
		if err := uc.publisher.PublishUnlockRequestEvent(event); err != nil {
			slog.Error("failed to publish unlock request event",
				"event_type", eventType,
				"unlock_request_id", request.ID,
				"error", err.Error())
		}
	}()
}
