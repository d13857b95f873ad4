package unlockrequest

import (
	"context"

	"github.com/solidtrack/timelock-service/internal/domain"
)

// Approve transitions a pending request to approved and starts the
// grant window. The repository performs the transition as a
// conditional update on status, so of two racing reviewers only the
// first succeeds; the loser gets ErrNotPending.
func (uc *DefaultUsecase) Approve(ctx context.Context, actor *domain.Member, orgID, requestID string) (*domain.UnlockRequest, error) {
	request, err := uc.scopedRequest(ctx, orgID, requestID)
	if err != nil {
		return nil, err
	}
	allowed, err := uc.resolver.CanReview(ctx, actor, request)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	approvedAt := uc.now()
	expiresAt := approvedAt.Add(domain.UnlockDuration)
	if err := uc.unlockRepo.Approve(ctx, request.ID, actor.ID, approvedAt, expiresAt); err != nil {
		return nil, err
	}

	request.Status = domain.UnlockRequestApproved
	request.ApproverMemberID = &actor.ID
	request.ApprovedAt = &approvedAt
	request.ExpiresAt = &expiresAt
	request.UpdatedAt = approvedAt

	uc.metrics.RecordUnlockRequest("approved")
	uc.publish(domain.EventUnlockRequestApproved, request)
	return request, nil
}

// Reject is the mirror transition; expires_at stays null.
func (uc *DefaultUsecase) Reject(ctx context.Context, actor *domain.Member, orgID, requestID string) (*domain.UnlockRequest, error) {
	request, err := uc.scopedRequest(ctx, orgID, requestID)
	if err != nil {
		return nil, err
	}
	allowed, err := uc.resolver.CanReview(ctx, actor, request)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	rejectedAt := uc.now()
	if err := uc.unlockRepo.Reject(ctx, request.ID, actor.ID, rejectedAt); err != nil {
		return nil, err
	}

	request.Status = domain.UnlockRequestRejected
	request.ApproverMemberID = &actor.ID
	request.RejectedAt = &rejectedAt
	request.UpdatedAt = rejectedAt

	uc.metrics.RecordUnlockRequest("rejected")
	uc.publish(domain.EventUnlockRequestRejected, request)
	return request, nil
}
