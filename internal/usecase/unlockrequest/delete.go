package unlockrequest

import (
	"context"

	"github.com/solidtrack/timelock-service/internal/domain"
)

// Delete removes a request. Only the requester may do this, and only
// while the request is still pending; approved and rejected requests
// stay on record.
func (uc *DefaultUsecase) Delete(ctx context.Context, actor *domain.Member, orgID, requestID string) error {
	request, err := uc.scopedRequest(ctx, orgID, requestID)
	if err != nil {
		return err
	}
	if !uc.resolver.CanDelete(actor, request) {
		return domain.ErrForbidden
	}
	if err := uc.unlockRepo.Delete(ctx, request.ID); err != nil {
		return err
	}
	uc.metrics.RecordUnlockRequest("deleted")
	uc.publish(domain.EventUnlockRequestDeleted, request)
	return nil
}
